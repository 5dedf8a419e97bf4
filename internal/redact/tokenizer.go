// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package redact replaces detected spans with deterministic bracket tokens.
// The same value of the same entity type always produces the same token, so
// redacted documents stay diffable and a downstream consumer can correlate
// repeated occurrences without ever seeing the original value.
package redact

import (
	"encoding/hex"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"

	"piiscan/internal/detector"
)

// digestLen is the number of hex characters kept from the value digest. Six
// bytes gives 48 bits, enough to make collisions within one document corpus
// implausible while keeping tokens readable inline.
const digestLen = 12

// shortType maps entity type tags to the compact labels used inside tokens.
// Unmapped tags are used as-is.
var shortType = map[string]string{
	detector.EntityAPIKey:       "KEY",
	detector.EntityEmail:        "EMAIL",
	detector.EntityPhone:        "PHONE",
	detector.EntityPerson:       "NAME",
	detector.EntityUSSSN:        "SSN",
	detector.EntityUSITIN:       "ITIN",
	detector.EntityCNResidentID: "ID",
	detector.EntityNationalID:   "ID",
	detector.EntityPassport:     "PASSPORT",
	detector.EntityVehiclePlate: "PLATE",
	detector.EntityURL:          "URL",
	detector.EntityIPAddress:    "IP",
	detector.EntityCreditCard:   "CARD",
	detector.EntityIBAN:         "IBAN",
	detector.EntityCrypto:       "WALLET",
	detector.EntityLocation:     "LOC",
	detector.EntityOrganization: "ORG",
}

// Token builds the replacement token for a value of the given entity type:
// "[LABEL_digest]" where the digest is a truncated BLAKE2b-256 of the entity
// type and value. Deterministic across processes and runs.
func Token(entityType, value string) string {
	sum := blake2b.Sum256([]byte(entityType + ":" + value))
	digest := hex.EncodeToString(sum[:])[:digestLen]

	label, ok := shortType[entityType]
	if !ok {
		label = entityType
	}

	var b strings.Builder
	b.Grow(len(label) + digestLen + 3)
	b.WriteByte('[')
	b.WriteString(label)
	b.WriteByte('_')
	b.WriteString(digest)
	b.WriteByte(']')
	return b.String()
}

// Result is the outcome of redacting one text.
type Result struct {
	// Text is the redacted text.
	Text string
	// Mapping relates each emitted token to the original value it replaced.
	// Callers that persist it are responsible for protecting it; it contains
	// exactly the sensitive values the redaction removed.
	Mapping map[string]string
}

// Redact replaces every candidate span in text with its token. Candidates
// are applied in descending start order so earlier offsets stay valid while
// later spans are rewritten. Spans that are out of bounds or inverted are
// skipped; overlap handling belongs to the resolver, not here.
func Redact(text string, candidates []detector.Candidate) Result {
	ordered := make([]detector.Candidate, len(candidates))
	copy(ordered, candidates)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Start > ordered[j].Start
	})

	mapping := make(map[string]string, len(ordered))
	out := text
	for _, c := range ordered {
		if !c.Valid(len(text)) {
			continue
		}
		value := out[c.Start:c.End]
		token := Token(c.EntityType, value)
		mapping[token] = value
		out = out[:c.Start] + token + out[c.End:]
	}

	return Result{Text: out, Mapping: mapping}
}
