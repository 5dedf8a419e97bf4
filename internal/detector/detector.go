// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package detector defines the shared contract between the detection engine
// and its recognizers: the Candidate span type and the Recognizer interface.
package detector

// Entity type tags produced by the built-in recognizers. The vocabulary is
// open: external recognizers may introduce new tags without any change here.
const (
	EntityAPIKey       = "API_KEY"
	EntityPerson       = "PERSON"
	EntityEmail        = "EMAIL_ADDRESS"
	EntityPhone        = "PHONE_NUMBER"
	EntityUSSSN        = "US_SSN"
	EntityUSITIN       = "US_ITIN"
	EntityCNResidentID = "CN_RESIDENT_ID"
	EntityNationalID   = "NATIONAL_ID"
	EntityPassport     = "PASSPORT"
	EntityVehiclePlate = "VEHICLE_PLATE"
	EntityURL          = "URL"
	EntityIPAddress    = "IP_ADDRESS"
	EntityCreditCard   = "CREDIT_CARD"
	EntityIBAN         = "IBAN_CODE"
	EntityCrypto       = "CRYPTO"
	EntityLocation     = "LOCATION"
	EntityOrganization = "ORG"
)

// Candidate represents a single detected span of sensitive content.
// Offsets are byte positions into the analyzed text, half-open [Start, End).
type Candidate struct {
	EntityType  string  `json:"entity_type"`
	Start       int     `json:"start"`
	End         int     `json:"end"`
	Score       float64 `json:"score"`
	Source      string  `json:"source"`
	Explanation string  `json:"explanation"`
}

// Valid reports whether the candidate's offsets are well-formed for a text of
// the given length.
func (c Candidate) Valid(textLen int) bool {
	return c.Start >= 0 && c.Start < c.End && c.End <= textLen
}

// Recognizer is the single capability every detection strategy implements.
// Implementations are constructed once at startup and must be safe for
// concurrent use; Analyze must not retain or mutate the input.
type Recognizer interface {
	// Name identifies the recognizer in candidate sources and logs.
	Name() string

	// SupportedEntities returns the entity type tags this recognizer can emit.
	SupportedEntities() []string

	// Analyze scans text and returns candidate spans. The entities slice is an
	// allow-list of requested entity types; empty means all supported types.
	Analyze(text string, entities []string) ([]Candidate, error)
}

// WantsEntity reports whether entityType is requested by the allow-list.
// An empty allow-list requests everything.
func WantsEntity(entities []string, entityType string) bool {
	if len(entities) == 0 {
		return true
	}
	for _, e := range entities {
		if e == entityType {
			return true
		}
	}
	return false
}

// Severity buckets for reporting. Critical findings are the ones worth
// failing a pipeline over; low findings are informational.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

var severityByEntity = map[string]string{
	EntityAPIKey:       SeverityCritical,
	EntityUSSSN:        SeverityCritical,
	EntityUSITIN:       SeverityCritical,
	EntityCNResidentID: SeverityCritical,
	EntityNationalID:   SeverityCritical,
	EntityCreditCard:   SeverityCritical,
	EntityPassport:     SeverityCritical,
	EntityCrypto:       SeverityHigh,
	EntityIBAN:         SeverityHigh,
	EntityEmail:        SeverityMedium,
	EntityPhone:        SeverityMedium,
	EntityVehiclePlate: SeverityMedium,
	EntityPerson:       SeverityLow,
	EntityLocation:     SeverityLow,
	EntityOrganization: SeverityLow,
	EntityURL:          SeverityLow,
	EntityIPAddress:    SeverityLow,
}

// SeverityFor returns the reporting severity for an entity type. Unknown
// types default to medium so that new recognizer tags are never silently
// dropped to the bottom of a report.
func SeverityFor(entityType string) string {
	if s, ok := severityByEntity[entityType]; ok {
		return s
	}
	return SeverityMedium
}
