// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cjkname implements lexicon-based detection of Chinese personal
// names. CJK text has no word boundaries, so regular expressions cannot
// delimit names; instead the recognizer anchors on a surname lexicon and
// extends rightward over Han characters with script-aware boundary rules.
package cjkname

import (
	"sort"
	"unicode"

	"piiscan/internal/detector"
)

// RecognizerName is the source tag attached to candidates from this package.
const RecognizerName = "cjk_name"

// nameScore is the fixed confidence for lexicon hits. Surname anchoring is a
// strong signal but it cannot distinguish a name from a rare word, so the
// score stays below the signature catalog's structured-identifier tiers.
const nameScore = 0.85

// Recognizer detects Chinese personal names. It is stateless beyond the
// package lexicon and safe for concurrent use.
type Recognizer struct{}

// NewRecognizer creates a CJK name recognizer.
func NewRecognizer() *Recognizer { return &Recognizer{} }

// Name implements detector.Recognizer.
func (r *Recognizer) Name() string { return RecognizerName }

// SupportedEntities implements detector.Recognizer.
func (r *Recognizer) SupportedEntities() []string {
	return []string{detector.EntityPerson}
}

func isHan(r rune) bool { return unicode.Is(unicode.Han, r) }

// span is a candidate name in rune index space, half-open.
type span struct {
	start, end int
}

// Analyze implements detector.Recognizer. At each Han rune it tries the
// compound surname lexicon first, then the single-character lexicon. The
// given name is one rune by default and extends to two only when the second
// rune is Han and the character after it is not, so a name directly followed
// by running Han text keeps the conservative short reading. Candidates at the
// same start are deduplicated in favor of the longer span, then overlaps are
// swept left to right with the earliest span winning.
func (r *Recognizer) Analyze(text string, entities []string) ([]detector.Candidate, error) {
	if text == "" || !detector.WantsEntity(entities, detector.EntityPerson) {
		return nil, nil
	}

	runes := []rune(text)
	offsets := make([]int, len(runes)+1)
	byteOff := 0
	for i, ru := range runes {
		offsets[i] = byteOff
		byteOff += len(string(ru))
	}
	offsets[len(runes)] = byteOff

	byStart := make(map[int]span)
	for i := 0; i < len(runes); i++ {
		if !isHan(runes[i]) {
			continue
		}

		surnameLen := 0
		if i+1 < len(runes) && compoundSet[string(runes[i:i+2])] {
			surnameLen = 2
		} else if singleSet[runes[i]] {
			surnameLen = 1
		}
		if surnameLen == 0 {
			continue
		}

		q := i + surnameLen
		if q >= len(runes) || !isHan(runes[q]) {
			continue
		}

		end := q + 1
		if q+1 < len(runes) && isHan(runes[q+1]) {
			if q+2 >= len(runes) || !isHan(runes[q+2]) {
				end = q + 2
			}
		}

		if denylist[string(runes[i:end])] {
			continue
		}

		// Longer span wins when compound and single anchoring collide.
		if prev, ok := byStart[i]; !ok || end > prev.end {
			byStart[i] = span{start: i, end: end}
		}
	}

	spans := make([]span, 0, len(byStart))
	for _, s := range byStart {
		spans = append(spans, s)
	}
	sort.Slice(spans, func(a, b int) bool { return spans[a].start < spans[b].start })

	var results []detector.Candidate
	lastEnd := 0
	for _, s := range spans {
		if s.start < lastEnd {
			continue
		}
		lastEnd = s.end
		results = append(results, detector.Candidate{
			EntityType:  detector.EntityPerson,
			Start:       offsets[s.start],
			End:         offsets[s.end],
			Score:       nameScore,
			Source:      RecognizerName,
			Explanation: "surname lexicon match with Han boundary extension",
		})
	}
	return results, nil
}
