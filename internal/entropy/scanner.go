// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package entropy implements the statistical secret detector: it finds runs
// of key-shaped characters whose Shannon entropy indicates randomness rather
// than language. It never fires without keyword context; that gate is what
// keeps its false-positive rate bounded.
package entropy

import (
	"fmt"
	"math"
	"regexp"

	"piiscan/internal/detector"
	"piiscan/internal/keywords"
)

// RecognizerName is the source tag attached to candidates from this package.
const RecognizerName = "entropy_scanner"

// Detection thresholds. English text sits around 3.5-4.5 bits per character;
// random alphanumeric material around 5.5-6.0.
const (
	minEntropy = 4.5
	minLength  = 20
	maxLength  = 100
)

// candidateRun matches maximal runs of characters that appear in keys and
// tokens: alphanumerics plus the base64/url-safe punctuation set.
var candidateRun = regexp.MustCompile(fmt.Sprintf(`\b[A-Za-z0-9_\-+/=]{%d,%d}\b`, minLength, maxLength))

// Shannon returns the Shannon entropy of s in bits per character, computed
// over the byte frequency distribution. The empty string has entropy 0.
func Shannon(s string) float64 {
	if s == "" {
		return 0
	}

	var freq [256]int
	for i := 0; i < len(s); i++ {
		freq[s[i]]++
	}

	length := float64(len(s))
	entropy := 0.0
	for _, count := range freq {
		if count == 0 {
			continue
		}
		p := float64(count) / length
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// Scanner detects high-entropy substrings with credential-keyword context.
type Scanner struct {
	matcher *keywords.Matcher
}

// NewScanner creates an entropy scanner sharing the given context matcher.
func NewScanner(matcher *keywords.Matcher) *Scanner {
	return &Scanner{matcher: matcher}
}

// Name implements detector.Recognizer.
func (s *Scanner) Name() string { return RecognizerName }

// SupportedEntities implements detector.Recognizer.
func (s *Scanner) SupportedEntities() []string {
	return []string{detector.EntityAPIKey}
}

// Analyze implements detector.Recognizer. A run is accepted only when its
// entropy clears the threshold AND a credential keyword appears in the
// context window; confidence then grows with the entropy surplus, capped at
// 0.75 so a bare statistical signal never outranks a provider signature.
func (s *Scanner) Analyze(text string, entities []string) ([]detector.Candidate, error) {
	if text == "" || !detector.WantsEntity(entities, detector.EntityAPIKey) {
		return nil, nil
	}

	var results []detector.Candidate
	for _, loc := range candidateRun.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		e := Shannon(text[start:end])
		if e < minEntropy {
			continue
		}
		if !s.matcher.HasContext(text, start, end) {
			continue
		}

		score := 0.5 + (e-minEntropy)*0.1
		if score > 0.75 {
			score = 0.75
		}

		results = append(results, detector.Candidate{
			EntityType:  detector.EntityAPIKey,
			Start:       start,
			End:         end,
			Score:       score,
			Source:      RecognizerName,
			Explanation: fmt.Sprintf("high entropy string (entropy=%.2f) with keyword context", e),
		})
	}
	return results, nil
}
