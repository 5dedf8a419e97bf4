// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package signatures implements the signature-pattern recognizer: an ordered
// catalog of named regular expressions for structured secrets and PII, each
// with a declared base confidence. Matches near credential keywords get a
// confidence boost; low-specificity entries require that boost to pass the
// acceptance threshold at all.
package signatures

import (
	"fmt"
	"regexp"

	"piiscan/internal/detector"
	"piiscan/internal/keywords"
)

// RecognizerName is the source tag attached to candidates from this package.
const RecognizerName = "signature_patterns"

type compiledPattern struct {
	Pattern
	re *regexp.Regexp
}

// Recognizer matches a compiled signature catalog against text. Construct it
// once; it is immutable and safe for concurrent use.
type Recognizer struct {
	patterns []compiledPattern
	matcher  *keywords.Matcher
	boost    bool
	entities []string
	skipped  []string
}

// Option configures a Recognizer at construction time.
type Option func(*Recognizer)

// WithKeywordBoost enables or disables the keyword-context confidence boost.
func WithKeywordBoost(enabled bool) Option {
	return func(r *Recognizer) { r.boost = enabled }
}

// WithExtraPatterns appends user-supplied catalog entries after the built-in
// catalog. Later entries never shadow earlier ones; overlaps are left to the
// overlap resolver.
func WithExtraPatterns(extra []Pattern) Option {
	return func(r *Recognizer) {
		r.patterns = compileInto(r.patterns, extra, &r.skipped)
	}
}

// NewRecognizer compiles the built-in catalog (plus any options) into a
// recognizer. A pattern that fails to compile is skipped and its name
// recorded; the expression itself is never logged because catalog sources may
// embed secret-shaped literals.
func NewRecognizer(matcher *keywords.Matcher, opts ...Option) *Recognizer {
	r := &Recognizer{
		matcher: matcher,
		boost:   true,
	}
	r.patterns = compileInto(nil, DefaultPatterns(), &r.skipped)
	for _, opt := range opts {
		opt(r)
	}

	seen := make(map[string]bool)
	for _, p := range r.patterns {
		if !seen[p.EntityType] {
			seen[p.EntityType] = true
			r.entities = append(r.entities, p.EntityType)
		}
	}
	return r
}

func compileInto(dst []compiledPattern, src []Pattern, skipped *[]string) []compiledPattern {
	for _, p := range src {
		expr := p.Expr
		if p.CaseInsensitive {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			*skipped = append(*skipped, p.Name)
			continue
		}
		dst = append(dst, compiledPattern{Pattern: p, re: re})
	}
	return dst
}

// Name implements detector.Recognizer.
func (r *Recognizer) Name() string { return RecognizerName }

// SupportedEntities implements detector.Recognizer.
func (r *Recognizer) SupportedEntities() []string { return r.entities }

// SkippedPatterns returns the names of catalog entries that failed to
// compile. Construction never fails outright on a bad entry.
func (r *Recognizer) SkippedPatterns() []string { return r.skipped }

// PatternCount returns the number of successfully compiled entries.
func (r *Recognizer) PatternCount() int { return len(r.patterns) }

// Analyze implements detector.Recognizer. For each catalog entry, every match
// yields a candidate. When the expression defines a capture group, the span
// is the first group's span so that anchoring prefixes and suffixes are not
// part of the reported value.
func (r *Recognizer) Analyze(text string, entities []string) ([]detector.Candidate, error) {
	if text == "" {
		return nil, nil
	}

	var results []detector.Candidate
	for _, p := range r.patterns {
		if !detector.WantsEntity(entities, p.EntityType) {
			continue
		}
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[0], loc[1]
			// Prefer the captured group span when the group participated.
			if len(loc) >= 4 && loc[2] >= 0 {
				start, end = loc[2], loc[3]
			}
			if start >= end {
				continue
			}

			score := p.Confidence
			if r.boost {
				score = keywords.BoostScore(score, r.matcher.HasContext(text, start, end))
			}

			results = append(results, detector.Candidate{
				EntityType:  p.EntityType,
				Start:       start,
				End:         end,
				Score:       score,
				Source:      RecognizerName,
				Explanation: fmt.Sprintf("%s (%s)", p.Description, p.Name),
			})
		}
	}
	return results, nil
}
