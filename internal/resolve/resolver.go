// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resolve turns the raw candidate pool from all recognizers into a
// non-overlapping, threshold-filtered result set.
package resolve

import (
	"sort"

	"piiscan/internal/detector"
)

// DefaultThreshold is the acceptance score below which candidates are
// discarded. Low-specificity signature patterns are tuned to sit under this
// line unless keyword context lifts them over it.
const DefaultThreshold = 0.5

// Resolve filters candidates below threshold, then resolves overlaps with a
// single greedy left-to-right pass: candidates are ordered by start position
// (score descending on ties) and each one either extends the accepted set, is
// dropped as a weaker overlap, or replaces the most recently accepted span
// when it overlaps with a strictly higher score. Ties keep the earlier,
// already-accepted span. The input slice is not modified.
func Resolve(candidates []detector.Candidate, threshold float64) []detector.Candidate {
	pool := make([]detector.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Score >= threshold {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		return nil
	}

	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].Start != pool[j].Start {
			return pool[i].Start < pool[j].Start
		}
		return pool[i].Score > pool[j].Score
	})

	accepted := make([]detector.Candidate, 0, len(pool))
	for _, c := range pool {
		if len(accepted) == 0 {
			accepted = append(accepted, c)
			continue
		}
		last := &accepted[len(accepted)-1]
		if c.Start >= last.End {
			accepted = append(accepted, c)
			continue
		}
		// Overlap: a strictly better score displaces the last accepted span.
		if c.Score > last.Score {
			*last = c
		}
	}
	return accepted
}
