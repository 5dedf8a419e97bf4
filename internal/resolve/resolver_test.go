// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"testing"

	"piiscan/internal/detector"
)

func cand(start, end int, score float64, entityType string) detector.Candidate {
	return detector.Candidate{EntityType: entityType, Start: start, End: end, Score: score}
}

func TestThresholdFilter(t *testing.T) {
	in := []detector.Candidate{
		cand(0, 5, 0.40, "API_KEY"),
		cand(10, 15, 0.60, "EMAIL_ADDRESS"),
	}
	got := Resolve(in, DefaultThreshold)
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(got), got)
	}
	if got[0].EntityType != "EMAIL_ADDRESS" {
		t.Errorf("expected the above-threshold candidate, got %+v", got[0])
	}
}

func TestSameStartKeepsHigherScore(t *testing.T) {
	in := []detector.Candidate{
		cand(0, 10, 0.6, "URL"),
		cand(0, 8, 0.9, "EMAIL_ADDRESS"),
	}
	got := Resolve(in, DefaultThreshold)
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(got), got)
	}
	if got[0].Score != 0.9 {
		t.Errorf("expected the 0.9 candidate to win, got %+v", got[0])
	}
}

func TestOverlapReplacedByStrictlyHigherScore(t *testing.T) {
	in := []detector.Candidate{
		cand(0, 10, 0.6, "URL"),
		cand(5, 15, 0.9, "EMAIL_ADDRESS"),
	}
	got := Resolve(in, DefaultThreshold)
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(got), got)
	}
	if got[0].Start != 5 || got[0].Score != 0.9 {
		t.Errorf("expected the later stronger span to replace, got %+v", got[0])
	}
}

func TestOverlapTieKeepsEarlier(t *testing.T) {
	in := []detector.Candidate{
		cand(0, 10, 0.8, "URL"),
		cand(5, 15, 0.8, "EMAIL_ADDRESS"),
	}
	got := Resolve(in, DefaultThreshold)
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(got), got)
	}
	if got[0].Start != 0 {
		t.Errorf("expected the earlier span to win a tie, got %+v", got[0])
	}
}

func TestNonOverlappingAllKept(t *testing.T) {
	in := []detector.Candidate{
		cand(20, 30, 0.7, "PHONE_NUMBER"),
		cand(0, 10, 0.9, "EMAIL_ADDRESS"),
		cand(10, 20, 0.8, "URL"), // adjacent, not overlapping
	}
	got := Resolve(in, DefaultThreshold)
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d: %+v", len(got), got)
	}
}

func TestOutputSortedAndNonOverlapping(t *testing.T) {
	in := []detector.Candidate{
		cand(12, 25, 0.7, "URL"),
		cand(0, 8, 0.9, "EMAIL_ADDRESS"),
		cand(5, 14, 0.95, "API_KEY"),
		cand(22, 30, 0.85, "PHONE_NUMBER"),
		cand(3, 6, 0.55, "CRYPTO"),
	}
	got := Resolve(in, DefaultThreshold)
	for i := 1; i < len(got); i++ {
		if got[i].Start < got[i-1].End {
			t.Errorf("results overlap or are unsorted at %d: %+v", i, got)
		}
	}
}

func TestEmptyAndAllFiltered(t *testing.T) {
	if got := Resolve(nil, DefaultThreshold); got != nil {
		t.Errorf("expected nil for empty input, got %+v", got)
	}
	in := []detector.Candidate{cand(0, 5, 0.1, "URL")}
	if got := Resolve(in, DefaultThreshold); got != nil {
		t.Errorf("expected nil when all candidates filtered, got %+v", got)
	}
}

func TestInputNotModified(t *testing.T) {
	in := []detector.Candidate{
		cand(5, 15, 0.9, "EMAIL_ADDRESS"),
		cand(0, 10, 0.6, "URL"),
	}
	Resolve(in, DefaultThreshold)
	if in[0].Start != 5 || in[1].Start != 0 {
		t.Errorf("input slice was reordered: %+v", in)
	}
}
