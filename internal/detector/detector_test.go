// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "testing"

func TestCandidateValid(t *testing.T) {
	tests := []struct {
		name    string
		c       Candidate
		textLen int
		want    bool
	}{
		{"well formed", Candidate{Start: 0, End: 5}, 10, true},
		{"touching end", Candidate{Start: 5, End: 10}, 10, true},
		{"empty span", Candidate{Start: 5, End: 5}, 10, false},
		{"inverted", Candidate{Start: 6, End: 5}, 10, false},
		{"negative start", Candidate{Start: -1, End: 5}, 10, false},
		{"past end", Candidate{Start: 0, End: 11}, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Valid(tt.textLen); got != tt.want {
				t.Errorf("Valid(%d) = %v, want %v", tt.textLen, got, tt.want)
			}
		})
	}
}

func TestWantsEntity(t *testing.T) {
	if !WantsEntity(nil, EntityEmail) {
		t.Error("empty allow-list should request everything")
	}
	if !WantsEntity([]string{EntityEmail, EntityPhone}, EntityPhone) {
		t.Error("listed entity should be wanted")
	}
	if WantsEntity([]string{EntityEmail}, EntityAPIKey) {
		t.Error("unlisted entity should not be wanted")
	}
}

func TestSeverityFor(t *testing.T) {
	if got := SeverityFor(EntityAPIKey); got != SeverityCritical {
		t.Errorf("expected critical for API keys, got %s", got)
	}
	if got := SeverityFor(EntityEmail); got != SeverityMedium {
		t.Errorf("expected medium for email, got %s", got)
	}
	if got := SeverityFor("SOMETHING_NEW"); got != SeverityMedium {
		t.Errorf("expected medium fallback for unknown types, got %s", got)
	}
}
