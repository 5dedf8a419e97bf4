// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	gojson "encoding/json"
	"testing"

	"piiscan/internal/detector"
	"piiscan/internal/formatters"
)

func TestFormatRoundTrips(t *testing.T) {
	report := formatters.Report{
		Source: "input.txt",
		Findings: []detector.Candidate{
			{EntityType: detector.EntityEmail, Start: 6, End: 22, Score: 0.95, Source: "signature_patterns", Explanation: "Email address (email_address)"},
			{EntityType: detector.EntityAPIKey, Start: 30, End: 70, Score: 0.9, Source: "signature_patterns"},
		},
		Redacted: "email [EMAIL_abcdef123456] sent",
	}

	out, err := NewFormatter().Format(report, formatters.FormatterOptions{Verbose: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		Source   string `json:"source"`
		Count    int    `json:"count"`
		Findings []struct {
			EntityType string  `json:"entity_type"`
			Score      float64 `json:"score"`
			Severity   string  `json:"severity"`
		} `json:"findings"`
		Redacted string `json:"redacted"`
	}
	if err := gojson.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Source != "input.txt" || decoded.Count != 2 {
		t.Errorf("unexpected header fields: %+v", decoded)
	}
	if len(decoded.Findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(decoded.Findings))
	}
	if decoded.Findings[0].Severity != detector.SeverityMedium {
		t.Errorf("expected medium severity for email, got %s", decoded.Findings[0].Severity)
	}
	if decoded.Findings[1].Severity != detector.SeverityCritical {
		t.Errorf("expected critical severity for API key, got %s", decoded.Findings[1].Severity)
	}
	if decoded.Redacted == "" {
		t.Error("expected redacted text to be carried through")
	}
}

func TestFormatNonVerboseOmitsExplanations(t *testing.T) {
	report := formatters.Report{
		Findings: []detector.Candidate{
			{EntityType: detector.EntityEmail, Start: 0, End: 5, Score: 0.95, Explanation: "Email address"},
		},
	}

	out, err := NewFormatter().Format(report, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := gojson.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	findings := decoded["findings"].([]interface{})
	first := findings[0].(map[string]interface{})
	if first["explanation"] != "" {
		t.Errorf("expected explanation stripped in non-verbose mode, got %v", first["explanation"])
	}
}
