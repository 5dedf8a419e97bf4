// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redact

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"piiscan/internal/detector"
)

func TestTokenDeterministic(t *testing.T) {
	a := Token(detector.EntityEmail, "jane@example.com")
	b := Token(detector.EntityEmail, "jane@example.com")
	if a != b {
		t.Errorf("same input produced different tokens: %s vs %s", a, b)
	}
}

func TestTokenFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^\[EMAIL_[0-9a-f]{12}\]$`)
	token := Token(detector.EntityEmail, "jane@example.com")
	if !pattern.MatchString(token) {
		t.Errorf("token %q does not match expected format", token)
	}
}

func TestTokenDistinguishesTypeAndValue(t *testing.T) {
	if Token(detector.EntityEmail, "x") == Token(detector.EntityPhone, "x") {
		t.Error("same value under different types should produce different digests")
	}
	if Token(detector.EntityEmail, "a@b.com") == Token(detector.EntityEmail, "b@a.com") {
		t.Error("different values should produce different tokens")
	}
}

func TestTokenDistinctness(t *testing.T) {
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		token := Token(detector.EntityAPIKey, fmt.Sprintf("value-%d", i))
		if seen[token] {
			t.Fatalf("collision at value-%d: %s", i, token)
		}
		seen[token] = true
	}
}

func TestTokenUnknownTypeUsesRawTag(t *testing.T) {
	token := Token("CUSTOM_THING", "v")
	if !strings.HasPrefix(token, "[CUSTOM_THING_") {
		t.Errorf("expected raw tag for unknown type, got %s", token)
	}
}

func TestRedactReplacesSpans(t *testing.T) {
	text := "email jane@example.com phone 13812345678 end"
	findings := []detector.Candidate{
		{EntityType: detector.EntityEmail, Start: 6, End: 22, Score: 0.95},
		{EntityType: detector.EntityPhone, Start: 29, End: 40, Score: 0.85},
	}

	result := Redact(text, findings)

	if strings.Contains(result.Text, "jane@example.com") || strings.Contains(result.Text, "13812345678") {
		t.Errorf("redacted text still contains original values: %s", result.Text)
	}
	if !strings.HasPrefix(result.Text, "email [EMAIL_") || !strings.HasSuffix(result.Text, " end") {
		t.Errorf("unexpected redacted shape: %s", result.Text)
	}
	if len(result.Mapping) != 2 {
		t.Fatalf("expected 2 mapping entries, got %d", len(result.Mapping))
	}
}

func TestRedactRoundTrip(t *testing.T) {
	text := "key sk_live_abcdefghij1234 sent to jane@example.com"
	findings := []detector.Candidate{
		{EntityType: detector.EntityAPIKey, Start: 4, End: 26, Score: 0.95},
		{EntityType: detector.EntityEmail, Start: 35, End: 51, Score: 0.95},
	}

	result := Redact(text, findings)

	restored := result.Text
	for token, value := range result.Mapping {
		if !strings.Contains(result.Text, token) {
			t.Errorf("mapping token %s absent from redacted text", token)
		}
		restored = strings.ReplaceAll(restored, token, value)
	}
	if restored != text {
		t.Errorf("round trip failed:\n got %q\nwant %q", restored, text)
	}
}

func TestRedactRepeatedValueSameToken(t *testing.T) {
	text := "a@b.com and a@b.com"
	findings := []detector.Candidate{
		{EntityType: detector.EntityEmail, Start: 0, End: 7, Score: 0.95},
		{EntityType: detector.EntityEmail, Start: 12, End: 19, Score: 0.95},
	}

	result := Redact(text, findings)
	if len(result.Mapping) != 1 {
		t.Fatalf("expected a single mapping entry for repeated value, got %d", len(result.Mapping))
	}
	token := Token(detector.EntityEmail, "a@b.com")
	if result.Text != token+" and "+token {
		t.Errorf("unexpected redacted text: %s", result.Text)
	}
}

func TestRedactSkipsInvalidSpans(t *testing.T) {
	text := "short"
	findings := []detector.Candidate{
		{EntityType: detector.EntityEmail, Start: 2, End: 100, Score: 0.95},
		{EntityType: detector.EntityEmail, Start: -1, End: 3, Score: 0.95},
		{EntityType: detector.EntityEmail, Start: 4, End: 4, Score: 0.95},
	}

	result := Redact(text, findings)
	if result.Text != text {
		t.Errorf("invalid spans should leave text unchanged, got %q", result.Text)
	}
	if len(result.Mapping) != 0 {
		t.Errorf("expected empty mapping, got %v", result.Mapping)
	}
}

func TestRedactNoFindings(t *testing.T) {
	result := Redact("nothing here", nil)
	if result.Text != "nothing here" || len(result.Mapping) != 0 {
		t.Errorf("unexpected result for no findings: %+v", result)
	}
}
