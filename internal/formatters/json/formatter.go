// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"piiscan/internal/detector"
	"piiscan/internal/formatters"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Machine-readable JSON output"
}

type jsonFinding struct {
	detector.Candidate
	Severity string `json:"severity"`
}

type jsonReport struct {
	Source   string        `json:"source"`
	Count    int           `json:"count"`
	Findings []jsonFinding `json:"findings"`
	Redacted string        `json:"redacted,omitempty"`
}

func (f *Formatter) Format(report formatters.Report, options formatters.FormatterOptions) (string, error) {
	out := jsonReport{
		Source:   report.Source,
		Count:    len(report.Findings),
		Findings: make([]jsonFinding, 0, len(report.Findings)),
		Redacted: report.Redacted,
	}
	for _, finding := range report.Findings {
		if !options.Verbose {
			finding.Explanation = ""
		}
		out.Findings = append(out.Findings, jsonFinding{
			Candidate: finding,
			Severity:  detector.SeverityFor(finding.EntityType),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting JSON output: %w", err)
	}
	return string(data), nil
}
