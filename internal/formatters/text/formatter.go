// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"piiscan/internal/detector"
	"piiscan/internal/formatters"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	severityColors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		severityColors: map[string]*color.Color{
			detector.SeverityCritical: color.New(color.FgRed, color.Bold),
			detector.SeverityHigh:     color.New(color.FgRed),
			detector.SeverityMedium:   color.New(color.FgYellow),
			detector.SeverityLow:      color.New(color.FgCyan),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output grouped by severity"
}

func (f *Formatter) Format(report formatters.Report, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	if len(report.Findings) == 0 {
		if report.Redacted != "" {
			return report.Redacted, nil
		}
		return "No sensitive content found.", nil
	}

	var builder strings.Builder
	f.appendHeader(&builder, report)

	for _, severity := range []string{
		detector.SeverityCritical,
		detector.SeverityHigh,
		detector.SeverityMedium,
		detector.SeverityLow,
	} {
		group := f.findingsBySeverity(report.Findings, severity)
		if len(group) == 0 {
			continue
		}
		f.appendGroup(&builder, severity, group, options)
	}

	if report.Redacted != "" {
		builder.WriteString("\nRedacted output:\n")
		builder.WriteString(report.Redacted)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

func (f *Formatter) appendHeader(builder *strings.Builder, report formatters.Report) {
	source := report.Source
	if source == "" {
		source = "(input)"
	}
	fmt.Fprintf(builder, "Scan results for %s: %d finding(s)\n\n", source, len(report.Findings))
}

func (f *Formatter) findingsBySeverity(findings []detector.Candidate, severity string) []detector.Candidate {
	var group []detector.Candidate
	for _, finding := range findings {
		if detector.SeverityFor(finding.EntityType) == severity {
			group = append(group, finding)
		}
	}
	return group
}

func (f *Formatter) appendGroup(builder *strings.Builder, severity string, group []detector.Candidate, options formatters.FormatterOptions) {
	c, ok := f.severityColors[severity]
	if !ok {
		c = color.New(color.FgWhite)
	}
	builder.WriteString(c.Sprintf("%s (%d)", strings.ToUpper(severity), len(group)))
	builder.WriteString("\n")

	for _, finding := range group {
		fmt.Fprintf(builder, "  %-16s bytes %d-%d  score %.2f",
			finding.EntityType, finding.Start, finding.End, finding.Score)
		if options.Verbose {
			fmt.Fprintf(builder, "  [%s] %s", finding.Source, finding.Explanation)
		}
		builder.WriteString("\n")
	}
	builder.WriteString("\n")
}
