// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"piiscan/internal/config"
	"piiscan/internal/engine"
	"piiscan/internal/formatters"
	jsonformatter "piiscan/internal/formatters/json"
	textformatter "piiscan/internal/formatters/text"
	"piiscan/internal/input"
	"piiscan/internal/observability"
)

func init() {
	formatters.Register(textformatter.NewFormatter())
	formatters.Register(jsonformatter.NewFormatter())
}

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Scan a file or stdin for sensitive content",
	Long:  "Scan reads text from a file, a PDF document, or stdin (\"-\") and reports resolved findings. Exit code 1 signals findings, 0 a clean input.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDetection(args[0], false)
	},
}

var redactCmd = &cobra.Command{
	Use:   "redact [file]",
	Short: "Scan and redact, emitting tokenized text",
	Long:  "Redact scans like the scan command, then replaces every finding with a deterministic bracket token and prints the redacted text.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDetection(args[0], true)
	},
}

func runDetection(path string, redactOutput bool) error {
	cfg, err := config.LoadConfigOrDefault(flagConfig)
	if err != nil {
		exitCode = ExitRuntimeError
		return err
	}
	applyFlagOverrides(cfg)

	text, err := input.ReadText(path)
	if err != nil {
		exitCode = ExitRuntimeError
		return err
	}

	eng := engine.New(cfg, newObserver(cfg))
	warnSkippedPatterns(eng)

	entities := flagEntities
	if len(entities) == 0 {
		entities = cfg.EntityList()
	}
	findings := eng.Analyze(text, engine.Options{
		Entities:  entities,
		Threshold: flagThreshold,
	})

	report := formatters.Report{Source: path, Findings: findings}
	if redactOutput {
		report.Redacted = eng.Redact(text, findings).Text
	}

	out, err := formatters.Export(cfg.Defaults.Format, report, formatters.FormatterOptions{
		Verbose: cfg.Defaults.Verbose,
		NoColor: cfg.Defaults.NoColor,
	})
	if err != nil {
		exitCode = ExitRuntimeError
		return err
	}
	fmt.Fprintln(os.Stdout, out)

	if len(findings) > 0 {
		exitCode = ExitFindings
	}
	return nil
}

func applyFlagOverrides(cfg *config.Config) {
	if flagFormat != "" {
		cfg.Defaults.Format = flagFormat
	}
	if flagVerbose {
		cfg.Defaults.Verbose = true
	}
	if flagNoColor {
		cfg.Defaults.NoColor = true
	}
	if flagDebug {
		cfg.Defaults.Debug = true
	}
}

func newObserver(cfg *config.Config) *observability.StandardObserver {
	level := observability.ObservabilityOff
	if cfg.Defaults.Debug {
		level = observability.ObservabilityDebug
	}
	return observability.NewStandardObserver(level, os.Stderr)
}

func warnSkippedPatterns(eng *engine.Engine) {
	for _, name := range eng.SkippedPatterns() {
		fmt.Fprintf(os.Stderr, "warning: pattern %q failed to compile and was skipped\n", name)
	}
}
