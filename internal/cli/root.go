// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the piiscan command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const version = "1.0.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitFindings     = 1
	ExitUsageError   = 2
	ExitRuntimeError = 3
)

var rootCmd = &cobra.Command{
	Use:   "piiscan",
	Short: "Sensitive content detection and redaction",
	Long:  "piiscan detects API keys, credentials, and personal data in text using signature patterns, entropy analysis, and script-aware name detection, and can redact findings with deterministic tokens.",
}

// Global flags shared by subcommands.
var (
	flagConfig    string
	flagFormat    string
	flagThreshold float64
	flagEntities  []string
	flagVerbose   bool
	flagNoColor   bool
	flagDebug     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default: auto-discover piiscan.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "output format: text or json")
	rootCmd.PersistentFlags().Float64Var(&flagThreshold, "threshold", 0, "acceptance score threshold override (0 uses config)")
	rootCmd.PersistentFlags().StringSliceVar(&flagEntities, "entities", nil, "restrict detection to these entity types")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "include sources and explanations in output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "emit debug observability records to stderr")
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command and returns an exit code.
func Run() int {
	// Environment files are a convenience for local runs; absence is normal.
	_ = godotenv.Load()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(redactCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}
	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print piiscan version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "piiscan version %s\n", version)
	},
}
