// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package engine wires the recognizers, resolver, and redactor into the
// single facade callers use. An Engine is built once from configuration and
// is immutable afterward; no package-level state, so independent engines with
// different configurations can coexist in one process.
package engine

import (
	"time"

	"piiscan/internal/cjkname"
	"piiscan/internal/config"
	"piiscan/internal/detector"
	"piiscan/internal/entropy"
	"piiscan/internal/external"
	"piiscan/internal/keywords"
	"piiscan/internal/observability"
	"piiscan/internal/redact"
	"piiscan/internal/registry"
	"piiscan/internal/resolve"
	"piiscan/internal/signatures"
)

// Options adjusts a single Analyze call.
type Options struct {
	// Entities restricts detection to the listed entity types. Empty means
	// all types every recognizer supports.
	Entities []string
	// Threshold overrides the engine's acceptance threshold when positive.
	Threshold float64
}

// Engine is the detection and redaction facade.
type Engine struct {
	registry  *registry.Registry
	threshold float64
	observer  *observability.StandardObserver
	skipped   []string
}

// New builds an engine from configuration. The observer may be nil. Custom
// patterns that fail to compile are skipped, not fatal; their names are
// available via SkippedPatterns.
func New(cfg *config.Config, observer *observability.StandardObserver) *Engine {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	matcher := keywords.NewMatcherWithWindow(cfg.Detection.KeywordBoost.Window)

	var extra []signatures.Pattern
	for _, p := range cfg.Patterns {
		extra = append(extra, signatures.Pattern{
			Name:            p.Name,
			EntityType:      p.EntityType,
			Expr:            p.Regex,
			CaseInsensitive: p.CaseInsensitive,
			Confidence:      p.Confidence,
			NeedsContext:    p.NeedsContext,
			Description:     p.Description,
		})
	}

	sigRec := signatures.NewRecognizer(matcher,
		signatures.WithKeywordBoost(cfg.Detection.KeywordBoost.Enabled),
		signatures.WithExtraPatterns(extra),
	)

	reg := registry.New(observer)
	reg.Register(sigRec)
	if cfg.Detection.Entropy.Enabled {
		reg.Register(entropy.NewScanner(matcher))
	}
	if cfg.Detection.CJKNames.Enabled {
		reg.Register(cjkname.NewRecognizer())
	}
	if cfg.External.Enabled && cfg.External.URL != "" {
		reg.Register(external.NewRecognizer(cfg.External.URL,
			external.WithTimeout(time.Duration(cfg.External.TimeoutSeconds)*time.Second)))
	}

	return &Engine{
		registry:  reg,
		threshold: cfg.Defaults.Threshold,
		observer:  observer,
		skipped:   sigRec.SkippedPatterns(),
	}
}

// Recognizers returns the active recognizer names in execution order.
func (e *Engine) Recognizers() []string { return e.registry.Names() }

// SkippedPatterns returns names of signature catalog entries that failed to
// compile at construction.
func (e *Engine) SkippedPatterns() []string { return e.skipped }

// Threshold returns the engine's configured acceptance threshold.
func (e *Engine) Threshold() float64 { return e.threshold }

// Analyze runs every recognizer over text and returns the resolved findings:
// threshold-filtered, non-overlapping, sorted by start offset. Empty input
// yields no findings.
func (e *Engine) Analyze(text string, opts Options) []detector.Candidate {
	if text == "" {
		return nil
	}

	done := e.startTiming("analyze")

	threshold := e.threshold
	if opts.Threshold > 0 {
		threshold = opts.Threshold
	}

	pool := e.registry.RunAll(text, opts.Entities)
	results := resolve.Resolve(pool, threshold)

	if done != nil {
		done(true, map[string]interface{}{
			"content_length": len(text),
			"candidates":     len(pool),
			"findings":       len(results),
		})
	}
	return results
}

// Redact replaces the given findings in text with deterministic tokens and
// returns the redacted text plus the token-to-value mapping.
func (e *Engine) Redact(text string, findings []detector.Candidate) redact.Result {
	return redact.Redact(text, findings)
}

// AnalyzeAndRedact is the common one-shot path: detect with the engine's
// settings, then redact everything found.
func (e *Engine) AnalyzeAndRedact(text string, opts Options) ([]detector.Candidate, redact.Result) {
	findings := e.Analyze(text, opts)
	return findings, e.Redact(text, findings)
}

func (e *Engine) startTiming(op string) func(bool, map[string]interface{}) {
	if e.observer == nil {
		return nil
	}
	return e.observer.StartTiming("engine", op)
}
