// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package registry holds the ordered set of recognizers and fans analysis out
// to them with strict fault isolation: one recognizer failing, or even
// panicking, must never take down a scan or suppress the findings of the
// others.
package registry

import (
	"fmt"

	"piiscan/internal/detector"
	"piiscan/internal/observability"
)

// Registry is an ordered collection of recognizers. Order is preserved from
// registration so that candidate output is deterministic before resolution.
type Registry struct {
	recognizers []detector.Recognizer
	observer    *observability.StandardObserver
}

// New creates a registry. The observer may be nil, in which case recognizer
// failures are isolated but not reported.
func New(observer *observability.StandardObserver) *Registry {
	return &Registry{observer: observer}
}

// Register appends a recognizer. Nil recognizers are ignored.
func (r *Registry) Register(rec detector.Recognizer) {
	if rec == nil {
		return
	}
	r.recognizers = append(r.recognizers, rec)
}

// Names returns the registered recognizer names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.recognizers))
	for _, rec := range r.recognizers {
		names = append(names, rec.Name())
	}
	return names
}

// Len returns the number of registered recognizers.
func (r *Registry) Len() int { return len(r.recognizers) }

// RunAll invokes every recognizer against text and concatenates their
// candidates in registration order. A recognizer error or panic drops only
// that recognizer's contribution. Log records carry the recognizer name and
// counts, never the scanned text.
func (r *Registry) RunAll(text string, entities []string) []detector.Candidate {
	var all []detector.Candidate
	for _, rec := range r.recognizers {
		candidates := r.runOne(rec, text, entities)
		all = append(all, candidates...)
	}
	return all
}

func (r *Registry) runOne(rec detector.Recognizer, text string, entities []string) (candidates []detector.Candidate) {
	defer func() {
		if p := recover(); p != nil {
			r.logFailure(rec.Name(), fmt.Sprintf("panic: %v", p))
			candidates = nil
		}
	}()

	candidates, err := rec.Analyze(text, entities)
	if err != nil {
		r.logFailure(rec.Name(), err.Error())
		return nil
	}

	// Malformed spans from a misbehaving recognizer are dropped here so the
	// resolver can assume every candidate is well-formed.
	valid := candidates[:0]
	for _, c := range candidates {
		if c.Valid(len(text)) {
			valid = append(valid, c)
		}
	}
	return valid
}

func (r *Registry) logFailure(name, errMsg string) {
	if r.observer == nil {
		return
	}
	r.observer.LogOperation(observability.StandardObservabilityData{
		Component: "registry",
		Operation: "analyze/" + name,
		Success:   false,
		Error:     errMsg,
	})
}
