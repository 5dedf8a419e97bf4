// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package external adapts an out-of-process NER service into a recognizer.
// The service (typically a transformer model behind a small HTTP API) covers
// entity families that pattern matching cannot: person names in Latin script,
// locations, organizations. If the service is unreachable or slow, the
// recognizer degrades to zero candidates so the rest of the pipeline still
// runs on local strategies.
package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"piiscan/internal/detector"
)

// RecognizerName is the source tag attached to candidates from this package.
const RecognizerName = "external_ner"

// DefaultTimeout bounds each analyze round trip. Transformer inference on
// long inputs can stall; a hung remote must never hang a scan.
const DefaultTimeout = 10 * time.Second

// Recognizer calls a remote NER service's /analyze endpoint.
type Recognizer struct {
	url      string
	client   *http.Client
	entities []string
}

// Option configures a Recognizer at construction time.
type Option func(*Recognizer)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Recognizer) { r.client.Timeout = d }
}

// WithHTTPClient substitutes the HTTP client, primarily for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Recognizer) { r.client = c }
}

// NewRecognizer creates a recognizer pointing at the given base URL
// (e.g. "http://ner-service:8001").
func NewRecognizer(baseURL string, opts ...Option) *Recognizer {
	r := &Recognizer{
		url:    baseURL + "/analyze",
		client: &http.Client{Timeout: DefaultTimeout},
		entities: []string{
			detector.EntityPerson,
			detector.EntityLocation,
			detector.EntityOrganization,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type analyzeRequest struct {
	Text     string   `json:"text"`
	Entities []string `json:"entities,omitempty"`
}

type analyzeResponse struct {
	Results []remoteSpan `json:"results"`
}

type remoteSpan struct {
	EntityType string  `json:"entity_type"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Score      float64 `json:"score"`
}

// Name implements detector.Recognizer.
func (r *Recognizer) Name() string { return RecognizerName }

// SupportedEntities implements detector.Recognizer.
func (r *Recognizer) SupportedEntities() []string { return r.entities }

// Ready probes the service's health endpoint. Callers may use it at startup
// to decide whether to register this recognizer at all.
func (r *Recognizer) Ready(ctx context.Context) bool {
	base := r.url[:len(r.url)-len("/analyze")]
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Analyze implements detector.Recognizer. Transport and service failures
// degrade to zero candidates rather than errors: the remote layer is an
// enrichment, not a dependency. Malformed response bodies are still reported
// as errors because they indicate a contract break, not an outage.
func (r *Recognizer) Analyze(text string, entities []string) ([]detector.Candidate, error) {
	if text == "" {
		return nil, nil
	}

	wanted := make([]string, 0, len(r.entities))
	for _, e := range r.entities {
		if detector.WantsEntity(entities, e) {
			wanted = append(wanted, e)
		}
	}
	if len(wanted) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(analyzeRequest{Text: text, Entities: wanted})
	if err != nil {
		return nil, fmt.Errorf("external: marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.client.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("external: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var result analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("external: decode response: %w", err)
	}

	candidates := make([]detector.Candidate, 0, len(result.Results))
	for _, s := range result.Results {
		c := detector.Candidate{
			EntityType:  s.EntityType,
			Start:       s.Start,
			End:         s.End,
			Score:       s.Score,
			Source:      RecognizerName,
			Explanation: "remote model prediction",
		}
		if !c.Valid(len(text)) {
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}
