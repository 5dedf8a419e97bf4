// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"piiscan/internal/detector"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestAnalyzeSuccess(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze" {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{
				{"entity_type": "PERSON", "start": 0, "end": 4, "score": 0.92},
			},
		})
	})

	r := NewRecognizer(server.URL)
	got, err := r.Analyze("Jane called", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	c := got[0]
	if c.EntityType != detector.EntityPerson || c.Start != 0 || c.End != 4 || c.Score != 0.92 {
		t.Errorf("unexpected candidate: %+v", c)
	}
	if c.Source != RecognizerName {
		t.Errorf("expected source %s, got %s", RecognizerName, c.Source)
	}
}

func TestAnalyzeUnreachableDegrades(t *testing.T) {
	// Closed server: connection refused.
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	r := NewRecognizer(url, WithTimeout(500*time.Millisecond))
	got, err := r.Analyze("some text", nil)
	if err != nil {
		t.Fatalf("transport failure must degrade, not error: %v", err)
	}
	if got != nil {
		t.Errorf("expected no candidates, got %+v", got)
	}
}

func TestAnalyzeTimeoutDegrades(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	})

	r := NewRecognizer(server.URL, WithTimeout(50*time.Millisecond))
	start := time.Now()
	got, err := r.Analyze("some text", nil)
	if err != nil {
		t.Fatalf("timeout must degrade, not error: %v", err)
	}
	if got != nil {
		t.Errorf("expected no candidates, got %+v", got)
	}
	if time.Since(start) > time.Second {
		t.Error("timeout did not bound the request")
	}
}

func TestAnalyzeServerErrorDegrades(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	})

	r := NewRecognizer(server.URL)
	got, err := r.Analyze("some text", nil)
	if err != nil || got != nil {
		t.Errorf("expected nil, nil on server error, got %+v, %v", got, err)
	}
}

func TestAnalyzeMalformedBodyErrors(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	r := NewRecognizer(server.URL)
	if _, err := r.Analyze("some text", nil); err == nil {
		t.Error("expected error for malformed response body")
	}
}

func TestAnalyzeDropsInvalidSpans(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{
				{"entity_type": "PERSON", "start": 0, "end": 4, "score": 0.9},
				{"entity_type": "PERSON", "start": 2, "end": 500, "score": 0.9},
			},
		})
	})

	r := NewRecognizer(server.URL)
	got, err := r.Analyze("Jane called", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected out-of-bounds span to be dropped, got %+v", got)
	}
}

func TestAnalyzeEntityFilter(t *testing.T) {
	called := false
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		json.NewEncoder(w).Encode(map[string]interface{}{"results": []map[string]interface{}{}})
	})

	r := NewRecognizer(server.URL)
	got, err := r.Analyze("some text", []string{detector.EntityAPIKey})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected no candidates, got %+v", got)
	}
	if called {
		t.Error("no supported entity requested; the service should not be called")
	}
}

func TestReady(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	})

	r := NewRecognizer(server.URL)
	if !r.Ready(context.Background()) {
		t.Error("expected ready against healthy server")
	}

	down := NewRecognizer("http://127.0.0.1:1", WithTimeout(200*time.Millisecond))
	if down.Ready(context.Background()) {
		t.Error("expected not ready against unreachable server")
	}
}
