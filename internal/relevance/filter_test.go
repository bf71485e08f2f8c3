// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

// stubBackend returns a canned response or error for every prompt.
type stubBackend struct {
	response string
	err      error
	prompts  []string
}

func (s *stubBackend) Name() string { return "stub" }

func (s *stubBackend) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func sampleCandidate() types.Candidate {
	return types.Candidate{
		ArxivID:         "2301.12345v1",
		Title:           "Deep Learning for Sepsis Detection",
		Abstract:        "We present a model for early sepsis prediction in ICU patients.",
		Categories:      []string{"cs.LG", "q-bio.QM"},
		PrimaryCategory: "cs.LG",
	}
}

func TestCheckParsesDecision(t *testing.T) {
	backend := &stubBackend{response: `Sure, here is my analysis:
{"is_relevant": true, "relevance_score": 0.92, "reasoning": "clinical prediction task",
 "medical_domains": ["Critical Care", "Infectious Disease"],
 "ai_health_application": "early warning for sepsis"}`}

	f := New(backend, types.FilterConfig{})
	d := f.Check(context.Background(), sampleCandidate())

	if !d.IsRelevant {
		t.Error("IsRelevant = false, want true")
	}
	if d.Score != 0.92 {
		t.Errorf("Score = %v, want 0.92", d.Score)
	}
	if len(d.MedicalDomains) != 2 {
		t.Errorf("MedicalDomains = %v", d.MedicalDomains)
	}
	if !f.Accept(d) {
		t.Error("Accept = false for relevant high-score decision")
	}
}

func TestCheckPromptContainsCandidateFields(t *testing.T) {
	backend := &stubBackend{response: `{"is_relevant": false}`}
	f := New(backend, types.FilterConfig{})
	f.Check(context.Background(), sampleCandidate())

	if len(backend.prompts) != 1 {
		t.Fatalf("backend called %d times, want 1", len(backend.prompts))
	}
	prompt := backend.prompts[0]
	for _, want := range []string{
		"Deep Learning for Sepsis Detection",
		"early sepsis prediction",
		"cs.LG, q-bio.QM",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestCheckUnparsableResponse(t *testing.T) {
	backend := &stubBackend{response: "I am unable to provide a structured answer."}
	f := New(backend, types.FilterConfig{})

	d := f.Check(context.Background(), sampleCandidate())

	if d.IsRelevant {
		t.Error("IsRelevant = true for unparsable response")
	}
	if d.Score != 0.0 {
		t.Errorf("Score = %v, want 0", d.Score)
	}
	if d.Reasoning != "Failed to parse response" {
		t.Errorf("Reasoning = %q", d.Reasoning)
	}
	if len(d.MedicalDomains) != 0 {
		t.Errorf("MedicalDomains = %v, want empty", d.MedicalDomains)
	}
}

func TestCheckTransportError(t *testing.T) {
	backend := &stubBackend{err: fmt.Errorf("connection refused")}
	f := New(backend, types.FilterConfig{})

	d := f.Check(context.Background(), sampleCandidate())

	if d.IsRelevant || d.Score != 0.0 {
		t.Errorf("got decision %+v, want synthetic rejection", d)
	}
	if !strings.Contains(d.Reasoning, "connection refused") {
		t.Errorf("Reasoning = %q, want error text", d.Reasoning)
	}
}

func TestAcceptRequiresBothSignals(t *testing.T) {
	f := New(&stubBackend{}, types.FilterConfig{MinRelevance: 0.6})

	tests := []struct {
		name     string
		decision Decision
		want     bool
	}{
		{"relevant above threshold", Decision{IsRelevant: true, Score: 0.8}, true},
		{"relevant at threshold", Decision{IsRelevant: true, Score: 0.6}, true},
		{"relevant below threshold", Decision{IsRelevant: true, Score: 0.5}, false},
		{"not relevant despite high score", Decision{IsRelevant: false, Score: 0.9}, false},
		{"neither", Decision{IsRelevant: false, Score: 0.1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Accept(tt.decision); got != tt.want {
				t.Errorf("Accept(%+v) = %v, want %v", tt.decision, got, tt.want)
			}
		})
	}
}

func TestDefaultThreshold(t *testing.T) {
	f := New(&stubBackend{}, types.FilterConfig{})
	if f.MinRelevance() != DefaultMinRelevance {
		t.Errorf("MinRelevance() = %v, want %v", f.MinRelevance(), DefaultMinRelevance)
	}
}

func TestCheckMissingFieldsDefault(t *testing.T) {
	// A sparse but valid object resolves missing fields to zero values.
	backend := &stubBackend{response: `{"relevance_score": 0.7}`}
	f := New(backend, types.FilterConfig{})

	d := f.Check(context.Background(), sampleCandidate())
	if d.IsRelevant {
		t.Error("missing is_relevant should default to false")
	}
	if f.Accept(d) {
		t.Error("Accept = true without is_relevant flag")
	}
}
