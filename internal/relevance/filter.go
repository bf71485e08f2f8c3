// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package relevance decides whether a candidate paper belongs in the health
// corpus. It asks a text-generation backend for a structured judgment and
// turns the raw response into a typed accept/reject decision. Malformed or
// failed responses become synthetic rejections; the filter never returns an
// error to its caller.
package relevance

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BryanTegomoh/arxiv-health/internal/ai"
	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

// DefaultMinRelevance is the acceptance threshold used when the config
// leaves MinRelevance unset.
const DefaultMinRelevance = 0.6

// Decision is the classifier's structured judgment for one candidate.
type Decision struct {
	// IsRelevant is the classifier's boolean verdict.
	IsRelevant bool `json:"is_relevant"`

	// Score is the relevance score in [0, 1].
	Score float64 `json:"relevance_score"`

	// Reasoning is a brief explanation. Synthetic rejections carry
	// "Failed to parse response" or the transport error text here.
	Reasoning string `json:"reasoning"`

	// MedicalDomains lists the medical fields the classifier identified.
	MedicalDomains []string `json:"medical_domains"`

	// AIHealthApplication describes the AI application to health, if any.
	AIHealthApplication string `json:"ai_health_application"`
}

// Filter invokes a text-generation backend to classify candidates.
type Filter struct {
	backend      ai.TextBackend
	minRelevance float64
}

// New constructs a Filter using the backend and the configured threshold.
func New(backend ai.TextBackend, cfg types.FilterConfig) *Filter {
	min := cfg.MinRelevance
	if min <= 0 {
		min = DefaultMinRelevance
	}
	return &Filter{backend: backend, minRelevance: min}
}

// MinRelevance returns the acceptance threshold in effect.
func (f *Filter) MinRelevance() float64 { return f.minRelevance }

// Check classifies one candidate. It always returns a Decision: a transport
// failure yields a rejection with the error text as reasoning, and a response
// without a parsable JSON object yields a rejection with a fixed reasoning
// string. Neither failure mode aborts the run.
func (f *Filter) Check(ctx context.Context, c types.Candidate) Decision {
	prompt, err := renderRelevancePrompt(c)
	if err != nil {
		return rejection(fmt.Sprintf("Error: %v", err))
	}

	raw, err := f.backend.Complete(ctx, prompt)
	if err != nil {
		return rejection(fmt.Sprintf("Error: %v", err))
	}

	payload, err := ai.ExtractJSONObject(raw)
	if err != nil {
		return rejection("Failed to parse response")
	}

	var d Decision
	if err := json.Unmarshal(payload, &d); err != nil {
		return rejection("Failed to parse response")
	}
	return d
}

// Accept reports whether a decision clears the gate: the classifier must both
// mark the candidate relevant and score it at or above the threshold. The two
// signals can disagree (a true flag with a low score); such candidates are
// rejected.
func (f *Filter) Accept(d Decision) bool {
	return d.IsRelevant && d.Score >= f.minRelevance
}

// rejection builds the synthetic Decision used for both failure modes.
func rejection(reasoning string) Decision {
	return Decision{
		IsRelevant:     false,
		Score:          0.0,
		Reasoning:      reasoning,
		MedicalDomains: []string{},
	}
}
