// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

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
		Authors:         []string{"A. Smith", "B. Lee", "C. Wu", "D. Park", "E. Jones", "F. Chen"},
		Abstract:        strings.Repeat("Early sepsis prediction saves lives. ", 20),
		Categories:      []string{"cs.LG", "q-bio.QM"},
		PrimaryCategory: "cs.LG",
	}
}

func TestSummarizeParsesResponse(t *testing.T) {
	backend := &stubBackend{response: "```json\n" + `{
		"summary": "The paper presents a sepsis early-warning model.",
		"key_points": ["uses ICU vitals", "LSTM architecture", "AUROC 0.91"],
		"medical_relevance": "Earlier sepsis treatment improves survival.",
		"keywords": ["sepsis", "icu", "deep learning"],
		"medical_domains": ["Critical Care"],
		"methodology": "Retrospective cohort, LSTM",
		"key_findings": "AUROC 0.91 at 6h horizon",
		"clinical_impact": "Bedside alerting",
		"limitations": "Single-center data",
		"future_directions": "Prospective validation"
	}` + "\n```"}

	s := New(backend)
	sum := s.Summarize(context.Background(), sampleCandidate())

	if sum.Summary != "The paper presents a sepsis early-warning model." {
		t.Errorf("Summary = %q", sum.Summary)
	}
	if len(sum.KeyPoints) != 3 {
		t.Errorf("KeyPoints = %v", sum.KeyPoints)
	}
	if sum.Limitations != "Single-center data" {
		t.Errorf("Limitations = %q", sum.Limitations)
	}
}

func TestSummarizePromptTruncatesAuthors(t *testing.T) {
	backend := &stubBackend{response: `{"summary": "x"}`}
	s := New(backend)
	s.Summarize(context.Background(), sampleCandidate())

	prompt := backend.prompts[0]
	if !strings.Contains(prompt, "A. Smith, B. Lee, C. Wu, D. Park, E. Jones...") {
		t.Errorf("prompt does not truncate author list:\n%s", prompt)
	}
	if strings.Contains(prompt, "F. Chen") {
		t.Error("prompt includes author beyond the limit")
	}
}

func TestSummarizeFallbackOnUnparsableResponse(t *testing.T) {
	backend := &stubBackend{response: "no structured data here"}
	s := New(backend)

	c := sampleCandidate()
	sum := s.Summarize(context.Background(), c)

	if sum.KeyPoints == nil || len(sum.KeyPoints) != 1 || sum.KeyPoints[0] != "See abstract for details" {
		t.Errorf("KeyPoints = %v, want single fallback entry", sum.KeyPoints)
	}
	if len(sum.MedicalDomains) != 1 || sum.MedicalDomains[0] != c.PrimaryCategory {
		t.Errorf("MedicalDomains = %v, want [%s]", sum.MedicalDomains, c.PrimaryCategory)
	}
}

func TestSummarizeFallbackOnTransportError(t *testing.T) {
	backend := &stubBackend{err: fmt.Errorf("api unreachable")}
	s := New(backend)

	sum := s.Summarize(context.Background(), sampleCandidate())
	if sum.Limitations != "Not analyzed" {
		t.Errorf("Limitations = %q, want fallback value", sum.Limitations)
	}
}

func TestFallbackDeterminism(t *testing.T) {
	c := sampleCandidate()

	a := Fallback(c)
	b := Fallback(c)

	if a.Summary != b.Summary {
		t.Error("Fallback is not deterministic")
	}
	if !strings.HasSuffix(a.Summary, "...") {
		t.Errorf("Summary does not end with ellipsis: %q", a.Summary)
	}
	// Abstract excerpt plus the three-character ellipsis.
	if len(a.Summary) != fallbackAbstractLimit+3 {
		t.Errorf("Summary length = %d, want %d", len(a.Summary), fallbackAbstractLimit+3)
	}
	if len(a.Keywords) != len(c.Categories) {
		t.Errorf("Keywords = %v, want candidate categories", a.Keywords)
	}
}

func TestFallbackShortAbstract(t *testing.T) {
	c := sampleCandidate()
	c.Abstract = "Short."

	sum := Fallback(c)
	if sum.Summary != "Short...." {
		t.Errorf("Summary = %q", sum.Summary)
	}
}
