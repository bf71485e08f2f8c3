// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize produces a structured summary for an accepted candidate.
// A summarizer failure never revokes an accepted relevance decision: when the
// backend is unreachable or its response cannot be parsed, the package builds
// a deterministic fallback summary from the candidate's own metadata.
package summarize

import (
	"context"
	"encoding/json"

	"github.com/BryanTegomoh/arxiv-health/internal/ai"
	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

// fallbackAbstractLimit caps the abstract excerpt used as the fallback summary.
const fallbackAbstractLimit = 300

// Summary is the structured analysis produced for one paper.
type Summary struct {
	// Summary is a 2-3 sentence overview of contribution and findings.
	Summary string `json:"summary"`

	// KeyPoints lists 5-7 bullet points covering methodology, results,
	// and implications.
	KeyPoints []string `json:"key_points"`

	// MedicalRelevance explains why the paper matters for medicine or health.
	MedicalRelevance string `json:"medical_relevance"`

	// Keywords lists 5-8 topical keywords.
	Keywords []string `json:"keywords"`

	// MedicalDomains lists the specific medical fields.
	MedicalDomains []string `json:"medical_domains"`

	// Methodology describes the methods used.
	Methodology string `json:"methodology"`

	// KeyFindings states the main results or discoveries.
	KeyFindings string `json:"key_findings"`

	// ClinicalImpact describes potential clinical or practical impact.
	ClinicalImpact string `json:"clinical_impact"`

	// Limitations notes caveats called out by the paper.
	Limitations string `json:"limitations"`

	// FutureDirections notes suggested follow-up research.
	FutureDirections string `json:"future_directions"`
}

// Summarizer invokes a text-generation backend to analyze papers.
type Summarizer struct {
	backend ai.TextBackend
}

// New constructs a Summarizer using the given backend.
func New(backend ai.TextBackend) *Summarizer {
	return &Summarizer{backend: backend}
}

// Summarize produces a Summary for the candidate. It never fails: on a
// transport error or an unparsable response it returns Fallback(c).
func (s *Summarizer) Summarize(ctx context.Context, c types.Candidate) Summary {
	prompt, err := renderSummaryPrompt(c)
	if err != nil {
		return Fallback(c)
	}

	raw, err := s.backend.Complete(ctx, prompt)
	if err != nil {
		return Fallback(c)
	}

	payload, err := ai.ExtractJSONObject(raw)
	if err != nil {
		return Fallback(c)
	}

	var sum Summary
	if err := json.Unmarshal(payload, &sum); err != nil {
		return Fallback(c)
	}
	return sum
}

// Fallback builds the deterministic summary used when the backend fails.
// The candidate is still persisted; only the analysis detail is lost.
func Fallback(c types.Candidate) Summary {
	abstract := c.Abstract
	if len(abstract) > fallbackAbstractLimit {
		abstract = abstract[:fallbackAbstractLimit]
	}

	return Summary{
		Summary:          abstract + "...",
		KeyPoints:        []string{"See abstract for details"},
		MedicalRelevance: "Medical/health related research",
		Keywords:         c.Categories,
		MedicalDomains:   []string{c.PrimaryCategory},
		Methodology:      "See paper for methodology",
		KeyFindings:      "See abstract",
		ClinicalImpact:   "Potential clinical applications",
		Limitations:      "Not analyzed",
		FutureDirections: "Not analyzed",
	}
}
