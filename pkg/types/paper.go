// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the arxiv-health pipeline:
// candidate papers fetched from arXiv, curated records persisted in the paper
// store, and the configuration structs passed into each stage.
package types

import "time"

// Candidate represents a paper's raw metadata as fetched from arXiv, before
// relevance filtering and summarization. Candidates are transient: they exist
// only while the pipeline drives them to a terminal outcome.
type Candidate struct {
	// ArxivID is the arXiv identifier including any version suffix
	// (e.g. "2301.12345v1"). Globally unique across the store.
	ArxivID string `json:"arxiv_id" yaml:"arxiv_id"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Categories lists all arXiv category tags (e.g. "cs.LG", "q-bio.QM").
	Categories []string `json:"categories" yaml:"categories"`

	// PrimaryCategory is the paper's primary arXiv category.
	PrimaryCategory string `json:"primary_category" yaml:"primary_category"`

	// Published is the original submission timestamp.
	Published time.Time `json:"published" yaml:"published"`

	// Updated is the timestamp of the latest revision.
	Updated time.Time `json:"updated" yaml:"updated"`

	// PDFURL is the link to the paper's PDF.
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`

	// ArxivURL is the abstract page URL.
	ArxivURL string `json:"arxiv_url" yaml:"arxiv_url"`

	// Comment is the author-supplied comment line, if any.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	// JournalRef is the journal reference, if the paper has been published.
	JournalRef string `json:"journal_ref,omitempty" yaml:"journal_ref,omitempty"`
}

// Record is a curated paper entry: a Candidate enriched with the AI summary
// and relevance metadata, persisted in the store. Identity fields (arxiv_id,
// title, abstract, published) never change after insert; only enrichment
// fields such as CitationCount may be updated in place.
type Record struct {
	Candidate `yaml:",inline"`

	// Summary is a 2-3 sentence overview of the paper.
	Summary string `json:"summary" yaml:"summary"`

	// KeyPoints lists specific bullet points covering methodology, results,
	// and implications.
	KeyPoints []string `json:"key_points" yaml:"key_points"`

	// MedicalRelevance explains why the paper matters for medicine or health.
	MedicalRelevance string `json:"medical_relevance" yaml:"medical_relevance"`

	// Keywords lists topical keywords for search.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// MedicalDomains lists the medical fields the paper touches. Case is
	// preserved as returned by the summarizer; comparisons are case-insensitive.
	MedicalDomains []string `json:"medical_domains" yaml:"medical_domains"`

	// Methodology describes the methods used.
	Methodology string `json:"methodology,omitempty" yaml:"methodology,omitempty"`

	// KeyFindings states the main results or discoveries.
	KeyFindings string `json:"key_findings,omitempty" yaml:"key_findings,omitempty"`

	// ClinicalImpact describes the potential clinical or practical impact.
	ClinicalImpact string `json:"clinical_impact,omitempty" yaml:"clinical_impact,omitempty"`

	// Limitations notes caveats called out by the paper.
	Limitations string `json:"limitations,omitempty" yaml:"limitations,omitempty"`

	// FutureDirections notes suggested follow-up research.
	FutureDirections string `json:"future_directions,omitempty" yaml:"future_directions,omitempty"`

	// RelevanceScore is the classifier's topical-fit score in [0, 1].
	RelevanceScore float64 `json:"relevance_score" yaml:"relevance_score"`

	// RelevanceReasoning is the classifier's explanation for the score.
	RelevanceReasoning string `json:"relevance_reasoning" yaml:"relevance_reasoning"`

	// AIHealthApplication describes the AI application to health, if any.
	AIHealthApplication string `json:"ai_health_application,omitempty" yaml:"ai_health_application,omitempty"`

	// AddedToDB is set once at insert and never changes.
	AddedToDB time.Time `json:"added_to_db" yaml:"added_to_db"`

	// CitationCount is populated by the Semantic Scholar enrichment step.
	// Zero when the paper has not been enriched or has no citations.
	CitationCount int `json:"citation_count,omitempty" yaml:"citation_count,omitempty"`
}
