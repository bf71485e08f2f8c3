// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives each candidate paper through the curation sequence:
// dedup check, relevance filter, summarization, store insert. Candidates are
// processed strictly one at a time; the store's uniqueness invariant relies on
// a single logical writer per run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/BryanTegomoh/arxiv-health/internal/relevance"
	"github.com/BryanTegomoh/arxiv-health/internal/store"
	"github.com/BryanTegomoh/arxiv-health/internal/summarize"
	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

// OutcomeKind is the terminal state of one candidate.
type OutcomeKind string

const (
	// OutcomeSkipped means the candidate was already stored; no AI call was made.
	OutcomeSkipped OutcomeKind = "skipped"

	// OutcomeRejected means the relevance filter declined the candidate.
	OutcomeRejected OutcomeKind = "rejected"

	// OutcomePersisted means the candidate was summarized and stored.
	OutcomePersisted OutcomeKind = "persisted"
)

// Outcome is the result of processing one candidate. All three kinds are
// terminal; nothing is retried automatically.
type Outcome struct {
	Kind OutcomeKind

	// Reason explains a skip or rejection.
	Reason string

	// Record is the persisted record; set only for OutcomePersisted.
	Record *types.Record
}

// Pipeline sequences the curation stages over a shared store.
type Pipeline struct {
	store      *store.Store
	filter     *relevance.Filter
	summarizer *summarize.Summarizer
}

// New constructs a Pipeline from its three collaborators.
func New(s *store.Store, f *relevance.Filter, sum *summarize.Summarizer) *Pipeline {
	return &Pipeline{store: s, filter: f, summarizer: sum}
}

// Process drives one candidate to a terminal outcome. The dedup check runs
// before any AI call so duplicates cost nothing. Classifier failures surface
// as rejections and summarizer failures as fallback-enriched records, so the
// caller can continue with the next candidate. Only store errors are returned;
// they are fatal to the run.
func (p *Pipeline) Process(ctx context.Context, c types.Candidate) (Outcome, error) {
	exists, err := p.store.Exists(ctx, c.ArxivID)
	if err != nil {
		return Outcome{}, err
	}
	if exists {
		return Outcome{Kind: OutcomeSkipped, Reason: "already in database"}, nil
	}

	decision := p.filter.Check(ctx, c)
	if !p.filter.Accept(decision) {
		reason := decision.Reasoning
		if reason == "" {
			reason = fmt.Sprintf("relevance score %.2f below threshold", decision.Score)
		}
		return Outcome{Kind: OutcomeRejected, Reason: reason}, nil
	}

	summary := p.summarizer.Summarize(ctx, c)
	rec := merge(c, decision, summary)

	inserted, err := p.store.Insert(ctx, &rec)
	if err != nil {
		return Outcome{}, err
	}
	if !inserted {
		// The gate should have caught this; treat it as a duplicate skip.
		return Outcome{Kind: OutcomeSkipped, Reason: "already in database"}, nil
	}

	return Outcome{Kind: OutcomePersisted, Record: &rec}, nil
}

// merge combines candidate metadata, the relevance decision, and the summary
// into one record.
func merge(c types.Candidate, d relevance.Decision, s summarize.Summary) types.Record {
	return types.Record{
		Candidate:           c,
		Summary:             s.Summary,
		KeyPoints:           s.KeyPoints,
		MedicalRelevance:    s.MedicalRelevance,
		Keywords:            s.Keywords,
		MedicalDomains:      s.MedicalDomains,
		Methodology:         s.Methodology,
		KeyFindings:         s.KeyFindings,
		ClinicalImpact:      s.ClinicalImpact,
		Limitations:         s.Limitations,
		FutureDirections:    s.FutureDirections,
		RelevanceScore:      d.Score,
		RelevanceReasoning:  d.Reasoning,
		AIHealthApplication: d.AIHealthApplication,
	}
}

// RunSummary holds counts from one pipeline run.
type RunSummary struct {
	Added    int
	Skipped  int
	Rejected int
}

// Total returns the number of candidates processed.
func (s RunSummary) Total() int {
	return s.Added + s.Skipped + s.Rejected
}

// Run processes candidates in order, writing one progress line per candidate.
// Cancellation is honored between candidates only: a candidate's classify,
// summarize, and insert sequence runs to completion once started. On success
// the store's last-run timestamp is updated.
func (p *Pipeline) Run(ctx context.Context, candidates []types.Candidate, w io.Writer) (RunSummary, error) {
	var summary RunSummary

	for i, c := range candidates {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		fmt.Fprintf(w, "[%d/%d] %s\n", i+1, len(candidates), truncate(c.Title, 70))

		outcome, err := p.Process(ctx, c)
		if err != nil {
			return summary, fmt.Errorf("processing %s: %w", c.ArxivID, err)
		}

		switch outcome.Kind {
		case OutcomeSkipped:
			fmt.Fprintf(w, "  skipped %s: %s\n", c.ArxivID, outcome.Reason)
			summary.Skipped++
		case OutcomeRejected:
			fmt.Fprintf(w, "  rejected %s: %s\n", c.ArxivID, outcome.Reason)
			summary.Rejected++
		case OutcomePersisted:
			fmt.Fprintf(w, "  added %s (score %.2f, domains: %s)\n",
				c.ArxivID, outcome.Record.RelevanceScore, joinOrDash(outcome.Record.MedicalDomains))
			summary.Added++
		}
	}

	fmt.Fprintf(w, "\nadded: %d, skipped: %d, rejected: %d\n",
		summary.Added, summary.Skipped, summary.Rejected)

	if err := p.store.SetLastRun(ctx, time.Now()); err != nil {
		return summary, err
	}
	return summary, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func joinOrDash(list []string) string {
	if len(list) == 0 {
		return "-"
	}
	out := list[0]
	for _, v := range list[1:] {
		out += ", " + v
	}
	return out
}
