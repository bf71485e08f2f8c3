// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BryanTegomoh/arxiv-health/internal/ai"
	"github.com/BryanTegomoh/arxiv-health/internal/arxiv"
	"github.com/BryanTegomoh/arxiv-health/internal/pipeline"
	"github.com/BryanTegomoh/arxiv-health/internal/relevance"
	"github.com/BryanTegomoh/arxiv-health/internal/store"
	"github.com/BryanTegomoh/arxiv-health/internal/summarize"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch, filter, summarize, and store recent papers",
	Long: `Run executes one monitoring pass: it queries arXiv for recent papers
matching the health keywords and categories, skips papers already stored,
classifies the rest for relevance with the configured AI provider,
summarizes the accepted ones, and records them in the database.

Classifier and summarizer failures affect only the paper at hand; a paper
with a failed summary is stored with a fallback summary built from its
abstract.`,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := pipelineConfig(cmd)
	if err != nil {
		return err
	}

	backend, err := ai.New(cfg.AI)
	if err != nil {
		return err
	}

	st, err := store.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()

	client := arxiv.NewClient(cfg.Search)
	fmt.Fprintf(os.Stderr, "fetching recent papers (last %d days)\n", cfg.Search.DaysBack)
	candidates, err := client.FetchRecent(ctx)
	if err != nil {
		return fmt.Errorf("fetching papers: %w", err)
	}
	if len(candidates) == 0 {
		fmt.Println("no new papers found")
		return nil
	}

	p := pipeline.New(st, relevance.New(backend, cfg.Filter), summarize.New(backend))
	summary, err := p.Run(ctx, candidates, os.Stdout)
	if err != nil {
		return err
	}

	if summary.Added == 0 {
		fmt.Println("no papers added this run")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
