// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BryanTegomoh/arxiv-health/internal/scholar"
	"github.com/BryanTegomoh/arxiv-health/internal/store"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Refresh citation counts from Semantic Scholar",
	Long: `Enrich looks up every stored paper on Semantic Scholar and records its
current citation count. Papers not indexed there are reported and left
unchanged. An API key in .secrets/semantic-scholar-api-key raises the
rate limit but is not required.`,
	RunE: runEnrich,
}

func runEnrich(cmd *cobra.Command, args []string) error {
	cfg, err := pipelineConfig(cmd)
	if err != nil {
		return err
	}

	st, err := store.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	client := scholar.NewClient(cfg.Scholar)
	summary, err := scholar.Enrich(context.Background(), client, st, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Total() == 0 {
		fmt.Println("no papers to enrich")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(enrichCmd)
}
