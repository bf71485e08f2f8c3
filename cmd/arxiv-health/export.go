// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/BryanTegomoh/arxiv-health/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the collection with statistics to YAML or JSON",
	Long: `Export writes a snapshot of the collection: all stored papers plus the
derived statistics, weekly activity, and trending ranking. Output goes to
stdout unless --output names a file.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := export.Build(context.Background(), st, time.Now().UTC())
	if err != nil {
		return err
	}

	out := os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		out = f
		defer fmt.Fprintf(os.Stderr, "Exported to %s\n", path)
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "yaml", "":
		return snap.WriteYAML(out)
	case "json":
		return snap.WriteJSON(out)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().String("output", "", "write to file instead of stdout")

	rootCmd.AddCommand(exportCmd)
}
