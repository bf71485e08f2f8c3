// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BryanTegomoh/arxiv-health/internal/citation"
	"github.com/BryanTegomoh/arxiv-health/internal/store"
	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

var papersCmd = &cobra.Command{
	Use:   "papers",
	Short: "List, search, and cite stored papers",
	Long: `Papers manages the stored collection. Use subcommands to list papers,
search titles and abstracts, show a single paper, or generate citations.`,
}

// --- list subcommand ---

var papersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored papers",
	RunE:  runPapersList,
}

func runPapersList(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	sortBy, _ := cmd.Flags().GetString("sort")
	records, err := st.All(context.Background(), store.SortBy(sortBy))
	if err != nil {
		return err
	}

	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatPapersOutput(records, jsonOutput)
}

// --- search subcommand ---

var papersSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search stored papers by title, abstract, and keywords",
	Long: `Search matches the query case-insensitively against each paper's title,
abstract, and extracted keywords. Use --domain to filter by medical domain
instead.`,
	RunE: runPapersSearch,
}

func runPapersSearch(cmd *cobra.Command, args []string) error {
	domain, _ := cmd.Flags().GetString("domain")
	if domain == "" && len(args) == 0 {
		return fmt.Errorf("query or --domain required")
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	var records []types.Record
	if domain != "" {
		records, err = st.ByDomain(context.Background(), domain)
	} else {
		records, err = st.Search(context.Background(), strings.Join(args, " "))
	}
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatPapersOutput(records, jsonOutput)
}

// --- get subcommand ---

var papersGetCmd = &cobra.Command{
	Use:   "get <arxiv-id>",
	Short: "Show one stored paper in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runPapersGet,
}

func runPapersGet(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	rec, err := st.Get(context.Background(), args[0])
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("paper %s not found", args[0])
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

// --- cite subcommand ---

var papersCiteCmd = &cobra.Command{
	Use:   "cite <arxiv-id>",
	Short: "Generate a citation for a stored paper",
	Long:  `Cite prints the paper's citation in BibTeX (default), RIS, or EndNote format.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPapersCite,
}

func runPapersCite(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	rec, err := st.Get(context.Background(), args[0])
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("paper %s not found", args[0])
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "bibtex", "":
		fmt.Println(citation.BibTeX(*rec))
	case "ris":
		fmt.Print(citation.RIS(*rec))
	case "endnote":
		fmt.Print(citation.EndNote(*rec))
	default:
		return fmt.Errorf("unsupported format %q: use bibtex, ris, or endnote", format)
	}
	return nil
}

// --- shared output ---

func formatPapersOutput(records []types.Record, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No papers found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-16s  %-56s  %-10s  %-5s\n", "ArXiv ID", "Title", "Published", "Score")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 95))

	for _, r := range records {
		title := r.Title
		if len(title) > 56 {
			title = title[:53] + "..."
		}
		published := ""
		if !r.Published.IsZero() {
			published = r.Published.Format("2006-01-02")
		}
		fmt.Fprintf(os.Stdout, "%-16s  %-56s  %-10s  %.2f\n", r.ArxivID, title, published, r.RelevanceScore)
	}

	fmt.Fprintf(os.Stdout, "\n%d papers\n", len(records))
	return nil
}

func init() {
	papersListCmd.Flags().String("sort", "published", "sort field: published, relevance_score, or added_to_db")
	papersListCmd.Flags().Int("limit", 0, "maximum papers to list (0 = all)")
	papersListCmd.Flags().Bool("json", false, "output papers as JSON")

	papersSearchCmd.Flags().String("domain", "", "filter by medical domain instead of text query")
	papersSearchCmd.Flags().Bool("json", false, "output papers as JSON")

	papersCiteCmd.Flags().String("format", "bibtex", "citation format: bibtex, ris, or endnote")

	papersCmd.AddCommand(papersListCmd)
	papersCmd.AddCommand(papersSearchCmd)
	papersCmd.AddCommand(papersGetCmd)
	papersCmd.AddCommand(papersCiteCmd)

	rootCmd.AddCommand(papersCmd)
}
