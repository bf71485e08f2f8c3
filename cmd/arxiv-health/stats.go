// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/BryanTegomoh/arxiv-health/internal/analytics"
	"github.com/BryanTegomoh/arxiv-health/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics",
	Long: `Stats summarizes the stored collection: paper count, average relevance
score, publication date range, top medical domains, and the last run time.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	stats, err := st.Statistics(ctx)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Printf("Total papers:      %d\n", stats.TotalPapers)
	fmt.Printf("Average relevance: %.2f\n", stats.AverageRelevance)
	if stats.DateRange.Earliest != "" {
		fmt.Printf("Published range:   %s to %s\n", stats.DateRange.Earliest, stats.DateRange.Latest)
	}
	if len(stats.TopDomains) > 0 {
		fmt.Println("Top domains:")
		for _, d := range stats.TopDomains {
			fmt.Printf("  %-30s %d\n", d.Domain, d.Count)
		}
	}

	lastRun, ok, err := st.LastRun(ctx)
	if err != nil {
		return err
	}
	if ok {
		fmt.Printf("Last run:          %s\n", lastRun.Format(time.RFC3339))
	}
	return nil
}

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Rank stored papers by trending score",
	Long: `Trending scores each paper on publication recency, relevance, and
citation count, then prints the highest-scoring papers.`,
	RunE: runTrending,
}

func runTrending(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.All(context.Background(), store.SortByPublished)
	if err != nil {
		return err
	}

	ranked := analytics.TopTrending(records, time.Now().UTC())

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ranked)
	}

	if len(ranked) == 0 {
		fmt.Println("No papers found.")
		return nil
	}
	for i, r := range ranked {
		fmt.Printf("%2d. [%6.2f] %s  %s\n", i+1, r.TrendingScore, r.ArxivID, r.Title)
	}
	return nil
}

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Show papers added in the last seven days",
	RunE:  runWeekly,
}

func runWeekly(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.All(context.Background(), store.SortByPublished)
	if err != nil {
		return err
	}

	stats := analytics.Weekly(records, time.Now().UTC())

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Printf("Papers this week: %d of %d total\n", stats.PapersThisWeek, stats.TotalPapers)
	if len(stats.TopDomains) > 0 {
		parts := make([]string, len(stats.TopDomains))
		for i, d := range stats.TopDomains {
			parts[i] = fmt.Sprintf("%s (%d)", d.Domain, d.Count)
		}
		fmt.Printf("Top domains:      %s\n", strings.Join(parts, ", "))
	}
	for _, r := range stats.WeeklyPapers {
		fmt.Printf("  %s  %s\n", r.Published.Format("2006-01-02"), r.Title)
	}
	return nil
}

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "Break down stored papers by medical domain",
	RunE:  runDomains,
}

func runDomains(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.All(context.Background(), store.SortByPublished)
	if err != nil {
		return err
	}

	domains := analytics.Domains(records)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(domains)
	}

	if len(domains) == 0 {
		fmt.Println("No papers found.")
		return nil
	}

	names := make([]string, 0, len(domains))
	for name := range domains {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if domains[names[i]].Count != domains[names[j]].Count {
			return domains[names[i]].Count > domains[names[j]].Count
		}
		return names[i] < names[j]
	})

	fmt.Fprintf(os.Stdout, "%-30s  %6s  %9s\n", "Domain", "Papers", "Avg score")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 50))
	for _, name := range names {
		d := domains[name]
		fmt.Fprintf(os.Stdout, "%-30s  %6d  %9.2f\n", name, d.Count, d.AvgRelevance)
	}
	return nil
}

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Break down stored papers by author",
	RunE:  runAuthors,
}

func runAuthors(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.All(context.Background(), store.SortByPublished)
	if err != nil {
		return err
	}

	authors := analytics.Authors(records)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(authors)
	}

	if len(authors) == 0 {
		fmt.Println("No papers found.")
		return nil
	}

	names := make([]string, 0, len(authors))
	for name := range authors {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if authors[names[i]].PaperCount != authors[names[j]].PaperCount {
			return authors[names[i]].PaperCount > authors[names[j]].PaperCount
		}
		return names[i] < names[j]
	})

	limit, _ := cmd.Flags().GetInt("limit")
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	fmt.Fprintf(os.Stdout, "%-30s  %6s  %9s  %s\n", "Author", "Papers", "Avg score", "Domains")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 80))
	for _, name := range names {
		a := authors[name]
		fmt.Fprintf(os.Stdout, "%-30s  %6d  %9.2f  %s\n",
			name, a.PaperCount, a.AvgRelevance, strings.Join(a.Domains, ", "))
	}
	return nil
}

func init() {
	statsCmd.Flags().Bool("json", false, "output statistics as JSON")
	trendingCmd.Flags().Bool("json", false, "output ranking as JSON")
	weeklyCmd.Flags().Bool("json", false, "output weekly stats as JSON")
	domainsCmd.Flags().Bool("json", false, "output domain stats as JSON")
	authorsCmd.Flags().Bool("json", false, "output author stats as JSON")
	authorsCmd.Flags().Int("limit", 20, "maximum authors to list (0 = all)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(weeklyCmd)
	rootCmd.AddCommand(domainsCmd)
	rootCmd.AddCommand(authorsCmd)
}
