// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-health CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BryanTegomoh/arxiv-health/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ and the environment
// at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the arxiv-health CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-health",
	Short: "Curate AI health and medicine papers from arXiv",
	Long: `arxiv-health monitors arXiv for AI research in health and medicine. Each
run fetches recent papers, filters them for relevance with an AI classifier,
summarizes the accepted ones, and stores them in a local SQLite database.

Stored papers can be listed, searched, ranked by trending score, broken down
by medical domain or author, exported, and cited in BibTeX, RIS, or EndNote
format.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-health.yaml or ~/.config/arxiv-health/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory holding the paper database (default: data)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-health")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-health"))
		}
	}

	viper.SetEnvPrefix("ARXIV_HEALTH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
