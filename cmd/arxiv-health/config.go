// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BryanTegomoh/arxiv-health/internal/store"
	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

// providerSecretNames maps AI provider names to the .secrets/ key files
// holding their API keys.
var providerSecretNames = map[string]string{
	"gemini": "gemini-api-key",
	"openai": "openai-api-key",
	"claude": "anthropic-api-key",
	"grok":   "grok-api-key",
}

const defaultUserAgent = "arxiv-health/0.1 (https://github.com/BryanTegomoh/arxiv-health)"

func init() {
	viper.SetDefault("search.max_results", 50)
	viper.SetDefault("search.days_back", 7)
	viper.SetDefault("ai.provider", "gemini")
	viper.SetDefault("filter.min_relevance", 0.6)
	viper.SetDefault("store.data_dir", "data")
	viper.SetDefault("http.timeout", "30s")
	viper.SetDefault("http.user_agent", defaultUserAgent)
}

// pipelineConfig assembles the stage configurations from viper settings,
// loaded secrets, and command-line flags.
func pipelineConfig(cmd *cobra.Command) (types.PipelineConfig, error) {
	httpCfg := types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: viper.GetString("http.user_agent"),
	}

	provider := strings.ToLower(viper.GetString("ai.provider"))
	secretName, ok := providerSecretNames[provider]
	if !ok {
		return types.PipelineConfig{}, fmt.Errorf("unknown AI provider %q: use gemini, openai, claude, or grok", provider)
	}

	dataDir := viper.GetString("store.data_dir")
	if cmd != nil {
		if flagDir, _ := cmd.Flags().GetString("data-dir"); flagDir != "" {
			dataDir = flagDir
		}
	}

	cfg := types.PipelineConfig{
		Search: types.SearchConfig{
			HTTPConfig: httpCfg,
			MaxResults: viper.GetInt("search.max_results"),
			DaysBack:   viper.GetInt("search.days_back"),
			Keywords:   viper.GetStringSlice("search.keywords"),
			Categories: viper.GetStringSlice("search.categories"),
		},
		AI: types.AIConfig{
			Provider: provider,
			Model:    viper.GetString("ai.model"),
			APIKey:   loadedSecrets[secretName],
			Timeout:  60 * time.Second,
		},
		Filter: types.FilterConfig{
			MinRelevance: viper.GetFloat64("filter.min_relevance"),
		},
		Store: types.StoreConfig{
			DataDir: dataDir,
		},
		Scholar: types.ScholarConfig{
			HTTPConfig: httpCfg,
			APIKey:     loadedSecrets["semantic-scholar-api-key"],
		},
	}
	return cfg, nil
}

// openStore opens the paper store using the configured data directory.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := pipelineConfig(cmd)
	if err != nil {
		return nil, err
	}
	return store.NewStore(cfg.Store)
}
