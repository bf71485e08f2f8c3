// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-health/0.1 (bryan@arxiv-health.org)").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the arXiv fetch stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of candidates fetched per run (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// DaysBack is the fetch look-back window in days (default 7).
	DaysBack int `json:"days_back" yaml:"days_back"`

	// Keywords are the health terms matched against title and abstract.
	// Empty means use the built-in keyword list.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// Categories are the arXiv categories searched. A trailing ".*" matches
	// all subcategories. Empty means use the built-in category list.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// AIConfig holds settings for stages that call a text-generation API.
type AIConfig struct {
	// Provider selects the backend: gemini, openai, claude, or grok.
	Provider string `json:"provider" yaml:"provider"`

	// Model is the model identifier. Empty selects the provider default.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// APIKey is the authentication key for the provider's API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Timeout is the per-request timeout for API calls.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// FilterConfig holds settings for the relevance filter.
type FilterConfig struct {
	// MinRelevance is the minimum relevance score in [0, 1] required to
	// accept a candidate (default 0.6). A candidate is accepted only when
	// the classifier marks it relevant and its score meets this threshold.
	MinRelevance float64 `json:"min_relevance" yaml:"min_relevance"`
}

// StoreConfig holds settings for the paper store.
type StoreConfig struct {
	// DataDir is the directory holding the SQLite database (default "data").
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// ScholarConfig holds settings for Semantic Scholar citation enrichment.
type ScholarConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is an optional Semantic Scholar API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	AI      AIConfig      `json:"ai" yaml:"ai"`
	Filter  FilterConfig  `json:"filter" yaml:"filter"`
	Store   StoreConfig   `json:"store" yaml:"store"`
	Scholar ScholarConfig `json:"scholar" yaml:"scholar"`
}
