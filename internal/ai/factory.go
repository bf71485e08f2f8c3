// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ai

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

// New constructs the TextBackend named by cfg.Provider. The provider is
// selected once at startup; every stage that calls a model shares the
// returned backend. An empty API key is an error here rather than at the
// first request.
func New(cfg types.AIConfig) (TextBackend, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no API key configured for provider %q", provider)
	}

	switch provider {
	case "gemini":
		return &GeminiBackend{APIKey: cfg.APIKey, Model: cfg.Model, Client: client}, nil
	case "openai":
		return &OpenAIBackend{APIKey: cfg.APIKey, Model: cfg.Model, Client: client}, nil
	case "claude":
		return &ClaudeBackend{APIKey: cfg.APIKey, Model: cfg.Model, Client: client}, nil
	case "grok":
		model := cfg.Model
		if model == "" {
			model = defaultGrokModel
		}
		return &OpenAIBackend{
			APIKey:   cfg.APIKey,
			Model:    model,
			BaseURL:  grokAPIBase,
			Provider: "grok",
			Client:   client,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider %q: use gemini, openai, claude, or grok", cfg.Provider)
	}
}
