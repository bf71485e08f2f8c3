// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// openaiAPIBase is the OpenAI API base URL. Package-level var for test
// substitution.
var openaiAPIBase = "https://api.openai.com/v1"

// grokAPIBase is the xAI API base URL. Grok exposes an OpenAI-compatible
// chat-completions endpoint, so the same backend serves both providers.
var grokAPIBase = "https://api.x.ai/v1"

const (
	defaultOpenAIModel = "gpt-4o-mini"
	defaultGrokModel   = "grok-beta"
)

// OpenAIBackend calls an OpenAI-compatible chat-completions API. The xAI Grok
// provider reuses this backend with a different base URL and name.
type OpenAIBackend struct {
	APIKey   string
	Model    string
	BaseURL  string
	Provider string
	Client   *http.Client
}

// Name returns the provider identifier.
func (o *OpenAIBackend) Name() string {
	if o.Provider != "" {
		return o.Provider
	}
	return "openai"
}

// chatRequest is the request body for the chat-completions API.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

// chatMessage is a single message in the chat conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the response body from the chat-completions API.
type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

// Complete sends the prompt as a single user message and returns the first
// choice's content.
func (o *OpenAIBackend) Complete(ctx context.Context, prompt string) (string, error) {
	model := o.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	base := o.BaseURL
	if base == "" {
		base = openaiAPIBase
	}

	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.3,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.APIKey)

	client := o.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling %s API: %w", o.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%s API returned %d: %s", o.Name(), resp.StatusCode, string(body))
	}

	var cResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return "", fmt.Errorf("decoding %s response: %w", o.Name(), err)
	}

	if len(cResp.Choices) == 0 {
		return "", fmt.Errorf("%s API returned no choices", o.Name())
	}

	return cResp.Choices[0].Message.Content, nil
}
