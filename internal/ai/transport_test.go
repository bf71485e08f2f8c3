// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

func testAIConfig(provider string) types.AIConfig {
	return types.AIConfig{Provider: provider, APIKey: "test-key"}
}

func TestClaudeBackendComplete(t *testing.T) {
	var gotPath, gotAPIKey string
	var gotReq claudeRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("x-api-key")
		json.NewDecoder(r.Body).Decode(&gotReq)

		json.NewEncoder(w).Encode(claudeResponse{
			Content: []claudeContent{
				{Type: "text", Text: `{"is_relevant": true}`},
			},
		})
	}))
	defer ts.Close()

	orig := anthropicAPIURL
	anthropicAPIURL = ts.URL + "/v1/messages"
	defer func() { anthropicAPIURL = orig }()

	backend := &ClaudeBackend{APIKey: "sk-test", Model: "claude-test", Client: ts.Client()}
	text, err := backend.Complete(context.Background(), "analyze this")
	if err != nil {
		t.Fatal(err)
	}

	if text != `{"is_relevant": true}` {
		t.Errorf("unexpected response text: %q", text)
	}
	if gotPath != "/v1/messages" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotAPIKey != "sk-test" {
		t.Errorf("x-api-key = %q", gotAPIKey)
	}
	if gotReq.Model != "claude-test" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Content != "analyze this" {
		t.Errorf("unexpected messages: %+v", gotReq.Messages)
	}
}

func TestClaudeBackendErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	orig := anthropicAPIURL
	anthropicAPIURL = ts.URL
	defer func() { anthropicAPIURL = orig }()

	backend := &ClaudeBackend{APIKey: "k", Client: ts.Client()}
	if _, err := backend.Complete(context.Background(), "p"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestOpenAIBackendComplete(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotReq)

		json.NewEncoder(w).Encode(chatResponse{
			Choices: []chatChoice{
				{Message: chatMessage{Role: "assistant", Content: "summary text"}},
			},
		})
	}))
	defer ts.Close()

	backend := &OpenAIBackend{APIKey: "sk-oa", BaseURL: ts.URL, Client: ts.Client()}
	text, err := backend.Complete(context.Background(), "summarize")
	if err != nil {
		t.Fatal(err)
	}

	if text != "summary text" {
		t.Errorf("unexpected response text: %q", text)
	}
	if gotAuth != "Bearer sk-oa" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReq.Model != defaultOpenAIModel {
		t.Errorf("model = %q, want default %q", gotReq.Model, defaultOpenAIModel)
	}
	if gotReq.Temperature != 0.3 {
		t.Errorf("temperature = %v", gotReq.Temperature)
	}
}

func TestOpenAIBackendNoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(chatResponse{})
	}))
	defer ts.Close()

	backend := &OpenAIBackend{APIKey: "k", BaseURL: ts.URL, Client: ts.Client()}
	if _, err := backend.Complete(context.Background(), "p"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestGeminiBackendComplete(t *testing.T) {
	var gotPath, gotAPIKey string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("x-goog-api-key")

		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{
				{Content: geminiContent{Parts: []geminiPart{
					{Text: "part one "},
					{Text: "part two"},
				}}},
			},
		})
	}))
	defer ts.Close()

	orig := geminiAPIBase
	geminiAPIBase = ts.URL
	defer func() { geminiAPIBase = orig }()

	backend := &GeminiBackend{APIKey: "g-key", Client: ts.Client()}
	text, err := backend.Complete(context.Background(), "classify")
	if err != nil {
		t.Fatal(err)
	}

	if text != "part one part two" {
		t.Errorf("unexpected response text: %q", text)
	}
	if gotPath != "/models/"+defaultGeminiModel+":generateContent" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotAPIKey != "g-key" {
		t.Errorf("x-goog-api-key = %q", gotAPIKey)
	}
}

func TestGeminiBackendNoCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer ts.Close()

	orig := geminiAPIBase
	geminiAPIBase = ts.URL
	defer func() { geminiAPIBase = orig }()

	backend := &GeminiBackend{APIKey: "k", Client: ts.Client()}
	if _, err := backend.Complete(context.Background(), "p"); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}
