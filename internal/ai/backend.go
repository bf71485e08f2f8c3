// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ai abstracts the text-generation providers used for relevance
// classification and summarization. Each provider implements TextBackend;
// the pipeline depends only on the interface.
package ai

import (
	"context"
	"fmt"
)

// TextBackend sends one prompt to a text-generation API and returns the raw
// response text. Implementations handle a single provider; tests supply a
// mock.
type TextBackend interface {
	// Name returns the provider identifier (e.g. "gemini", "claude").
	Name() string

	// Complete sends the prompt and returns the model's text response.
	Complete(ctx context.Context, prompt string) (string, error)
}

// ExtractJSONObject returns the first well-formed JSON object embedded in raw.
// Models often wrap their JSON in prose or markdown fences, so the scan walks
// the text for balanced top-level braces, skipping brace characters inside
// string literals. It returns an error when no complete object is present.
func ExtractJSONObject(raw string) ([]byte, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(raw); i++ {
		c := raw[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return []byte(raw[start : i+1]), nil
			}
		}
	}

	return nil, fmt.Errorf("no JSON object found in response")
}
