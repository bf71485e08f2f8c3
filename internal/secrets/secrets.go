// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys and credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key name and the
// file contents (trimmed) are the value. Environment variables override file values.
//
// Supported key files: gemini-api-key, openai-api-key, anthropic-api-key, grok-api-key,
// semantic-scholar-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// envOverrides maps secret names to the environment variables that
// override them.
var envOverrides = map[string]string{
	"gemini-api-key":           "GEMINI_API_KEY",
	"openai-api-key":           "OPENAI_API_KEY",
	"anthropic-api-key":        "ANTHROPIC_API_KEY",
	"grok-api-key":             "GROK_API_KEY",
	"semantic-scholar-api-key": "SEMANTIC_SCHOLAR_API_KEY",
}

// Load reads all files in dir and returns a map of filename to trimmed contents,
// then merges in any environment overrides. A missing directory or missing files
// are not errors; Load returns a map with only the environment values.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	secrets := make(map[string]string)

	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	for name, envVar := range envOverrides {
		if value := strings.TrimSpace(os.Getenv(envVar)); value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}
