// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

// relevancePromptTmpl is the classification prompt sent to the backend for
// each candidate. It asks for a single JSON object so the response can be
// parsed mechanically.
var relevancePromptTmpl = template.Must(template.New("relevance").Parse(`Analyze if this research paper is relevant to medicine, healthcare, health, biosecurity, or medical AI/applications.

Title: {{.Title}}

Abstract: {{.Abstract}}

Primary Category: {{.PrimaryCategory}}
Categories: {{.Categories}}

Respond in JSON format:
{
    "is_relevant": true/false,
    "relevance_score": 0.0-1.0,
    "reasoning": "brief explanation",
    "medical_domains": ["list", "of", "relevant", "medical", "domains"],
    "ai_health_application": "describe AI application to health if applicable"
}

Be strict: only mark as relevant if there's clear connection to medicine, health, biosecurity, or medical AI applications.`))

// renderRelevancePrompt executes the classification prompt template for one candidate.
func renderRelevancePrompt(c types.Candidate) (string, error) {
	data := struct {
		Title           string
		Abstract        string
		PrimaryCategory string
		Categories      string
	}{
		Title:           c.Title,
		Abstract:        c.Abstract,
		PrimaryCategory: c.PrimaryCategory,
		Categories:      strings.Join(c.Categories, ", "),
	}

	var buf bytes.Buffer
	if err := relevancePromptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
