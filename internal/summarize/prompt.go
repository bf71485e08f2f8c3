// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

// summaryPromptTmpl is the analysis prompt sent to the backend for each
// accepted paper. It requests all ten summary fields as one JSON object.
var summaryPromptTmpl = template.Must(template.New("summary").Parse(`Analyze and summarize this medical/health research paper in detail.

Title: {{.Title}}

Authors: {{.Authors}}

Abstract: {{.Abstract}}

Primary Category: {{.PrimaryCategory}}
All Categories: {{.Categories}}

Provide a comprehensive analysis in JSON format:
{
    "summary": "2-3 sentence overview of the paper's main contribution and findings",
    "key_points": [
        "5-7 specific bullet points covering methodology, results, and implications"
    ],
    "medical_relevance": "Why this matters for medicine/health (1-2 sentences)",
    "keywords": ["list", "of", "5-8", "relevant", "keywords"],
    "medical_domains": ["specific", "medical", "fields"],
    "methodology": "Brief description of methods used",
    "key_findings": "Main results or discoveries",
    "clinical_impact": "Potential clinical or practical impact",
    "limitations": "Any noted limitations or caveats",
    "future_directions": "Suggested future research directions if mentioned"
}

Be specific, technical, and focus on practical medical/health implications.`))

// maxPromptAuthors limits how many authors appear in the prompt.
const maxPromptAuthors = 5

// renderSummaryPrompt executes the analysis prompt template for one candidate.
func renderSummaryPrompt(c types.Candidate) (string, error) {
	authors := c.Authors
	suffix := ""
	if len(authors) > maxPromptAuthors {
		authors = authors[:maxPromptAuthors]
		suffix = "..."
	}

	data := struct {
		Title           string
		Authors         string
		Abstract        string
		PrimaryCategory string
		Categories      string
	}{
		Title:           c.Title,
		Authors:         strings.Join(authors, ", ") + suffix,
		Abstract:        c.Abstract,
		PrimaryCategory: c.PrimaryCategory,
		Categories:      strings.Join(c.Categories, ", "),
	}

	var buf bytes.Buffer
	if err := summaryPromptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
