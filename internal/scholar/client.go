// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar looks up citation counts for stored papers via the
// Semantic Scholar Graph API.
package scholar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/BryanTegomoh/arxiv-health/internal/httputil"
	"github.com/BryanTegomoh/arxiv-health/internal/store"
	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

// scholarAPIBase is the Semantic Scholar paper lookup endpoint. Declared
// as a var so tests can substitute an httptest server.
var scholarAPIBase = "https://api.semanticscholar.org/graph/v1/paper"

// ErrNotFound is returned when Semantic Scholar has no entry for a paper.
var ErrNotFound = fmt.Errorf("paper not indexed by Semantic Scholar")

// Client queries Semantic Scholar for citation counts.
type Client struct {
	apiKey    string
	userAgent string
	client    *http.Client
}

// NewClient builds a client from the scholar configuration.
func NewClient(cfg types.ScholarConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// CitationCount returns the citation count for an arXiv paper. The
// version suffix is stripped before lookup since Semantic Scholar indexes
// papers by bare ID. Returns ErrNotFound when the paper is not indexed.
func (c *Client) CitationCount(ctx context.Context, arxivID string) (int, error) {
	id := stripVersion(arxivID)
	u := fmt.Sprintf("%s/arXiv:%s?fields=citationCount", scholarAPIBase, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := httputil.DoWithRetry(ctx, c.client, req, 0)
	if err != nil {
		return 0, fmt.Errorf("Semantic Scholar API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return 0, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("Semantic Scholar API returned HTTP %d", resp.StatusCode)
	}

	var paper struct {
		CitationCount int `json:"citationCount"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&paper); err != nil {
		return 0, fmt.Errorf("parsing Semantic Scholar response: %w", err)
	}
	return paper.CitationCount, nil
}

// EnrichSummary counts the outcomes of a citation refresh pass.
type EnrichSummary struct {
	Updated int
	Missing int
	Failed  int
}

// Total returns the number of papers examined.
func (s EnrichSummary) Total() int { return s.Updated + s.Missing + s.Failed }

// Enrich refreshes the citation count of every stored paper, writing one
// progress line per paper to w. Lookup failures are reported and counted
// but do not stop the pass; only store errors are fatal.
func Enrich(ctx context.Context, c *Client, st *store.Store, w io.Writer) (EnrichSummary, error) {
	records, err := st.All(ctx, store.SortByAdded)
	if err != nil {
		return EnrichSummary{}, fmt.Errorf("loading papers: %w", err)
	}

	var summary EnrichSummary
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		fmt.Fprintf(w, "[%d/%d] %s\n", i+1, len(records), rec.ArxivID)

		count, err := c.CitationCount(ctx, rec.ArxivID)
		switch {
		case err == ErrNotFound:
			summary.Missing++
			fmt.Fprintf(w, "  not indexed\n")
			continue
		case err != nil:
			summary.Failed++
			fmt.Fprintf(w, "  lookup failed: %v\n", err)
			continue
		}

		if err := st.SetCitationCount(ctx, rec.ArxivID, count); err != nil {
			return summary, fmt.Errorf("updating %s: %w", rec.ArxivID, err)
		}
		summary.Updated++
		fmt.Fprintf(w, "  citations: %d\n", count)
	}

	fmt.Fprintf(w, "updated %d, not indexed %d, failed %d\n",
		summary.Updated, summary.Missing, summary.Failed)
	return summary, nil
}

// stripVersion removes a trailing arXiv version suffix ("2301.07041v2"
// -> "2301.07041").
func stripVersion(id string) string {
	if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
		if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
			return id[:vIdx]
		}
	}
	return id
}
