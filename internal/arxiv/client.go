// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv fetches recent papers from the arXiv Atom API.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// maxQueryKeywords bounds the keyword disjunction so the query URL stays
// within what the arXiv API accepts.
const maxQueryKeywords = 30

// DefaultKeywords are the health and medicine terms searched when the
// configuration supplies none.
var DefaultKeywords = []string{
	"medical imaging", "clinical prediction", "electronic health records",
	"disease diagnosis", "drug discovery", "medical AI", "healthcare machine learning",
	"clinical NLP", "radiology AI", "pathology deep learning", "genomics",
	"precision medicine", "patient outcomes", "epidemiology", "public health",
	"clinical decision support", "biomedical", "health informatics",
	"medical diagnosis", "cancer detection",
}

// DefaultCategories are the arXiv categories searched when the
// configuration supplies none.
var DefaultCategories = []string{
	"cs.LG", "cs.AI", "cs.CV", "cs.CL", "stat.ML", "q-bio.QM", "q-bio.GN",
}

// Client queries the arXiv API for recent candidates.
type Client struct {
	cfg    types.SearchConfig
	client *http.Client
}

// NewClient builds a client from the search configuration, filling in
// default keywords, categories, and limits where unset.
func NewClient(cfg types.SearchConfig) *Client {
	if len(cfg.Keywords) == 0 {
		cfg.Keywords = DefaultKeywords
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultCategories
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 50
	}
	if cfg.DaysBack <= 0 {
		cfg.DaysBack = 7
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// FetchRecent queries arXiv for papers matching the configured keywords and
// categories, newest first, and drops entries published before the
// configured look-back window.
func (c *Client) FetchRecent(ctx context.Context) ([]types.Candidate, error) {
	query := buildQuery(c.cfg.Keywords, c.cfg.Categories)
	u := fmt.Sprintf("%s?search_query=%s&start=0&max_results=%d&sortBy=submittedDate&sortOrder=descending",
		arxivAPIBase, url.QueryEscape(query), c.cfg.MaxResults)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -c.cfg.DaysBack)
	var out []types.Candidate
	for _, entry := range feed.Entries {
		cand := entry.toCandidate()
		if cand.ArxivID == "" {
			continue
		}
		if !cand.Published.IsZero() && cand.Published.Before(cutoff) {
			continue
		}
		out = append(out, cand)
	}
	return out, nil
}

// buildQuery joins keyword and category clauses into one OR disjunction:
// (all:"kw1" OR ... OR cat:cs.LG OR ...). Keywords beyond the limit are
// dropped rather than truncated mid-term.
func buildQuery(keywords, categories []string) string {
	if len(keywords) > maxQueryKeywords {
		keywords = keywords[:maxQueryKeywords]
	}
	var parts []string
	for _, kw := range keywords {
		parts = append(parts, fmt.Sprintf("all:%q", kw))
	}
	for _, cat := range categories {
		parts = append(parts, "cat:"+cat)
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// arXiv Atom feed XML structures. The arxiv: namespace carries the
// primary category, comment, and journal reference extensions.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID         string         `xml:"id"`
	Title      string         `xml:"title"`
	Summary    string         `xml:"summary"`
	Published  string         `xml:"published"`
	Updated    string         `xml:"updated"`
	Authors    []atomAuthor   `xml:"author"`
	Categories []atomCategory `xml:"category"`
	Primary    atomCategory   `xml:"http://arxiv.org/schemas/atom primary_category"`
	Comment    string         `xml:"http://arxiv.org/schemas/atom comment"`
	JournalRef string         `xml:"http://arxiv.org/schemas/atom journal_ref"`
	Links      []atomLink     `xml:"link"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Title string `xml:"title,attr"`
}

func (e atomEntry) toCandidate() types.Candidate {
	cand := types.Candidate{
		ArxivID:         extractArxivID(e.ID),
		Title:           collapseSpace(e.Title),
		Abstract:        collapseSpace(e.Summary),
		PrimaryCategory: e.Primary.Term,
		Comment:         strings.TrimSpace(e.Comment),
		JournalRef:      strings.TrimSpace(e.JournalRef),
		ArxivURL:        strings.TrimSpace(e.ID),
	}
	for _, a := range e.Authors {
		cand.Authors = append(cand.Authors, strings.TrimSpace(a.Name))
	}
	for _, c := range e.Categories {
		if c.Term != "" {
			cand.Categories = append(cand.Categories, c.Term)
		}
	}
	for _, l := range e.Links {
		if l.Title == "pdf" {
			cand.PDFURL = l.Href
		}
	}
	if t, err := time.Parse(time.RFC3339, e.Published); err == nil {
		cand.Published = t
	}
	if t, err := time.Parse(time.RFC3339, e.Updated); err == nil {
		cand.Updated = t
	}
	return cand
}

// extractArxivID pulls the arXiv ID from the entry's <id> URL, keeping
// the version suffix (e.g. "http://arxiv.org/abs/2301.07041v1" ->
// "2301.07041v1") so records stay pinned to the fetched revision.
func extractArxivID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(idURL[idx+len(prefix):])
}

// collapseSpace trims an Atom text field and folds the hard line wraps
// the arXiv feed inserts into single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
