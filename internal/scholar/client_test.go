// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BryanTegomoh/arxiv-health/internal/store"
	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

func testScholarClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	orig := scholarAPIBase
	scholarAPIBase = srv.URL
	t.Cleanup(func() { scholarAPIBase = orig })

	return NewClient(types.ScholarConfig{
		HTTPConfig: types.HTTPConfig{UserAgent: "arxiv-health-test"},
		APIKey:     "test-key",
	})
}

func TestCitationCountStripsVersion(t *testing.T) {
	var gotPath, gotKey string
	c := testScholarClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		fmt.Fprint(w, `{"citationCount": 42}`)
	})

	count, err := c.CitationCount(context.Background(), "2301.07041v2")
	if err != nil {
		t.Fatalf("CitationCount: %v", err)
	}
	if count != 42 {
		t.Errorf("count = %d, want 42", count)
	}
	if !strings.HasSuffix(gotPath, "/arXiv:2301.07041") {
		t.Errorf("path = %q, want version suffix stripped", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("x-api-key = %q", gotKey)
	}
}

func TestCitationCountNotFound(t *testing.T) {
	c := testScholarClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := c.CitationCount(context.Background(), "2301.07041")
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCitationCountServerError(t *testing.T) {
	c := testScholarClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	if _, err := c.CitationCount(context.Background(), "2301.07041"); err == nil {
		t.Fatal("expected error on HTTP 500")
	}
}

func TestStripVersion(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2301.07041v2", "2301.07041"},
		{"2301.07041", "2301.07041"},
		{"hep-th/9901001v1", "hep-th/9901001"},
		{"vaccine-trial", "vaccine-trial"},
	}
	for _, tc := range cases {
		if got := stripVersion(tc.in); got != tc.want {
			t.Errorf("stripVersion(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEnrich(t *testing.T) {
	st, err := store.NewStore(types.StoreConfig{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer st.Close()

	for _, id := range []string{"2301.00001", "2301.00002", "2301.00003"} {
		rec := types.Record{Candidate: types.Candidate{
			ArxivID: id,
			Title:   "Paper " + id,
		}}
		if _, err := st.Insert(context.Background(), &rec); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	c := testScholarClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "arXiv:2301.00001"):
			fmt.Fprint(w, `{"citationCount": 7}`)
		case strings.HasSuffix(r.URL.Path, "arXiv:2301.00002"):
			http.Error(w, "not found", http.StatusNotFound)
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	})

	var buf bytes.Buffer
	summary, err := Enrich(context.Background(), c, st, &buf)
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if summary.Updated != 1 || summary.Missing != 1 || summary.Failed != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.Total() != 3 {
		t.Errorf("total = %d, want 3", summary.Total())
	}

	rec, err := st.Get(context.Background(), "2301.00001")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec == nil || rec.CitationCount != 7 {
		t.Errorf("citation count = %d, want 7", rec.CitationCount)
	}

	out := buf.String()
	for _, want := range []string{"citations: 7", "not indexed", "lookup failed", "updated 1, not indexed 1, failed 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEnrichCancelledContext(t *testing.T) {
	st, err := store.NewStore(types.StoreConfig{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer st.Close()

	rec := types.Record{Candidate: types.Candidate{ArxivID: "2301.00001", Title: "Paper"}}
	if _, err := st.Insert(context.Background(), &rec); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	c := testScholarClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"citationCount": 1}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if _, err := Enrich(ctx, c, st, &buf); err == nil {
		t.Fatal("expected context error")
	}
}
