// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"strings"
	"testing"
	"time"

	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

func citeRecord() types.Record {
	return types.Record{
		Candidate: types.Candidate{
			ArxivID:   "2301.12345",
			Title:     "Deep Learning for Sepsis Prediction",
			Authors:   []string{"A. Smith", "B. Lee"},
			Abstract:  "We study sepsis prediction with deep learning.",
			Published: time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
			ArxivURL:  "https://arxiv.org/abs/2301.12345",
		},
	}
}

func TestBibTeX(t *testing.T) {
	got := BibTeX(citeRecord())
	want := `@article{2301.12345,
  title={Deep Learning for Sepsis Prediction},
  author={A. Smith and B. Lee},
  journal={arXiv preprint arXiv:2301.12345},
  year={2023},
  url={https://arxiv.org/abs/2301.12345}
}`
	if got != want {
		t.Fatalf("bibtex mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestBibTeXOldStyleIDKey(t *testing.T) {
	rec := citeRecord()
	rec.ArxivID = "hep-th/9901001"
	got := BibTeX(rec)
	if !strings.HasPrefix(got, "@article{hep-th_9901001,") {
		t.Fatalf("expected slash replaced in key, got %q", got)
	}
	if !strings.Contains(got, "journal={arXiv preprint arXiv:hep-th/9901001}") {
		t.Fatalf("journal field should keep the original id, got %q", got)
	}
}

func TestBibTeXAuthorLimit(t *testing.T) {
	rec := citeRecord()
	rec.Authors = []string{"A", "B", "C", "D", "E"}
	got := BibTeX(rec)
	if !strings.Contains(got, "author={A and B and C},") {
		t.Fatalf("expected three authors, got %q", got)
	}
}

func TestRIS(t *testing.T) {
	got := RIS(citeRecord())
	for _, line := range []string{
		"TY  - JOUR",
		"TI  - Deep Learning for Sepsis Prediction",
		"AU  - A. Smith",
		"AU  - B. Lee",
		"PY  - 2023",
		"JO  - arXiv preprint",
		"UR  - https://arxiv.org/abs/2301.12345",
		"AB  - We study sepsis prediction with deep learning.",
		"ER  -",
	} {
		if !strings.Contains(got, line+"\n") {
			t.Fatalf("missing line %q in:\n%s", line, got)
		}
	}
}

func TestRISAuthorLimit(t *testing.T) {
	rec := citeRecord()
	rec.Authors = []string{"A", "B", "C", "D", "E", "F", "G"}
	got := RIS(rec)
	if n := strings.Count(got, "AU  - "); n != 5 {
		t.Fatalf("expected 5 AU lines, got %d:\n%s", n, got)
	}
}

func TestRISAbstractTruncated(t *testing.T) {
	rec := citeRecord()
	rec.Abstract = strings.Repeat("a", 600)
	got := RIS(rec)
	if !strings.Contains(got, "AB  - "+strings.Repeat("a", 500)+"\n") {
		t.Fatalf("abstract not truncated to 500 chars:\n%s", got)
	}
	if strings.Contains(got, strings.Repeat("a", 501)) {
		t.Fatalf("abstract longer than 500 chars:\n%s", got)
	}
}

func TestEndNote(t *testing.T) {
	got := EndNote(citeRecord())
	for _, line := range []string{
		"%T Deep Learning for Sepsis Prediction",
		"%A A. Smith",
		"%A B. Lee",
		"%D 2023",
		"%J arXiv preprint",
		"%U https://arxiv.org/abs/2301.12345",
		"%X We study sepsis prediction with deep learning.",
	} {
		if !strings.Contains(got, line+"\n") {
			t.Fatalf("missing line %q in:\n%s", line, got)
		}
	}
}

func TestEndNoteAuthorLimit(t *testing.T) {
	rec := citeRecord()
	rec.Authors = []string{"A", "B", "C", "D", "E", "F"}
	got := EndNote(rec)
	if n := strings.Count(got, "%A "); n != 5 {
		t.Fatalf("expected 5 %%A lines, got %d:\n%s", n, got)
	}
}

func TestZeroPublishedYearEmpty(t *testing.T) {
	rec := citeRecord()
	rec.Published = time.Time{}
	if got := BibTeX(rec); !strings.Contains(got, "year={},") {
		t.Fatalf("expected empty year, got %q", got)
	}
}
