// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation formats curated records as BibTeX, RIS, and EndNote
// entries. All formatters are pure functions of the record.
package citation

import (
	"fmt"
	"strings"

	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

const (
	// maxBibtexAuthors bounds the BibTeX author field.
	maxBibtexAuthors = 3

	// maxListedAuthors bounds the per-author lines in RIS and EndNote.
	maxListedAuthors = 5

	// abstractLimit caps the abstract excerpt in RIS and EndNote.
	abstractLimit = 500
)

// BibTeX renders the record as a BibTeX @article entry. The entry key is the
// arXiv ID with '/' replaced by '_' so old-style IDs stay valid keys.
func BibTeX(rec types.Record) string {
	key := strings.ReplaceAll(rec.ArxivID, "/", "_")
	authors := rec.Authors
	if len(authors) > maxBibtexAuthors {
		authors = authors[:maxBibtexAuthors]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@article{%s,\n", key)
	fmt.Fprintf(&b, "  title={%s},\n", rec.Title)
	fmt.Fprintf(&b, "  author={%s},\n", strings.Join(authors, " and "))
	fmt.Fprintf(&b, "  journal={arXiv preprint arXiv:%s},\n", rec.ArxivID)
	fmt.Fprintf(&b, "  year={%s},\n", year(rec))
	fmt.Fprintf(&b, "  url={%s}\n", rec.ArxivURL)
	b.WriteString("}")
	return b.String()
}

// RIS renders the record in RIS format with one AU line per author.
func RIS(rec types.Record) string {
	var b strings.Builder
	b.WriteString("TY  - JOUR\n")
	fmt.Fprintf(&b, "TI  - %s\n", rec.Title)
	for _, author := range limitAuthors(rec.Authors) {
		fmt.Fprintf(&b, "AU  - %s\n", author)
	}
	fmt.Fprintf(&b, "PY  - %s\n", year(rec))
	b.WriteString("JO  - arXiv preprint\n")
	fmt.Fprintf(&b, "UR  - %s\n", rec.ArxivURL)
	fmt.Fprintf(&b, "AB  - %s\n", excerpt(rec.Abstract))
	b.WriteString("ER  -\n")
	return b.String()
}

// EndNote renders the record in EndNote tagged format with one %A line per author.
func EndNote(rec types.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%%T %s\n", rec.Title)
	for _, author := range limitAuthors(rec.Authors) {
		fmt.Fprintf(&b, "%%A %s\n", author)
	}
	fmt.Fprintf(&b, "%%D %s\n", year(rec))
	b.WriteString("%J arXiv preprint\n")
	fmt.Fprintf(&b, "%%U %s\n", rec.ArxivURL)
	fmt.Fprintf(&b, "%%X %s\n", excerpt(rec.Abstract))
	return b.String()
}

// year is the four-digit publication year, empty for an unset date.
func year(rec types.Record) string {
	if rec.Published.IsZero() {
		return ""
	}
	return rec.Published.Format("2006")
}

func limitAuthors(authors []string) []string {
	if len(authors) > maxListedAuthors {
		return authors[:maxListedAuthors]
	}
	return authors
}

func excerpt(abstract string) string {
	if len(abstract) > abstractLimit {
		return abstract[:abstractLimit]
	}
	return abstract
}
