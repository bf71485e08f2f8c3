// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analytics

import (
	"sort"
	"time"

	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

// PaperRef identifies one paper in an author's list.
type PaperRef struct {
	ArxivID   string    `json:"arxiv_id" yaml:"arxiv_id"`
	Title     string    `json:"title" yaml:"title"`
	Published time.Time `json:"published" yaml:"published"`
}

// AuthorStat aggregates one author across the corpus.
type AuthorStat struct {
	// Name is the author name as it appears on papers.
	Name string `json:"name" yaml:"name"`

	// PaperCount is the number of stored papers listing this author.
	PaperCount int `json:"paper_count" yaml:"paper_count"`

	// Papers lists the author's papers.
	Papers []PaperRef `json:"papers" yaml:"papers"`

	// Domains is the union of medical domains across the author's papers,
	// sorted for deterministic output. Held as a set during aggregation.
	Domains []string `json:"domains" yaml:"domains"`

	// AvgRelevance is the mean relevance score across the author's papers.
	AvgRelevance float64 `json:"avg_relevance" yaml:"avg_relevance"`
}

// Authors aggregates per-author statistics over all records. Author names are
// matched exactly; domain unions are maintained as sets internally and
// serialized to sorted slices only at this output boundary.
func Authors(records []types.Record) map[string]AuthorStat {
	type accum struct {
		stat           AuthorStat
		domains        map[string]struct{}
		canonical      map[string]string
		totalRelevance float64
	}

	accums := map[string]*accum{}

	for _, rec := range records {
		for _, name := range rec.Authors {
			a, ok := accums[name]
			if !ok {
				a = &accum{
					stat:      AuthorStat{Name: name},
					domains:   map[string]struct{}{},
					canonical: map[string]string{},
				}
				accums[name] = a
			}

			a.stat.PaperCount++
			a.stat.Papers = append(a.stat.Papers, PaperRef{
				ArxivID:   rec.ArxivID,
				Title:     rec.Title,
				Published: rec.Published,
			})
			a.totalRelevance += rec.RelevanceScore

			for _, domain := range rec.MedicalDomains {
				key := foldDomain(domain)
				if _, seen := a.canonical[key]; !seen {
					a.canonical[key] = domain
				}
				a.domains[a.canonical[key]] = struct{}{}
			}
		}
	}

	out := make(map[string]AuthorStat, len(accums))
	for name, a := range accums {
		a.stat.AvgRelevance = a.totalRelevance / float64(a.stat.PaperCount)

		domains := make([]string, 0, len(a.domains))
		for d := range a.domains {
			domains = append(domains, d)
		}
		sort.Strings(domains)
		a.stat.Domains = domains

		out[name] = a.stat
	}
	return out
}
