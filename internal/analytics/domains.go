// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analytics

import (
	"strings"

	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

// DomainStat aggregates one medical domain across the corpus.
type DomainStat struct {
	// Count is the number of records listing this domain.
	Count int `json:"count" yaml:"count"`

	// AvgRelevance is the mean relevance score of those records.
	AvgRelevance float64 `json:"avg_relevance" yaml:"avg_relevance"`

	// Papers lists the arXiv IDs contributing to this domain.
	Papers []string `json:"papers" yaml:"papers"`

	// Timeline counts records per published year-month ("2023-01").
	Timeline map[string]int `json:"timeline" yaml:"timeline"`
}

// Domains aggregates per-domain statistics over all records. Every record
// contributes one unit to each domain it lists, so a domain appears here iff
// at least one record lists it. Domain names differing only in case are
// folded together under the first-seen spelling.
func Domains(records []types.Record) map[string]DomainStat {
	type accum struct {
		stat           DomainStat
		totalRelevance float64
	}

	accums := map[string]*accum{}
	canonical := map[string]string{}

	for _, rec := range records {
		month := ""
		if !rec.Published.IsZero() {
			month = rec.Published.Format("2006-01")
		}

		for _, domain := range rec.MedicalDomains {
			key := foldDomain(domain)
			name, ok := canonical[key]
			if !ok {
				name = domain
				canonical[key] = domain
				accums[name] = &accum{stat: DomainStat{Timeline: map[string]int{}}}
			}

			a := accums[name]
			a.stat.Count++
			a.totalRelevance += rec.RelevanceScore
			a.stat.Papers = append(a.stat.Papers, rec.ArxivID)
			if month != "" {
				a.stat.Timeline[month]++
			}
		}
	}

	out := make(map[string]DomainStat, len(accums))
	for name, a := range accums {
		a.stat.AvgRelevance = a.totalRelevance / float64(a.stat.Count)
		out[name] = a.stat
	}
	return out
}

// foldDomain is the case-folding key used for domain comparisons.
func foldDomain(domain string) string {
	return strings.ToLower(domain)
}
