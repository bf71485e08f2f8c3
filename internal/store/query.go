// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"sort"
	"strings"

	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

// topDomainLimit caps the top_domains list in Statistics.
const topDomainLimit = 10

// Search returns records whose title or abstract contains the query as a
// case-insensitive substring, or whose keyword list contains the query as an
// exact case-insensitive entry.
func (s *Store) Search(ctx context.Context, query string) ([]types.Record, error) {
	records, err := s.All(ctx, SortByPublished)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var matches []types.Record
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Title), q) ||
			strings.Contains(strings.ToLower(rec.Abstract), q) ||
			containsFold(rec.Keywords, query) {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

// ByDomain returns records whose medical_domains list contains the domain,
// compared case-insensitively.
func (s *Store) ByDomain(ctx context.Context, domain string) ([]types.Record, error) {
	records, err := s.All(ctx, SortByPublished)
	if err != nil {
		return nil, err
	}

	var matches []types.Record
	for _, rec := range records {
		if containsFold(rec.MedicalDomains, domain) {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

// containsFold reports whether list contains s under case folding.
func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// DateRange holds the earliest and latest published timestamps, as RFC 3339
// strings. Both fields are empty when the store is empty.
type DateRange struct {
	Earliest string `json:"earliest,omitempty" yaml:"earliest,omitempty"`
	Latest   string `json:"latest,omitempty" yaml:"latest,omitempty"`
}

// DomainCount pairs a domain with its record count.
type DomainCount struct {
	Domain string `json:"domain" yaml:"domain"`
	Count  int    `json:"count" yaml:"count"`
}

// Statistics summarizes the store contents for the renderer.
type Statistics struct {
	TotalPapers      int            `json:"total_papers" yaml:"total_papers"`
	DateRange        DateRange      `json:"date_range" yaml:"date_range"`
	AverageRelevance float64        `json:"average_relevance" yaml:"average_relevance"`
	Domains          map[string]int `json:"domains" yaml:"domains"`
	TopDomains       []DomainCount  `json:"top_domains" yaml:"top_domains"`
}

// Statistics computes aggregate statistics over all stored records. An empty
// store yields the zero-value result, never an error. Domain names differing
// only in case are folded together under the first-seen spelling.
func (s *Store) Statistics(ctx context.Context) (Statistics, error) {
	records, err := s.All(ctx, SortByPublished)
	if err != nil {
		return Statistics{}, err
	}

	stats := Statistics{
		Domains:    map[string]int{},
		TopDomains: []DomainCount{},
	}
	if len(records) == 0 {
		return stats, nil
	}

	stats.TotalPapers = len(records)

	canonical := map[string]string{} // lowercased domain → first-seen spelling
	var totalRelevance float64
	var earliest, latest string

	for _, rec := range records {
		totalRelevance += rec.RelevanceScore

		for _, domain := range rec.MedicalDomains {
			key := strings.ToLower(domain)
			name, ok := canonical[key]
			if !ok {
				name = domain
				canonical[key] = domain
			}
			stats.Domains[name]++
		}

		if rec.Published.IsZero() {
			continue
		}
		pub := formatTime(rec.Published)
		if earliest == "" || pub < earliest {
			earliest = pub
		}
		if latest == "" || pub > latest {
			latest = pub
		}
	}

	stats.AverageRelevance = totalRelevance / float64(len(records))
	stats.DateRange = DateRange{Earliest: earliest, Latest: latest}
	stats.TopDomains = topDomains(stats.Domains, topDomainLimit)

	return stats, nil
}

// topDomains returns the n highest-count domains, ordered by count descending
// with alphabetical tie-break for deterministic output.
func topDomains(counts map[string]int, n int) []DomainCount {
	ranked := make([]DomainCount, 0, len(counts))
	for domain, count := range counts {
		ranked = append(ranked, DomainCount{Domain: domain, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Domain < ranked[j].Domain
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
