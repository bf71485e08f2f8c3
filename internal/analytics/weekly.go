// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analytics

import (
	"sort"
	"time"

	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

// weeklyWindow is the activity window width.
const weeklyWindow = 7 * 24 * time.Hour

// topWeeklyDomains caps the weekly top-domain list.
const topWeeklyDomains = 3

// WeeklyStats summarizes papers published within the last seven days.
type WeeklyStats struct {
	// PapersThisWeek counts records published inside the window.
	PapersThisWeek int `json:"papers_this_week" yaml:"papers_this_week"`

	// TopDomains lists the three most frequent domains this week.
	TopDomains []DomainCount `json:"top_domains" yaml:"top_domains"`

	// TotalPapers is the total record count, for context.
	TotalPapers int `json:"total_papers" yaml:"total_papers"`

	// WeeklyPapers holds the window's records for the renderer.
	WeeklyPapers []types.Record `json:"weekly_papers" yaml:"weekly_papers"`
}

// DomainCount pairs a domain with a frequency count.
type DomainCount struct {
	Domain string `json:"domain" yaml:"domain"`
	Count  int    `json:"count" yaml:"count"`
}

// Weekly computes activity for the seven days ending at now. The window is
// inclusive at its lower bound: a paper published exactly seven days ago
// counts, one published earlier does not.
func Weekly(records []types.Record, now time.Time) WeeklyStats {
	windowStart := now.Add(-weeklyWindow)

	stats := WeeklyStats{
		TopDomains:  []DomainCount{},
		TotalPapers: len(records),
	}

	counts := map[string]int{}
	canonical := map[string]string{}

	for _, rec := range records {
		if rec.Published.Before(windowStart) {
			continue
		}
		stats.WeeklyPapers = append(stats.WeeklyPapers, rec)
		stats.PapersThisWeek++

		for _, domain := range rec.MedicalDomains {
			key := foldDomain(domain)
			name, ok := canonical[key]
			if !ok {
				name = domain
				canonical[key] = domain
			}
			counts[name]++
		}
	}

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
	if len(ranked) > topWeeklyDomains {
		ranked = ranked[:topWeeklyDomains]
	}
	stats.TopDomains = ranked

	return stats
}
