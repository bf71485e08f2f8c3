// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analytics derives presentation metrics from stored records:
// trending rank, weekly activity, and per-domain and per-author aggregates.
// Everything here is a pure function of a record slice plus a reference time;
// nothing is persisted.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

// trendingLimit caps the trending ranking.
const trendingLimit = 10

// TrendingScore combines recency, relevance, and citation volume into one
// 0-100 metric, rounded to two decimal places. Recency is a step function of
// the paper's age in whole days; the citation component is capped so a single
// heavily-cited paper cannot drown out fresh work.
func TrendingScore(rec types.Record, now time.Time) float64 {
	ageDays := int(now.Sub(rec.Published).Hours() / 24)

	var recency float64
	switch {
	case ageDays <= 0:
		recency = 100
	case ageDays <= 3:
		recency = 90
	case ageDays <= 7:
		recency = 70
	case ageDays <= 14:
		recency = 50
	case ageDays <= 30:
		recency = 30
	default:
		recency = 10
	}

	relevance := rec.RelevanceScore * 100
	citations := math.Min(float64(rec.CitationCount)*5, 50)

	score := recency*0.5 + relevance*0.3 + citations*0.2
	return math.Round(score*100) / 100
}

// RankedRecord pairs a record with its trending score.
type RankedRecord struct {
	types.Record `yaml:",inline"`

	TrendingScore float64 `json:"trending_score" yaml:"trending_score"`
}

// TopTrending scores every record against now and returns the ten highest,
// best first. The sort is stable: records with equal scores keep their input
// order.
func TopTrending(records []types.Record, now time.Time) []RankedRecord {
	ranked := make([]RankedRecord, len(records))
	for i, rec := range records {
		ranked[i] = RankedRecord{Record: rec, TrendingScore: TrendingScore(rec, now)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TrendingScore > ranked[j].TrendingScore
	})

	if len(ranked) > trendingLimit {
		ranked = ranked[:trendingLimit]
	}
	return ranked
}
