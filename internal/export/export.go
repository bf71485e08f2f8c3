// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders a snapshot of the collection to YAML or JSON.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/BryanTegomoh/arxiv-health/internal/analytics"
	"github.com/BryanTegomoh/arxiv-health/internal/store"
	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

// Snapshot bundles the stored records with the derived analytics so one
// export file carries everything a downstream consumer needs.
type Snapshot struct {
	GeneratedAt time.Time                `json:"generated_at" yaml:"generated_at"`
	Statistics  store.Statistics         `json:"statistics" yaml:"statistics"`
	Weekly      analytics.WeeklyStats    `json:"weekly" yaml:"weekly"`
	Trending    []analytics.RankedRecord `json:"trending" yaml:"trending"`
	Papers      []types.Record           `json:"papers" yaml:"papers"`
}

// Build assembles a snapshot from the store at the given reference time.
func Build(ctx context.Context, st *store.Store, now time.Time) (Snapshot, error) {
	records, err := st.All(ctx, store.SortByPublished)
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading papers: %w", err)
	}
	stats, err := st.Statistics(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("computing statistics: %w", err)
	}

	return Snapshot{
		GeneratedAt: now,
		Statistics:  stats,
		Weekly:      analytics.Weekly(records, now),
		Trending:    analytics.TopTrending(records, now),
		Papers:      records,
	}, nil
}

// WriteYAML renders the snapshot as YAML.
func (s Snapshot) WriteYAML(w io.Writer) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteJSON renders the snapshot as indented JSON.
func (s Snapshot) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
