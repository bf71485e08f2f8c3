// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/BryanTegomoh/arxiv-health/internal/store"
	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

func seededStore(t *testing.T, now time.Time) *store.Store {
	t.Helper()
	st, err := store.NewStore(types.StoreConfig{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	records := []types.Record{
		{
			Candidate: types.Candidate{
				ArxivID:   "2301.00001",
				Title:     "Sepsis Prediction",
				Published: now.AddDate(0, 0, -2),
			},
			RelevanceScore: 0.8,
			MedicalDomains: []string{"Critical Care"},
		},
		{
			Candidate: types.Candidate{
				ArxivID:   "2301.00002",
				Title:     "Tumor Segmentation",
				Published: now.AddDate(0, 0, -20),
			},
			RelevanceScore: 0.7,
			MedicalDomains: []string{"Oncology"},
		},
	}
	for i := range records {
		if _, err := st.Insert(context.Background(), &records[i]); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	return st
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	st := seededStore(t, now)

	snap, err := Build(context.Background(), st, now)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if snap.Statistics.TotalPapers != 2 {
		t.Errorf("total papers = %d", snap.Statistics.TotalPapers)
	}
	if snap.Weekly.PapersThisWeek != 1 {
		t.Errorf("papers this week = %d, want 1", snap.Weekly.PapersThisWeek)
	}
	if len(snap.Trending) != 2 {
		t.Errorf("trending = %d entries", len(snap.Trending))
	}
	if len(snap.Papers) != 2 {
		t.Errorf("papers = %d entries", len(snap.Papers))
	}
	if !snap.GeneratedAt.Equal(now) {
		t.Errorf("generated at = %v", snap.GeneratedAt)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	st := seededStore(t, now)

	snap, err := Build(context.Background(), st, now)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	if err := snap.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"generated_at", "statistics", "weekly", "trending", "papers"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
}

func TestWriteYAML(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	st := seededStore(t, now)

	snap, err := Build(context.Background(), st, now)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	if err := snap.WriteYAML(&buf); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if !strings.Contains(buf.String(), "Sepsis Prediction") {
		t.Errorf("yaml output missing paper title:\n%s", buf.String())
	}
}
