// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists curated paper records in a SQLite database.
// Two logical collections live in one database file: the papers table keyed
// by arXiv ID, and a metadata table holding the singleton last-run timestamp.
// The store assumes a single writer for the duration of a pipeline run.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/BryanTegomoh/arxiv-health/pkg/types"
)

const dbFile = "arxiv_health.db"

// lastRunKey is the fixed key of the singleton run-metadata row.
const lastRunKey = "last_run"

// SortBy selects the ordering of All. Each option sorts descending; ties keep
// insertion order.
type SortBy string

const (
	SortByPublished SortBy = "published"
	SortByRelevance SortBy = "relevance_score"
	SortByAdded     SortBy = "added_to_db"
)

// Store manages the paper database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the SQLite database at dataDir/arxiv_health.db
// and creates the schema if it does not exist. A failure here is fatal to the
// run; there is nothing useful to do without a working store.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			arxiv_id TEXT PRIMARY KEY,
			title TEXT,
			authors TEXT,
			abstract TEXT,
			categories TEXT,
			primary_category TEXT,
			published TEXT,
			updated TEXT,
			pdf_url TEXT,
			arxiv_url TEXT,
			comment TEXT,
			journal_ref TEXT,
			summary TEXT,
			key_points TEXT,
			medical_relevance TEXT,
			keywords TEXT,
			medical_domains TEXT,
			methodology TEXT,
			key_findings TEXT,
			clinical_impact TEXT,
			limitations TEXT,
			future_directions TEXT,
			relevance_score REAL,
			relevance_reasoning TEXT,
			ai_health_application TEXT,
			added_to_db TEXT,
			citation_count INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_published ON papers(published)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_relevance ON papers(relevance_score)`,
		`CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			timestamp TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Exists reports whether a record with the given arXiv ID is already stored.
func (s *Store) Exists(ctx context.Context, arxivID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM papers WHERE arxiv_id = ?`, arxivID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking existence of %s: %w", arxivID, err)
	}
	return n > 0, nil
}

// Insert stores a new record and stamps AddedToDB with the current time.
// If the arXiv ID is already present the insert is a no-op and Insert
// returns false; the existing record is never overwritten.
func (s *Store) Insert(ctx context.Context, rec *types.Record) (bool, error) {
	exists, err := s.Exists(ctx, rec.ArxivID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	rec.AddedToDB = time.Now().UTC()

	authorsJSON, _ := json.Marshal(rec.Authors)
	categoriesJSON, _ := json.Marshal(rec.Categories)
	keyPointsJSON, _ := json.Marshal(rec.KeyPoints)
	keywordsJSON, _ := json.Marshal(rec.Keywords)
	domainsJSON, _ := json.Marshal(rec.MedicalDomains)

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO papers (
			arxiv_id, title, authors, abstract, categories, primary_category,
			published, updated, pdf_url, arxiv_url, comment, journal_ref,
			summary, key_points, medical_relevance, keywords, medical_domains,
			methodology, key_findings, clinical_impact, limitations, future_directions,
			relevance_score, relevance_reasoning, ai_health_application,
			added_to_db, citation_count
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ArxivID, rec.Title, string(authorsJSON), rec.Abstract,
		string(categoriesJSON), rec.PrimaryCategory,
		formatTime(rec.Published), formatTime(rec.Updated),
		rec.PDFURL, rec.ArxivURL, rec.Comment, rec.JournalRef,
		rec.Summary, string(keyPointsJSON), rec.MedicalRelevance,
		string(keywordsJSON), string(domainsJSON),
		rec.Methodology, rec.KeyFindings, rec.ClinicalImpact,
		rec.Limitations, rec.FutureDirections,
		rec.RelevanceScore, rec.RelevanceReasoning, rec.AIHealthApplication,
		formatTime(rec.AddedToDB), rec.CitationCount,
	)
	if err != nil {
		return false, fmt.Errorf("inserting %s: %w", rec.ArxivID, err)
	}
	return true, nil
}

// Get returns the record with the given arXiv ID, or nil if absent.
func (s *Store) Get(ctx context.Context, arxivID string) (*types.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		selectColumns+` FROM papers WHERE arxiv_id = ?`, arxivID)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", arxivID, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	rec, err := scanRecord(rows)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// All returns every record sorted descending by the given field. Ties keep
// insertion order, so repeated calls are stable for identical contents.
func (s *Store) All(ctx context.Context, sortBy SortBy) ([]types.Record, error) {
	var col string
	switch sortBy {
	case SortByPublished, "":
		col = "published"
	case SortByRelevance:
		col = "relevance_score"
	case SortByAdded:
		col = "added_to_db"
	default:
		return nil, fmt.Errorf("unsupported sort field %q", sortBy)
	}

	rows, err := s.db.QueryContext(ctx,
		selectColumns+` FROM papers ORDER BY `+col+` DESC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying papers: %w", err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// SetCitationCount updates the citation count of an existing record. This is
// the only field external enrichment may modify in place.
func (s *Store) SetCitationCount(ctx context.Context, arxivID string, count int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE papers SET citation_count = ? WHERE arxiv_id = ?`, count, arxivID)
	if err != nil {
		return fmt.Errorf("updating citation count for %s: %w", arxivID, err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("no record with arxiv_id %s", arxivID)
	}
	return nil
}

// SetLastRun upserts the singleton run-metadata timestamp.
func (s *Store) SetLastRun(ctx context.Context, t time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO metadata (key, timestamp) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET timestamp=excluded.timestamp`,
		lastRunKey, formatTime(t.UTC()),
	)
	if err != nil {
		return fmt.Errorf("updating last run: %w", err)
	}
	return nil
}

// LastRun returns the timestamp of the last successful run. The second
// return value is false when no run has completed yet.
func (s *Store) LastRun(ctx context.Context) (time.Time, bool, error) {
	var ts string
	err := s.db.QueryRowContext(ctx,
		`SELECT timestamp FROM metadata WHERE key = ?`, lastRunKey,
	).Scan(&ts)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("reading last run: %w", err)
	}

	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parsing last run timestamp %q: %w", ts, err)
	}
	return t, true, nil
}

// selectColumns lists the papers columns in scanRecord order.
const selectColumns = `SELECT
	arxiv_id, title, authors, abstract, categories, primary_category,
	published, updated, pdf_url, arxiv_url, comment, journal_ref,
	summary, key_points, medical_relevance, keywords, medical_domains,
	methodology, key_findings, clinical_impact, limitations, future_directions,
	relevance_score, relevance_reasoning, ai_health_application,
	added_to_db, citation_count`

// scanRecord reads one papers row into a Record.
func scanRecord(rows *sql.Rows) (types.Record, error) {
	var rec types.Record
	var authorsJSON, categoriesJSON, keyPointsJSON, keywordsJSON, domainsJSON string
	var published, updated, addedToDB string

	err := rows.Scan(
		&rec.ArxivID, &rec.Title, &authorsJSON, &rec.Abstract,
		&categoriesJSON, &rec.PrimaryCategory,
		&published, &updated, &rec.PDFURL, &rec.ArxivURL,
		&rec.Comment, &rec.JournalRef,
		&rec.Summary, &keyPointsJSON, &rec.MedicalRelevance,
		&keywordsJSON, &domainsJSON,
		&rec.Methodology, &rec.KeyFindings, &rec.ClinicalImpact,
		&rec.Limitations, &rec.FutureDirections,
		&rec.RelevanceScore, &rec.RelevanceReasoning, &rec.AIHealthApplication,
		&addedToDB, &rec.CitationCount,
	)
	if err != nil {
		return types.Record{}, fmt.Errorf("scanning record: %w", err)
	}

	json.Unmarshal([]byte(authorsJSON), &rec.Authors)
	json.Unmarshal([]byte(categoriesJSON), &rec.Categories)
	json.Unmarshal([]byte(keyPointsJSON), &rec.KeyPoints)
	json.Unmarshal([]byte(keywordsJSON), &rec.Keywords)
	json.Unmarshal([]byte(domainsJSON), &rec.MedicalDomains)

	rec.Published = parseTime(published)
	rec.Updated = parseTime(updated)
	rec.AddedToDB = parseTime(addedToDB)

	return rec, nil
}

// formatTime renders a timestamp as RFC 3339 with sub-second precision, or
// the empty string for the zero value.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

// parseTime is the inverse of formatTime; unparsable input yields the zero value.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
