package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vertextoedge/docfetch/internal/domain"
)

// StartRun inserts a run row
func (s *Store) StartRun(id string, startedAt time.Time) error {
	_, err := s.db.Exec(`INSERT INTO runs (id, started_at) VALUES (?, ?)`, id, startedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// FinishRun marks a run finished
func (s *Store) FinishRun(id string, finishedAt time.Time, saved int, errMsg string) error {
	res, err := s.db.Exec(
		`UPDATE runs SET finished_at = ?, saved = ?, error = ? WHERE id = ?`,
		finishedAt.UnixMilli(), saved, errMsg, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("run %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// RecordFetch inserts one fetch attempt and sets rec.ID
func (s *Store) RecordFetch(rec *domain.FetchRecord) error {
	query := `
		INSERT INTO fetches (run_id, filename, url, path, bytes, status_code, title, error, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := s.db.Exec(query,
		rec.RunID, rec.Filename, rec.URL, rec.Path, rec.Bytes, rec.StatusCode,
		rec.Title, rec.Error, rec.StartedAt.UnixMilli(), rec.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert fetch: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = id
	return nil
}

// ListRuns returns the most recent runs, newest first
func (s *Store) ListRuns(limit int) ([]*domain.RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(`
		SELECT id, started_at, finished_at, saved, error
		FROM runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*domain.RunRecord
	for rows.Next() {
		run := &domain.RunRecord{}
		var startedAt int64
		var finishedAt sql.NullInt64

		if err := rows.Scan(&run.ID, &startedAt, &finishedAt, &run.Saved, &run.Error); err != nil {
			return nil, err
		}

		run.StartedAt = time.UnixMilli(startedAt)
		if finishedAt.Valid {
			t := time.UnixMilli(finishedAt.Int64)
			run.FinishedAt = &t
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// ListFetches returns the fetch attempts of a run in insertion order
func (s *Store) ListFetches(runID string) ([]*domain.FetchRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, run_id, filename, url, path, bytes, status_code, title, error, started_at, finished_at
		FROM fetches
		WHERE run_id = ?
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fetches []*domain.FetchRecord
	for rows.Next() {
		rec := &domain.FetchRecord{}
		var startedAt, finishedAt int64

		err := rows.Scan(
			&rec.ID, &rec.RunID, &rec.Filename, &rec.URL, &rec.Path, &rec.Bytes,
			&rec.StatusCode, &rec.Title, &rec.Error, &startedAt, &finishedAt,
		)
		if err != nil {
			return nil, err
		}

		rec.StartedAt = time.UnixMilli(startedAt)
		rec.FinishedAt = time.UnixMilli(finishedAt)
		fetches = append(fetches, rec)
	}

	return fetches, rows.Err()
}
