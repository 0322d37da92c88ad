package port

import (
	"time"

	"github.com/vertextoedge/docfetch/internal/domain"
)

// HistoryRepository persists runs and per-entry fetch attempts
type HistoryRepository interface {
	// StartRun inserts a run row
	StartRun(id string, startedAt time.Time) error

	// FinishRun marks a run finished with the number of saved entries and
	// an error message (empty on success)
	FinishRun(id string, finishedAt time.Time, saved int, errMsg string) error

	// RecordFetch inserts one fetch attempt
	RecordFetch(rec *domain.FetchRecord) error

	// ListRuns returns the most recent runs, newest first
	ListRuns(limit int) ([]*domain.RunRecord, error)

	// ListFetches returns the fetch attempts of a run in insertion order
	ListFetches(runID string) ([]*domain.FetchRecord, error)
}
