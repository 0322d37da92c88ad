package domain

import "time"

// RunRecord is a persisted run row
type RunRecord struct {
	ID         string
	StartedAt  time.Time
	FinishedAt *time.Time
	Saved      int
	Error      string
}

// Succeeded reports whether the run finished without error
func (r *RunRecord) Succeeded() bool {
	return r.FinishedAt != nil && r.Error == ""
}

// FetchRecord is a persisted attempt to fetch one entry
type FetchRecord struct {
	ID         int64
	RunID      string
	Filename   string
	URL        string
	Path       string
	Bytes      int64
	StatusCode int
	Title      string
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Succeeded reports whether the entry was saved
func (r *FetchRecord) Succeeded() bool {
	return r.Error == ""
}
