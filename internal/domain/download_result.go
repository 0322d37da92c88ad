package domain

import "time"

// DownloadResult represents the result of saving one entry
type DownloadResult struct {
	// Entry is the catalog entry that was processed
	Entry DownloadEntry

	// Path is the local path where the document was saved
	Path string

	// BytesWritten is the total bytes written to disk
	BytesWritten int64

	// StatusCode is the HTTP status of the response
	StatusCode int

	// Title is the page <title>, empty when none was found
	Title string
}

// RunSummary describes a finished (or aborted) run
type RunSummary struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Results    []DownloadResult

	// Err is the error that aborted the run, nil on success
	Err error
}

// Saved returns the number of entries written successfully
func (s *RunSummary) Saved() int {
	return len(s.Results)
}

// Duration returns how long the run took
func (s *RunSummary) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}
