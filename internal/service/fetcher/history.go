package fetcher

import (
	"time"

	"go.uber.org/zap"

	"github.com/vertextoedge/docfetch/internal/domain"
	"github.com/vertextoedge/docfetch/internal/port"
)

// historyRecorder writes run history on a best-effort basis.
// A nil repository turns every call into a no-op; write failures are logged, never returned.
type historyRecorder struct {
	repo   port.HistoryRepository
	logger *zap.Logger

	// runID is set once the run row exists; fetches of other runs are not recorded
	runID string
}

func newHistoryRecorder(repo port.HistoryRepository, logger *zap.Logger) *historyRecorder {
	return &historyRecorder{repo: repo, logger: logger}
}

func (h *historyRecorder) startRun(id string, at time.Time) {
	h.runID = ""
	if h.repo == nil {
		return
	}
	if err := h.repo.StartRun(id, at); err != nil {
		h.logger.Warn("failed to record run start", zap.String("run_id", id), zap.Error(err))
		return
	}
	h.runID = id
}

func (h *historyRecorder) recordFetch(runID string, entry domain.DownloadEntry, result *domain.DownloadResult, fetchErr error, started, finished time.Time) {
	if h.repo == nil || h.runID != runID {
		return
	}

	rec := &domain.FetchRecord{
		RunID:      runID,
		Filename:   entry.Filename,
		URL:        entry.URL,
		StartedAt:  started,
		FinishedAt: finished,
	}
	if result != nil {
		rec.Path = result.Path
		rec.Bytes = result.BytesWritten
		rec.StatusCode = result.StatusCode
		rec.Title = result.Title
	}
	if fetchErr != nil {
		rec.Error = fetchErr.Error()
		if code, ok := domain.GetStatusCode(fetchErr); ok {
			rec.StatusCode = code
		}
	}

	if err := h.repo.RecordFetch(rec); err != nil {
		h.logger.Warn("failed to record fetch",
			zap.String("run_id", runID),
			zap.String("url", entry.URL),
			zap.Error(err))
	}
}

func (h *historyRecorder) finishRun(summary *domain.RunSummary) {
	if h.repo == nil || h.runID != summary.ID {
		return
	}

	var errMsg string
	if summary.Err != nil {
		errMsg = summary.Err.Error()
	}
	if err := h.repo.FinishRun(summary.ID, summary.FinishedAt, summary.Saved(), errMsg); err != nil {
		h.logger.Warn("failed to record run finish", zap.String("run_id", summary.ID), zap.Error(err))
	}
}
