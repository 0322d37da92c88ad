package fetcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vertextoedge/docfetch/internal/domain"
	"github.com/vertextoedge/docfetch/internal/port"
	"github.com/vertextoedge/docfetch/internal/util/ratelimiter"
)

// Config contains fetcher configuration
type Config struct {
	// Progress receives the human-readable Downloading:/Saved: lines
	Progress io.Writer

	// MinInterval is the minimum spacing between request starts, 0 disables it
	MinInterval time.Duration
}

// DefaultConfig returns default fetcher configuration
func DefaultConfig() *Config {
	return &Config{
		Progress: os.Stdout,
	}
}

// Fetcher downloads every entry of a table into the output directory,
// strictly in order, stopping at the first failure.
type Fetcher struct {
	config     *Config
	fs         port.FileSystem
	lock       port.DirLock
	history    *historyRecorder
	limiter    *ratelimiter.Limiter
	downloader *Downloader
	logger     *zap.Logger

	newRunID func() string
	now      func() time.Time
}

// New creates a new Fetcher. lock and history may be nil.
func New(
	cfg *Config,
	docs port.DocumentFetcher,
	fs port.FileSystem,
	lock port.DirLock,
	history port.HistoryRepository,
	logger *zap.Logger,
) *Fetcher {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Progress == nil {
		cfg.Progress = os.Stdout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Fetcher{
		config:     cfg,
		fs:         fs,
		lock:       lock,
		history:    newHistoryRecorder(history, logger),
		limiter:    ratelimiter.New(cfg.MinInterval),
		downloader: NewDownloader(docs, fs, logger),
		logger:     logger,
		newRunID:   func() string { return uuid.NewString() },
		now:        time.Now,
	}
}

// Run ensures the output directory exists and then fetches and writes each
// entry in order. The first error aborts the run; files of later entries are
// neither created nor modified. The returned summary is never nil.
func (f *Fetcher) Run(ctx context.Context, entries []domain.DownloadEntry) (*domain.RunSummary, error) {
	summary := &domain.RunSummary{
		ID:        f.newRunID(),
		StartedAt: f.now(),
	}
	log := f.logger.With(zap.String("run_id", summary.ID))

	err := f.run(ctx, log, summary, entries)

	summary.FinishedAt = f.now()
	summary.Err = err
	f.history.finishRun(summary)

	if err != nil {
		log.Error("run aborted",
			zap.Int("saved", summary.Saved()),
			zap.Int("total", len(entries)),
			zap.Error(err))
		return summary, err
	}

	log.Info("run completed",
		zap.Int("saved", summary.Saved()),
		zap.Duration("duration", summary.Duration()))
	return summary, nil
}

func (f *Fetcher) run(ctx context.Context, log *zap.Logger, summary *domain.RunSummary, entries []domain.DownloadEntry) error {
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
	}

	if err := f.fs.EnsureRoot(); err != nil {
		return err
	}

	if f.lock != nil {
		if err := f.lock.TryLock(); err != nil {
			return err
		}
		defer func() {
			if err := f.lock.Unlock(); err != nil {
				log.Warn("failed to release output directory lock", zap.Error(err))
			}
		}()
	}

	f.history.startRun(summary.ID, summary.StartedAt)

	log.Info("starting run",
		zap.String("output_dir", f.fs.RootDir()),
		zap.Int("entries", len(entries)))

	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := f.limiter.Wait(ctx); err != nil {
			return err
		}

		fmt.Fprintln(f.config.Progress, "Downloading:", entry.URL)

		started := f.now()
		result, err := f.downloader.Download(ctx, entry)
		f.history.recordFetch(summary.ID, entry, result, err, started, f.now())
		if err != nil {
			return fmt.Errorf("entry %d (%s): %w", i+1, entry.Filename, err)
		}

		summary.Results = append(summary.Results, *result)
		fmt.Fprintln(f.config.Progress, "Saved:", result.Path)
	}

	return nil
}
