package fetcher

import (
	"context"

	"go.uber.org/zap"

	"github.com/vertextoedge/docfetch/internal/domain"
	"github.com/vertextoedge/docfetch/internal/htmlmeta"
	"github.com/vertextoedge/docfetch/internal/port"
)

// Downloader fetches one entry and writes it to the output directory
type Downloader struct {
	docs   port.DocumentFetcher
	fs     port.FileSystem
	logger *zap.Logger
}

// NewDownloader creates a new Downloader
func NewDownloader(docs port.DocumentFetcher, fs port.FileSystem, logger *zap.Logger) *Downloader {
	return &Downloader{
		docs:   docs,
		fs:     fs,
		logger: logger,
	}
}

// Download fetches entry.URL into memory and then writes the body to
// entry.Filename, truncating any previous content. Nothing is written when
// the fetch fails.
func (d *Downloader) Download(ctx context.Context, entry domain.DownloadEntry) (*domain.DownloadResult, error) {
	d.logger.Debug("fetching document",
		zap.String("url", entry.URL),
		zap.String("filename", entry.Filename))

	doc, err := d.docs.Fetch(ctx, entry.URL)
	if err != nil {
		return nil, err
	}

	path, written, err := d.fs.WriteFile(entry.Filename, doc.Body)
	if err != nil {
		return nil, err
	}

	result := &domain.DownloadResult{
		Entry:        entry,
		Path:         path,
		BytesWritten: written,
		StatusCode:   doc.StatusCode,
		Title:        htmlmeta.Title(doc.Body),
	}

	d.logger.Info("document saved",
		zap.String("url", entry.URL),
		zap.String("path", path),
		zap.Int64("bytes", written),
		zap.String("content_type", doc.ContentType),
		zap.String("title", result.Title))

	return result, nil
}
