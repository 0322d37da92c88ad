package port

import (
	"context"

	"github.com/vertextoedge/docfetch/internal/domain"
)

// DocumentFetcher retrieves a URL into memory
type DocumentFetcher interface {
	// Fetch issues a single GET for url and returns the full response.
	// Non-2xx responses and transport failures are returned as *domain.NetworkError.
	Fetch(ctx context.Context, url string) (*domain.Document, error)
}
