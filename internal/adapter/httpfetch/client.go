package httpfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vertextoedge/docfetch/internal/domain"
	"github.com/vertextoedge/docfetch/internal/port"
)

// DefaultUserAgent is sent with every request to avoid being blocked
// by servers that reject the Go default agent
const DefaultUserAgent = "Mozilla/5.0"

// Client fetches documents over HTTP
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// Ensure Client implements port.DocumentFetcher
var _ port.DocumentFetcher = (*Client)(nil)

// ClientConfig contains optional client configuration
type ClientConfig struct {
	UserAgent string        // User-Agent header (default: Mozilla/5.0)
	Timeout   time.Duration // Total request timeout, 0 means none
}

// NewClient creates a client with default settings
func NewClient() *Client {
	return NewClientWithConfig(nil)
}

// NewClientWithConfig creates a client with custom configuration
func NewClientWithConfig(cfg *ClientConfig) *Client {
	userAgent := DefaultUserAgent
	var timeout time.Duration
	if cfg != nil {
		if cfg.UserAgent != "" {
			userAgent = cfg.UserAgent
		}
		timeout = cfg.Timeout
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		userAgent: userAgent,
	}
}

// UserAgent returns the User-Agent sent with requests
func (c *Client) UserAgent() string {
	return c.userAgent
}

// Fetch performs one GET and reads the whole body into memory
func (c *Client) Fetch(ctx context.Context, url string) (*domain.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domain.NewNetworkError(url, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewNetworkError(url, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		return nil, domain.NewNetworkError(url, &domain.StatusError{StatusCode: resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewNetworkError(url, fmt.Errorf("failed to read body: %w", err))
	}

	return &domain.Document{
		URL:         url,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
