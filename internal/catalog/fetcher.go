package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pders01/devtec/internal/config"
)

const (
	defaultUserAgent = "devtec/1.0 (catalog browser; github.com/pders01/devtec)"
	defaultTimeout   = 30 * time.Second

	// maxCatalogSize is the largest response body accepted.
	maxCatalogSize = 16 << 20
)

// ErrCatalogTooLarge is returned when a response body exceeds the size
// limit. Nothing is decoded in that case.
var ErrCatalogTooLarge = errors.New("catalog too large")

// Fetcher downloads remote catalogs.
type Fetcher struct {
	client    *http.Client
	userAgent string
	maxSize   int64
}

func NewFetcher(cfg *config.Config) *Fetcher {
	timeout := defaultTimeout
	userAgent := defaultUserAgent
	if cfg != nil {
		if cfg.Data.HTTPTimeout > 0 {
			timeout = cfg.Data.HTTPTimeout
		}
		if cfg.Data.UserAgent != "" {
			userAgent = cfg.Data.UserAgent
		}
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		maxSize:   maxCatalogSize,
	}
}

// Fetch performs a single GET and returns the body.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json, application/toml, application/yaml, text/plain")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if int64(len(body)) > f.maxSize {
		return nil, fmt.Errorf("%w: over %d bytes", ErrCatalogTooLarge, f.maxSize)
	}

	return body, nil
}
