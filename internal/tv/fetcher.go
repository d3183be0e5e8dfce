package tv

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

//go:generate mockgen -destination=mocks/fetcher.go -package=mocks github.com/mediateca/mediateca/internal/tv Fetcher

// Fetcher retrieves the raw channel document.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// NewFetcher picks a fetcher for a channel source location: HTTP for
// http(s) URLs, the local filesystem otherwise.
func NewFetcher(location string) Fetcher {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &HTTPFetcher{URL: location}
	}
	return &FileFetcher{Path: location}
}

// FileFetcher reads the channel document from a local path.
type FileFetcher struct {
	Path string
}

func (f *FileFetcher) Fetch(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read channel document: %w", err)
	}
	return data, nil
}

// HTTPFetcher downloads the channel document from a URL.
type HTTPFetcher struct {
	URL    string
	Client *http.Client // nil uses a client with a 30s timeout
}

func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build channel request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch channel document: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch channel document: status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read channel response: %w", err)
	}
	return data, nil
}
