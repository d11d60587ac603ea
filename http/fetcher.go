// Package http provides an HTTP-based implementation of baitcheck.Fetcher
// for fetching article pages from publishers that serve static HTML.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gomhan/baitcheck"
)

// DefaultFetchTimeout is the hard limit on a single article fetch.
// Kept consistent with rod.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// userAgent is a desktop-browser identity. Many publishers refuse or
// degrade responses for default client identities.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements baitcheck.Fetcher at compile time.
var _ baitcheck.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw article bytes using plain HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript and is suitable
// for static publisher pages only.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the raw bytes and declared content type for the URL.
// Timeouts, connection failures, and non-2xx statuses are all reported
// as ENETWORK errors; there is no retry.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*baitcheck.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, baitcheck.Errorf(baitcheck.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, baitcheck.Errorf(baitcheck.ENETWORK, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, baitcheck.Errorf(baitcheck.ENETWORK, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, baitcheck.Errorf(baitcheck.ENETWORK, "reading %s: %v", url, err)
	}

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &baitcheck.FetchResult{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
		FinalURL:    finalURL,
	}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
