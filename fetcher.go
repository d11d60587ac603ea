package baitcheck

import "context"

// FetchResult holds the raw response of a page fetch, before any
// character decoding has been applied.
type FetchResult struct {
	// Body is the undecoded response body.
	Body []byte

	// ContentType is the declared Content-Type header, possibly empty.
	ContentType string

	// FinalURL is the URL the response was served from, after redirects.
	FinalURL string
}

// Fetcher retrieves raw article bytes from URLs.
// Implementations may use plain HTTP or browser automation for
// JavaScript-rendered publishers.
type Fetcher interface {
	// Fetch issues a GET request for the URL and returns the raw bytes
	// plus the declared content type. Timeouts, connection failures, and
	// non-2xx statuses all yield an ENETWORK error.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
