// Package mock provides function-field mock implementations of the
// baitcheck interfaces for tests.
package mock

import (
	"context"

	"github.com/gomhan/baitcheck"
)

var _ baitcheck.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of baitcheck.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*baitcheck.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*baitcheck.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
