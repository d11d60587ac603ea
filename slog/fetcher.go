// Package slog provides logging decorators for baitcheck services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/gomhan/baitcheck"
)

// Ensure LoggingFetcher implements baitcheck.Fetcher.
var _ baitcheck.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   baitcheck.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next baitcheck.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (res *baitcheck.FetchResult, err error) {
	defer func(begin time.Time) {
		var size int
		if res != nil {
			size = len(res.Body)
		}
		f.logger.Info("article fetch",
			"url", url,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
