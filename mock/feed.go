package mock

import (
	"context"

	"github.com/gomhan/baitcheck"
)

var _ baitcheck.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of baitcheck.FeedService.
type FeedService struct {
	DiscoverURLsFn func(ctx context.Context, feedURL string) ([]string, error)
}

func (s *FeedService) DiscoverURLs(ctx context.Context, feedURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, feedURL)
}
