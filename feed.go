package baitcheck

import "context"

// FeedService discovers article URLs from publisher RSS or Atom feeds,
// used by batch classification to enumerate recent articles.
type FeedService interface {
	// DiscoverURLs fetches the feed and returns the article URLs it
	// lists, in feed order. Returns an empty slice (not nil) when the
	// feed holds no items.
	DiscoverURLs(ctx context.Context, feedURL string) ([]string, error)
}
