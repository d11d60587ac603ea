package http

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"github.com/gomhan/baitcheck"
)

// Ensure FeedService implements baitcheck.FeedService.
var _ baitcheck.FeedService = (*FeedService)(nil)

// FeedService discovers article URLs from RSS and Atom feeds via HTTP.
type FeedService struct {
	client *http.Client
}

// NewFeedService creates a new FeedService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewFeedService(client *http.Client) *FeedService {
	if client == nil {
		client = http.DefaultClient
	}
	return &FeedService{client: client}
}

// DiscoverURLs fetches the feed and returns the article URLs it lists.
// Both RSS (<item><link>text</link></item>) and Atom
// (<entry><link href="..."/></entry>) documents are understood.
func (s *FeedService) DiscoverURLs(ctx context.Context, feedURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, baitcheck.Errorf(baitcheck.EINVALID, "invalid feed URL %q: %v", feedURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, baitcheck.Errorf(baitcheck.ENETWORK, "fetching feed %s: %v", feedURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, baitcheck.Errorf(baitcheck.ENETWORK, "HTTP %d for feed %s", resp.StatusCode, feedURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, baitcheck.Errorf(baitcheck.ENETWORK, "reading feed %s: %v", feedURL, err)
	}

	return ParseFeed(body)
}

// ParseFeed extracts article URLs from raw RSS or Atom bytes.
func ParseFeed(data []byte) ([]string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, baitcheck.Errorf(baitcheck.EINVALID, "parsing feed: %v", err)
	}

	urls := []string{}
	seen := make(map[string]bool)
	add := func(u string) {
		u = strings.TrimSpace(u)
		if u == "" || seen[u] {
			return
		}
		seen[u] = true
		urls = append(urls, u)
	}

	// RSS: /rss/channel/item/link holds the URL as element text.
	for _, link := range doc.FindElements("//item/link") {
		add(link.Text())
	}

	// Atom: /feed/entry/link carries the URL in an href attribute.
	// Alternate links are preferred over self/edit relations.
	for _, link := range doc.FindElements("//entry/link") {
		rel := link.SelectAttrValue("rel", "alternate")
		if rel != "alternate" {
			continue
		}
		add(link.SelectAttrValue("href", ""))
	}

	return urls, nil
}
