// Package rod provides a browser-automation implementation of
// baitcheck.Fetcher for publishers that render article bodies with
// JavaScript.
package rod

import (
	"context"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/gomhan/baitcheck"
)

// DefaultFetchTimeout bounds a single render, matching the plain HTTP
// fetcher.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements baitcheck.Fetcher at compile time.
var _ baitcheck.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered article HTML using headless Chrome.
// Safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
	timeout time.Duration
}

// NewFetcher creates a new Fetcher that launches a headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, baitcheck.Errorf(baitcheck.EUNAVAILABLE, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, baitcheck.Errorf(baitcheck.EUNAVAILABLE, "connecting to browser: %v", err)
	}

	return &Fetcher{browser: browser, timeout: DefaultFetchTimeout}, nil
}

// Fetch navigates to the URL, waits for the page to load, and returns
// the rendered HTML. The result is always UTF-8: the browser has already
// resolved the page's encoding, so no legacy override applies downstream.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*baitcheck.FetchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return nil, baitcheck.Errorf(baitcheck.ENETWORK, "fetching %s: %v", url, err)
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, baitcheck.Errorf(baitcheck.ENETWORK, "opening page for %s: %v", url, err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, baitcheck.Errorf(baitcheck.ENETWORK, "navigating to %s: %v", url, err)
	}

	if err := page.WaitLoad(); err != nil {
		return nil, baitcheck.Errorf(baitcheck.ENETWORK, "loading %s: %v", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, baitcheck.Errorf(baitcheck.ENETWORK, "reading %s: %v", url, err)
	}

	finalURL := url
	if info, err := page.Info(); err == nil && info.URL != "" {
		finalURL = info.URL
	}

	return &baitcheck.FetchResult{
		Body:        []byte(html),
		ContentType: "text/html; charset=utf-8",
		FinalURL:    finalURL,
	}, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
