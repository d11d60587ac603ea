// Package pipeline sequences fetching, decoding, and extraction into the
// single synchronous flow that turns an article URL into classifier
// input. One extraction owns all of its intermediate state; nothing is
// shared or cached across calls.
package pipeline

import (
	"context"
	"strings"

	"github.com/gomhan/baitcheck"
)

// Orchestrator runs the extraction pipeline: fetch, resolve encoding,
// parse, and extract title, body, and source.
type Orchestrator struct {
	fetcher  baitcheck.Fetcher
	resolver baitcheck.Resolver
	engine   baitcheck.Extractor
}

// NewOrchestrator creates an Orchestrator from its collaborators.
func NewOrchestrator(fetcher baitcheck.Fetcher, resolver baitcheck.Resolver, engine baitcheck.Extractor) *Orchestrator {
	return &Orchestrator{
		fetcher:  fetcher,
		resolver: resolver,
		engine:   engine,
	}
}

// ExtractInfo turns an article URL into a (title, body, source) triple.
//
// A fetch failure is total: the returned article has all fields empty and
// the ENETWORK error is passed through, so callers can distinguish "could
// not fetch" from "fetched but found nothing". After a successful fetch
// extraction never fails; fields that cannot be recovered degrade to
// their sentinel values, including when the parser panics on malformed
// markup.
func (o *Orchestrator) ExtractInfo(ctx context.Context, url string) (article *baitcheck.Article, err error) {
	res, ferr := o.fetcher.Fetch(ctx, url)
	if ferr != nil {
		return &baitcheck.Article{}, ferr
	}

	article = &baitcheck.Article{
		Title:  baitcheck.NoTitle,
		Body:   baitcheck.NoBody,
		Source: baitcheck.UnknownSource,
	}

	// Anything that goes wrong past this point degrades to the sentinel
	// values already in place rather than aborting the pipeline.
	defer func() {
		_ = recover()
	}()

	article.Source = baitcheck.ExtractSource(res.FinalURL)

	doc := o.resolver.Resolve(res.Body, res.ContentType, res.FinalURL)

	extracted, xerr := o.engine.Extract(doc.Text)
	if xerr != nil {
		return article, nil
	}
	if title := strings.TrimSpace(extracted.Title); title != "" {
		article.Title = title
	}
	if extracted.Body != "" {
		article.Body = extracted.Body
	}
	return article, nil
}
