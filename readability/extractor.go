// Package readability adapts go-readability as an alternative article
// extraction engine.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/gomhan/baitcheck"
)

// Ensure Extractor implements baitcheck.Extractor at compile time.
var _ baitcheck.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract article title and body text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes decoded HTML and returns the article content.
func (e *Extractor) Extract(rawHTML string) (*baitcheck.ExtractResult, error) {
	if rawHTML == "" {
		return nil, baitcheck.Errorf(baitcheck.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, baitcheck.Errorf(baitcheck.EINTERNAL, "readability extract: %v", err)
	}

	return &baitcheck.ExtractResult{
		Title: strings.TrimSpace(article.Title),
		Body:  baitcheck.CollapseWhitespace(article.TextContent),
	}, nil
}
