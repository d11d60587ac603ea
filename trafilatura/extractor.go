// Package trafilatura adapts go-trafilatura as an alternative article
// extraction engine for publishers the selector catalog does not cover.
package trafilatura

import (
	"strings"

	"github.com/gomhan/baitcheck"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements baitcheck.Extractor at compile time.
var _ baitcheck.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract article title and body text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes decoded HTML and returns the article content.
// The body is whitespace-normalized to match the selector engine's
// output shape.
func (e *Extractor) Extract(rawHTML string) (*baitcheck.ExtractResult, error) {
	if rawHTML == "" {
		return nil, baitcheck.Errorf(baitcheck.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, baitcheck.Errorf(baitcheck.EINTERNAL, "trafilatura extract: %v", err)
	}

	return &baitcheck.ExtractResult{
		Title: strings.TrimSpace(result.Metadata.Title),
		Body:  baitcheck.CollapseWhitespace(result.ContentText),
	}, nil
}
