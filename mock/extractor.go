package mock

import "github.com/gomhan/baitcheck"

var _ baitcheck.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of baitcheck.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*baitcheck.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*baitcheck.ExtractResult, error) {
	return e.ExtractFn(html)
}
