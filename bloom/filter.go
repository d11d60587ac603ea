// Package bloom provides probabilistic URL deduplication for batch
// classification runs, so a feed that repeats an article never pays for
// a second fetch.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for article-URL deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen records the URL and reports whether it was already present.
// False positives are possible (an occasional skipped article); false
// negatives are not, so no URL is ever processed twice.
func (f *Filter) Seen(url string) bool {
	return f.f.TestAndAddString(url)
}

// EstimatedCount returns the approximate number of URLs recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
