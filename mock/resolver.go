package mock

import "github.com/gomhan/baitcheck"

var _ baitcheck.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of baitcheck.Resolver.
type Resolver struct {
	ResolveFn func(raw []byte, contentType, url string) *baitcheck.DecodedDocument
}

func (r *Resolver) Resolve(raw []byte, contentType, url string) *baitcheck.DecodedDocument {
	return r.ResolveFn(raw, contentType, url)
}
