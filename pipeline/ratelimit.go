package pipeline

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// PublisherLimiter provides per-publisher rate limiting for batch
// classification using token buckets. Each publisher domain gets its own
// limiter, so a batch mixing several publishers never hammers any single
// one.
type PublisherLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewPublisherLimiter creates a PublisherLimiter with the specified
// requests per second limit. Each domain gets a burst of 1 (no bursting
// allowed).
func NewPublisherLimiter(rps float64) *PublisherLimiter {
	return &PublisherLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (p *PublisherLimiter) Wait(ctx context.Context, domain string) error {
	p.mu.Lock()
	limiter, ok := p.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(p.rps), 1)
		p.limiters[domain] = limiter
	}
	p.mu.Unlock()

	return limiter.Wait(ctx)
}
