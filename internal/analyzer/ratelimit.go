package analyzer

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultMinRequestInterval is the spacing enforced between consecutive
// text-generation calls when no explicit interval is configured.
const DefaultMinRequestInterval = 5 * time.Second

// RequestLimiter enforces a minimum spacing between consecutive calls to the
// text-generation service. A single limiter is shared between article
// classification and narrative generation so the spacing holds across both
// call sites. The underlying rate.Limiter is safe for concurrent use should
// callers ever parallelize the pipeline.
type RequestLimiter struct {
	limiter *rate.Limiter
}

// NewRequestLimiter creates a limiter with the given minimum interval between
// calls. Non-positive intervals fall back to DefaultMinRequestInterval.
func NewRequestLimiter(minInterval time.Duration) *RequestLimiter {
	if minInterval <= 0 {
		minInterval = DefaultMinRequestInterval
	}
	return &RequestLimiter{
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
	}
}

// Wait blocks until the minimum interval since the previous permitted call
// has elapsed, or until the context is canceled.
func (l *RequestLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
