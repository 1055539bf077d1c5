package middleware

import (
	"adaptive-response-engine/internal/metrics"
	"adaptive-response-engine/pkg/log"
)

// Config configures the shared middleware set.
type Config struct {
	RateLimitPerMin int // 0 disables rate limiting
}

type Middleware struct {
	l           log.Logger
	metrics     *metrics.Collector
	rateLimiter *rateLimiter
}

// New creates the middleware set. metrics may be nil.
func New(l log.Logger, cfg Config, m *metrics.Collector) Middleware {
	mw := Middleware{
		l:       l,
		metrics: m,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.rateLimiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
