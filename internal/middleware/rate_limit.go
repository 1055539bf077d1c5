package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgErrors "adaptive-response-engine/pkg/errors"
	"adaptive-response-engine/pkg/response"
)

const (
	maxLimiterKeys = 1000
	limiterTTL     = 5 * time.Minute
)

// RateLimit throttles requests per session, or per client IP on routes
// without a session id.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.rateLimiter == nil {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if id := c.Param("id"); id != "" {
			key = "session:" + id
		}

		if err := mw.rateLimiter.Allow(key); err != nil {
			mw.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: %v", err)
			c.Header("Retry-After", "1")
			response.Error(c, pkgErrors.NewHTTPError(http.StatusTooManyRequests, err.Error()), nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per key and forgets idle keys
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxLimiterKeys, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst:    max(requestsPerMin/10, 1),
	}
}

func (rl *rateLimiter) Allow(key string) error {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
