package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"supplier-marketplace/internal/handler/httperr"
	"supplier-marketplace/internal/pkg/clock"
	"supplier-marketplace/internal/pkg/config"
	"supplier-marketplace/internal/pkg/errs"
)

var errTooManyRequests = errs.Mark(errs.New("Too many requests"), errs.ErrRateLimited)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer than IdleTTL are
// swept at most once per IdleTTL, on the request path.
type RateLimiter struct {
	cfg       config.RateLimitConfig
	clock     clock.Clock
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig, clk clock.Clock) *RateLimiter {
	return &RateLimiter{
		cfg:       cfg,
		clock:     clk,
		buckets:   make(map[string]*bucket),
		lastSweep: clk.Now(),
	}
}

func (r *RateLimiter) allow(key string) bool {
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep(now)
	b, ok := r.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Limit(r.cfg.RPS), r.cfg.Burst)}
		r.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

// sweep expects r.mu held.
func (r *RateLimiter) sweep(now time.Time) {
	if r.cfg.IdleTTL <= 0 || now.Sub(r.lastSweep) < r.cfg.IdleTTL {
		return
	}
	for key, b := range r.buckets {
		if now.Sub(b.lastSeen) >= r.cfg.IdleTTL {
			delete(r.buckets, key)
		}
	}
	r.lastSweep = now
}

// Tracked reports how many client buckets are currently held.
func (r *RateLimiter) Tracked() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buckets)
}

func (r *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.cfg.RPS <= 0 {
			c.Next()
			return
		}
		if !r.allow(c.ClientIP()) {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errTooManyRequests, errTooManyRequests.Error(), nil)
			return
		}
		c.Next()
	}
}
