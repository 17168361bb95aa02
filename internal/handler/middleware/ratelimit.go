package middleware

import (
	"log/slog"
	"net/http"
	"sync"

	"kidcare-booking/internal/handler/httperr"
	"kidcare-booking/internal/pkg/config"
	"kidcare-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var ErrRateLimited = errs.New("rate limit exceeded")

// RateLimiter keeps one token bucket per client IP. Buckets are never
// evicted; the set of callers of a booking frontend is small.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(cfg.RPS),
		burst:    cfg.Burst,
	}
}

func (r *RateLimiter) getLimiter(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	limiter, exists := r.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(r.limit, r.burst)
		r.limiters[ip] = limiter
	}
	return limiter
}

// Middleware is a no-op when RPS is not positive.
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.limit <= 0 {
			c.Next()
			return
		}
		ip := c.ClientIP()
		if !r.getLimiter(ip).Allow() {
			slog.Warn("Rate limit exceeded", "client_ip", ip)
			httperr.AbortWithError(c, http.StatusTooManyRequests, ErrRateLimited, "Rate limit exceeded. Try again later.", nil)
			return
		}
		c.Next()
	}
}
