package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter enforces a per-caller daily request quota in front of the
// stocks endpoint. Callers are keyed by client IP.
type RateLimiter struct {
	quota    int
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewRateLimiter(dailyQuota int) *RateLimiter {
	return &RateLimiter{
		quota:    dailyQuota,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if l, ok := rl.limiters[key]; ok {
		return l
	}
	// Tokens refill over the day; the burst holds the full quota.
	l := rate.NewLimiter(rate.Limit(float64(rl.quota)/(24*time.Hour).Seconds()), rl.quota)
	rl.limiters[key] = l
	return l
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "daily request quota exceeded"})
			return
		}
		c.Next()
	}
}
