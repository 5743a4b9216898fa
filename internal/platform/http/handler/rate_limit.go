package handler

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"onboarding_backend/internal/platform/http/respond"
	"onboarding_backend/internal/shared/ratelimiter"
)

// Limiter is satisfied by *ratelimiter.Limiter.
type Limiter interface {
	Allow(key string) (bool, time.Duration)
}

var _ Limiter = (*ratelimiter.Limiter)(nil)

// RateLimit rejects a client IP that exceeds l with 429 and a Retry-After header.
func RateLimit(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, wait := l.Allow(c.ClientIP())
		if ok {
			c.Next()
			return
		}
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
		respond.Message(c, http.StatusTooManyRequests, "too many requests")
		c.Abort()
	}
}
