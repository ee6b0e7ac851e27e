package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/L1nkStart/authsvc/internal/pkg/ratelimit"
	"github.com/L1nkStart/authsvc/internal/server/http/dto"
)

// RateLimit rejects requests over the per-IP budget before they reach
// validation or storage.
func RateLimit(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter := limiter.Allow(c.ClientIP())
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Err("too many authentication attempts, try again later"))
			return
		}
		c.Next()
	}
}
