package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	appcontext "schememonitor/internal/app_context"
	ratelimiter "schememonitor/internal/rate_limiter"
)

type Middleware struct {
	rateLimiter *ratelimiter.FixedWindowRateLimiter
	app         *appcontext.Application
}

func NewMiddleware(app *appcontext.Application,
	rateLimiter *ratelimiter.FixedWindowRateLimiter,
) *Middleware {
	return &Middleware{app: app, rateLimiter: rateLimiter}
}

func (m Middleware) RateLimiterMiddleware(c *gin.Context) {
	if !m.app.Config.RateLimiter.Enabled {
		c.Next()
		return
	}

	allow, retryAfter := m.rateLimiter.Allow(c.ClientIP())
	if !allow {
		c.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	c.Next()
}
