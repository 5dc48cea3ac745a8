package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/storemate/backend/internal/server"
)

// RateLimitMiddleware throttles requests per client IP using echo's
// in-memory token-bucket limiter. Limits come from config.
type RateLimitMiddleware struct {
	server *server.Server
}

// NewRateLimitMiddleware constructs the rate limiter component.
func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{server: s}
}

// Limit returns the echo middleware. Exceeding the limit yields echo's
// standard 429, which the global error handler shapes for the client.
func (rl *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	cfg := rl.server.Config.RateLimit

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:  rate.Limit(cfg.RequestsPerSecond),
				Burst: cfg.Burst,
			},
		),
	})
}
