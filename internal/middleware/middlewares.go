package middleware

import (
	"github.com/storemate/backend/internal/server"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server, so routing setup receives one object
// with its dependencies already wired.
type Middlewares struct {
	// Global holds middleware applied to every route: CORS, request
	// logging, recovery, secure headers, and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger
	// (request_id, method, path, ip).
	ContextEnhancer *ContextEnhancer

	// RateLimit throttles requests per client IP.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components from the application
// container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
