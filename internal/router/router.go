// Package router initializes the HTTP router (using echo).
//
// It registers the middlewares and defines the route table, mapping each
// path to its handler.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storemate/backend/internal/handler"
	"github.com/storemate/backend/internal/middleware"
	"github.com/storemate/backend/internal/server"
)

// New builds the echo instance with the global middleware stack, the error
// funnel, and all routes registered. The returned value is handed to the
// server as its http.Handler.
func New(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Order matters: recovery first, then request-id before the context
	// enhancer that logs it.
	e.Use(m.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())
	e.Use(m.RateLimit.Limit())

	registerRoutes(e, h)
	registerSystemRoutes(e, h)

	return e
}

func registerRoutes(e *echo.Echo, h *handler.Handlers) {
	e.POST("/register", handler.Handle(h.Auth.Register, http.StatusCreated))
	e.POST("/login", handler.Handle(h.Auth.Login, http.StatusOK))

	e.POST("/products", handler.Handle(h.Product.Add, http.StatusCreated))
	e.GET("/products", handler.Handle(h.Product.List, http.StatusOK))
	e.PUT("/products/:id", handler.Handle(h.Product.Update, http.StatusOK))
	e.DELETE("/products/:id", handler.Handle(h.Product.Delete, http.StatusOK))
}
