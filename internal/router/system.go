package router

import (
	"github.com/labstack/echo/v4"

	"github.com/storemate/backend/internal/handler"
)

// registerSystemRoutes registers endpoints that are not business logic.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	// Health status endpoint, used by monitors and load balancers.
	e.GET("/status", h.Health.CheckHealth)
}
