// Package handler is the HTTP layer, the first entry point for business
// logic after the router.
//
// It binds and validates requests through the validation package, calls the
// appropriate service, and shapes the JSON response. Persistence details
// never appear here; handlers hold only transient copies of records for the
// duration of a request.
package handler

import (
	"github.com/storemate/backend/internal/server"
)

// Handler is the base type embedded by concrete handlers so they can reach
// shared application dependencies (config, logger) via *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returning by value is fine: the
// struct only holds a pointer.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}
