package handler

import (
	"github.com/storemate/backend/internal/server"
	"github.com/storemate/backend/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one object
// around instead of many.
type Handlers struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Health  *HealthHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Auth:    NewAuthHandler(s, services),
		Product: NewProductHandler(s, services),
		Health:  NewHealthHandler(s),
	}
}
