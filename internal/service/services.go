package service

import (
	"github.com/storemate/backend/internal/password"
	"github.com/storemate/backend/internal/repository"
	"github.com/storemate/backend/internal/server"
)

// Services is the container for all business-layer services.
type Services struct {
	Auth    *AuthService
	Product *ProductService
}

// NewServices constructs the service container. The bcrypt cost comes from
// config so tests and local runs can use a cheap cost.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	hasher := password.NewHasher(s.Config.Auth.BcryptCost)

	return &Services{
		Auth:    NewAuthService(repos.Users, hasher),
		Product: NewProductService(repos.Products),
	}
}
