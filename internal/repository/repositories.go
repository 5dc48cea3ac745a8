package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/storemate/backend/internal/model"
	"github.com/storemate/backend/internal/server"
)

// UserRepository persists registration records.
type UserRepository interface {
	// Insert stores a new user and returns the generated id.
	Insert(ctx context.Context, user *model.User) (primitive.ObjectID, error)

	// FindByEmail returns the user with the given email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// ProductRepository persists catalog records.
//
// UpdateByID and DeleteByID return the matched/deleted count; zero means the
// id did not exist and the caller maps that to a not-found error.
type ProductRepository interface {
	Insert(ctx context.Context, product *model.Product) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, patch bson.M) (int64, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// Repositories is the container for all repository instances, wired once at
// startup and injected into the service layer.
type Repositories struct {
	Users    UserRepository
	Products ProductRepository
}

// NewRepositories constructs the repository container from the application
// container's database.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:    NewMongoUserRepository(s.DB.Users()),
		Products: NewMongoProductRepository(s.DB.Products()),
	}
}
