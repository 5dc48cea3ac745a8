package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/storemate/backend/internal/errs"
	"github.com/storemate/backend/internal/model"
	"github.com/storemate/backend/internal/password"
	"github.com/storemate/backend/internal/repository"
)

// invalidCredentials is the single 401 for every login failure mode.
// Unknown email and wrong password must be indistinguishable to the caller.
const invalidCredentials = "Invalid credentials"

// RegisterInput is the validated registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Pincode  string
	Password string
	Role     string
}

// AuthService handles registration and login.
type AuthService struct {
	users  repository.UserRepository
	hasher *password.Hasher
}

// NewAuthService constructs an AuthService.
func NewAuthService(users repository.UserRepository, hasher *password.Hasher) *AuthService {
	return &AuthService{users: users, hasher: hasher}
}

// Register hashes the password and stores the user, returning the generated
// id in its external string form. The plaintext never leaves this function.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (string, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Address:  input.Address,
		Pincode:  input.Pincode,
		Password: hash,
		Role:     input.Role,
	}

	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// Login verifies credentials and returns the stored user record. The caller
// shapes the response; the record's password hash is json-excluded anyway.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewUnauthorizedError(invalidCredentials)
		}
		return nil, err
	}

	if !s.hasher.Verify(plaintext, user.Password) {
		return nil, errs.NewUnauthorizedError(invalidCredentials)
	}

	return user, nil
}
