package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/storemate/backend/internal/errs"
	"github.com/storemate/backend/internal/server"
	"github.com/storemate/backend/internal/service"
	"github.com/storemate/backend/internal/validation"
)

// RegisterRequest is the registration payload. Every rule is evaluated, so
// the error map covers all violated fields at once.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,simple_email"`
	Phone    string `json:"phone" validate:"omitempty,phone10"`
	Address  string `json:"address"`
	Pincode  string `json:"pincode"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
}

// Validate runs the tag-based rules.
func (r *RegisterRequest) Validate() error {
	return validation.Struct(r)
}

// LoginRequest is the login payload. Presence only; the format was already
// validated at registration.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate responds with a single message rather than a field map.
func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return errs.NewBadRequestError("Email and password are required")
	}
	return nil
}

// RegisterResponse is the 201 body for a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// LoginResponse is the user record returned on login. There is no password
// field here, so the stored hash cannot serialize on any path.
type LoginResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
	Role    string `json:"role"`
}

// AuthHandler serves registration and login.
type AuthHandler struct {
	Handler
	auth *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(s *server.Server, services *service.Services) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    services.Auth,
	}
}

// Register creates a user from a validated payload.
func (h *AuthHandler) Register(c echo.Context, req *RegisterRequest) (*RegisterResponse, error) {
	id, err := h.auth.Register(c.Request().Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Pincode:  req.Pincode,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return nil, err
	}

	return &RegisterResponse{
		Message: "User registered successfully",
		ID:      id,
	}, nil
}

// Login verifies credentials and returns the user record, hash excluded.
func (h *AuthHandler) Login(c echo.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		ID:      user.ID.Hex(),
		Email:   user.Email,
		Name:    user.Name,
		Phone:   user.Phone,
		Address: user.Address,
		Pincode: user.Pincode,
		Role:    user.Role,
	}, nil
}
