package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/storemate/backend/internal/errs"
	"github.com/storemate/backend/internal/password"
)

func newAuthService(users *fakeUserRepository) *AuthService {
	return NewAuthService(users, password.NewHasher(bcrypt.MinCost))
}

func registerInput() RegisterInput {
	return RegisterInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "0123456789",
		Password: "supersecret",
		Role:     "user",
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepository()
	svc := newAuthService(users)

	id, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)
	assert.Len(t, id, 24)

	stored := users.users["jane@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "supersecret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("supersecret")))
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepository()
	svc := newAuthService(users)

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	user, err := svc.Login(ctx, "jane@example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "user", user.Role)
}

// Unknown email and wrong password must produce byte-identical 401 bodies,
// so a caller cannot probe which emails are registered.
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepository()
	svc := newAuthService(users)

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	_, unknownEmailErr := svc.Login(ctx, "nobody@example.com", "supersecret")
	_, wrongPasswordErr := svc.Login(ctx, "jane@example.com", "wrongpassword")

	var unknownHTTP, wrongHTTP *errs.HTTPError
	require.True(t, errors.As(unknownEmailErr, &unknownHTTP))
	require.True(t, errors.As(wrongPasswordErr, &wrongHTTP))

	assert.Equal(t, http.StatusUnauthorized, unknownHTTP.Status)
	assert.Equal(t, http.StatusUnauthorized, wrongHTTP.Status)

	unknownBody, err := json.Marshal(unknownHTTP)
	require.NoError(t, err)
	wrongBody, err := json.Marshal(wrongHTTP)
	require.NoError(t, err)
	assert.Equal(t, unknownBody, wrongBody)
}

func TestRegisterPropagatesStoreError(t *testing.T) {
	users := newFakeUserRepository()
	users.insertErr = errors.New("store down")
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), registerInput())
	require.Error(t, err)

	// A store failure is not a domain error; it surfaces as a 500 at the
	// boundary, not a 4xx here.
	var httpErr *errs.HTTPError
	assert.False(t, errors.As(err, &httpErr))
}
