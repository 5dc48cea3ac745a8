package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/storemate/backend/internal/config"
	"github.com/storemate/backend/internal/model"
	"github.com/storemate/backend/internal/password"
	"github.com/storemate/backend/internal/repository"
	"github.com/storemate/backend/internal/server"
	"github.com/storemate/backend/internal/service"
)

// In-memory repositories so handler tests run the real validation, service,
// and shaping pipeline without a store.

type memUserRepo struct {
	users map[string]*model.User
}

func (m *memUserRepo) Insert(_ context.Context, user *model.User) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *user
	stored.ID = id
	m.users[user.Email] = &stored
	return id, nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

type memProductRepo struct {
	products map[primitive.ObjectID]*model.Product
	queried  bool
}

func (m *memProductRepo) Insert(_ context.Context, product *model.Product) (primitive.ObjectID, error) {
	m.queried = true
	id := primitive.NewObjectID()
	stored := *product
	stored.ID = id
	m.products[id] = &stored
	return id, nil
}

func (m *memProductRepo) FindAll(_ context.Context) ([]model.Product, error) {
	m.queried = true
	all := []model.Product{}
	for _, p := range m.products {
		all = append(all, *p)
	}
	return all, nil
}

func (m *memProductRepo) UpdateByID(_ context.Context, id primitive.ObjectID, patch bson.M) (int64, error) {
	m.queried = true
	if _, ok := m.products[id]; !ok {
		return 0, nil
	}
	return 1, nil
}

func (m *memProductRepo) DeleteByID(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.queried = true
	if _, ok := m.products[id]; !ok {
		return 0, nil
	}
	delete(m.products, id)
	return 1, nil
}

type testEnv struct {
	handlers *Handlers
	users    *memUserRepo
	products *memProductRepo
}

func newTestEnv() *testEnv {
	logger := zerolog.Nop()
	srv := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Auth:    &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		},
		Logger: &logger,
	}

	users := &memUserRepo{users: map[string]*model.User{}}
	products := &memProductRepo{products: map[primitive.ObjectID]*model.Product{}}

	hasher := password.NewHasher(srv.Config.Auth.BcryptCost)
	services := &service.Services{
		Auth:    service.NewAuthService(users, hasher),
		Product: service.NewProductService(products),
	}

	return &testEnv{
		handlers: NewHandlers(srv, services),
		users:    users,
		products: products,
	}
}

// do runs an echo.HandlerFunc against a synthetic request and returns the
// recorder plus the handler error (errors are normally shaped by the global
// error handler; here tests inspect them directly).
func do(method, target, body string, fn echo.HandlerFunc, params ...string) (*httptest.ResponseRecorder, error) {
	e := echo.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}

	return rec, fn(c)
}
