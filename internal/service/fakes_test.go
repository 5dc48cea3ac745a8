package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/storemate/backend/internal/model"
	"github.com/storemate/backend/internal/repository"
)

// fakeUserRepository is an in-memory UserRepository keyed by email.
type fakeUserRepository struct {
	users     map[string]*model.User
	insertErr error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*model.User{}}
}

func (f *fakeUserRepository) Insert(_ context.Context, user *model.User) (primitive.ObjectID, error) {
	if f.insertErr != nil {
		return primitive.NilObjectID, f.insertErr
	}
	id := primitive.NewObjectID()
	stored := *user
	stored.ID = id
	f.users[user.Email] = &stored
	return id, nil
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// fakeProductRepository is an in-memory ProductRepository that also records
// whether it was touched, so tests can prove invalid ids never reach the
// store.
type fakeProductRepository struct {
	products map[primitive.ObjectID]*model.Product
	queried  bool
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: map[primitive.ObjectID]*model.Product{}}
}

func (f *fakeProductRepository) Insert(_ context.Context, product *model.Product) (primitive.ObjectID, error) {
	f.queried = true
	id := primitive.NewObjectID()
	stored := *product
	stored.ID = id
	f.products[id] = &stored
	return id, nil
}

func (f *fakeProductRepository) FindAll(_ context.Context) ([]model.Product, error) {
	f.queried = true
	all := []model.Product{}
	for _, p := range f.products {
		all = append(all, *p)
	}
	return all, nil
}

func (f *fakeProductRepository) UpdateByID(_ context.Context, id primitive.ObjectID, patch bson.M) (int64, error) {
	f.queried = true
	product, ok := f.products[id]
	if !ok {
		return 0, nil
	}

	for key, value := range patch {
		switch key {
		case "name":
			product.Name = value.(string)
		case "description":
			product.Description = value.(string)
		case "price":
			product.Price = value.(float64)
		case "stock":
			product.Stock = value.(int)
		case "category":
			product.Category = value.(string)
		case "imageUrl":
			product.ImageURL = value.(string)
		}
	}
	return 1, nil
}

func (f *fakeProductRepository) DeleteByID(_ context.Context, id primitive.ObjectID) (int64, error) {
	f.queried = true
	if _, ok := f.products[id]; !ok {
		return 0, nil
	}
	delete(f.products, id)
	return 1, nil
}
