package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/storemate/backend/internal/errs"
	"github.com/storemate/backend/internal/model"
	"github.com/storemate/backend/internal/repository"
)

const (
	invalidProductID = "Invalid product ID"
	productNotFound  = "Product not found"
)

// AddProductInput is the validated, coerced product creation payload.
// Optional fields already carry their defaults.
type AddProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	ImageURL    string
}

// UpdateProductInput is an explicit partial patch: a nil field is absent
// and leaves the stored value untouched.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	Category    *string
	ImageURL    *string
}

// ProductService handles catalog CRUD.
type ProductService struct {
	products repository.ProductRepository
}

// NewProductService constructs a ProductService.
func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Add stores a new product and returns the generated id as a string.
func (s *ProductService) Add(ctx context.Context, input AddProductInput) (string, error) {
	product := &model.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
	}

	id, err := s.products.Insert(ctx, product)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// List returns every product in the catalog.
func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.products.FindAll(ctx)
}

// Update applies the supplied fields to the product with the given external
// id. An invalid id is rejected before the store is queried; an id that
// matches nothing is a not-found.
func (s *ProductService) Update(ctx context.Context, id string, input UpdateProductInput) error {
	oid, err := repository.ParseObjectID(id)
	if err != nil {
		return errs.NewBadRequestError(invalidProductID)
	}

	patch := buildPatch(input)
	if len(patch) == 0 {
		return errs.NewBadRequestError("No fields to update")
	}

	matched, err := s.products.UpdateByID(ctx, oid, patch)
	if err != nil {
		return err
	}
	if matched == 0 {
		return errs.NewNotFoundError(productNotFound)
	}
	return nil
}

// Delete removes the product with the given external id. Deleting an
// already-deleted id reports not-found, not success.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	oid, err := repository.ParseObjectID(id)
	if err != nil {
		return errs.NewBadRequestError(invalidProductID)
	}

	deleted, err := s.products.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return errs.NewNotFoundError(productNotFound)
	}
	return nil
}

// buildPatch maps present fields onto their bson keys.
func buildPatch(input UpdateProductInput) bson.M {
	patch := bson.M{}
	if input.Name != nil {
		patch["name"] = *input.Name
	}
	if input.Description != nil {
		patch["description"] = *input.Description
	}
	if input.Price != nil {
		patch["price"] = *input.Price
	}
	if input.Stock != nil {
		patch["stock"] = *input.Stock
	}
	if input.Category != nil {
		patch["category"] = *input.Category
	}
	if input.ImageURL != nil {
		patch["imageUrl"] = *input.ImageURL
	}
	return patch
}
