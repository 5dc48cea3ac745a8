package repository

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storemate/backend/internal/model"
)

// MongoProductRepository implements ProductRepository on a mongo collection.
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository wraps the given collection.
func NewMongoProductRepository(collection *mongo.Collection) *MongoProductRepository {
	return &MongoProductRepository{collection: collection}
}

// Insert stores the product and returns the store-generated id.
func (r *MongoProductRepository) Insert(ctx context.Context, product *model.Product) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert product: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("insert product: unexpected inserted id type")
	}
	return id, nil
}

// FindAll returns every product. Order is not guaranteed; an empty
// collection yields an empty slice, not nil.
func (r *MongoProductRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []model.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// UpdateByID applies patch as a $set to the product with the given id and
// returns the matched count. A zero count is not an error here.
func (r *MongoProductRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, patch bson.M) (int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patch})
	if err != nil {
		return 0, fmt.Errorf("update product: %w", err)
	}
	return result.MatchedCount, nil
}

// DeleteByID removes the product with the given id and returns the deleted
// count.
func (r *MongoProductRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete product: %w", err)
	}
	return result.DeletedCount, nil
}
