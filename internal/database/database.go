// Package database establishes the connection to MongoDB.
//
// It owns the driver client (which pools connections internally), exposes
// the named collections the application uses, and verifies connectivity
// with a bounded ping before the server starts accepting requests.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/storemate/backend/internal/config"
)

// Collection names. Two independent collections, store-generated ids.
const (
	UsersCollection    = "users"
	ProductsCollection = "products"
)

// Database wraps the Mongo client and the application database handle.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
	log    *zerolog.Logger
}

// New connects to MongoDB and pings it. Connection pooling is handled by
// the driver; handlers never manage connections themselves.
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	timeout := time.Duration(cfg.Database.ConnectTimeout) * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Database.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info().Str("database", cfg.Database.Name).Msg("connected to mongodb")

	return &Database{
		Client: client,
		DB:     client.Database(cfg.Database.Name),
		log:    logger,
	}, nil
}

// Users returns the users collection.
func (d *Database) Users() *mongo.Collection {
	return d.DB.Collection(UsersCollection)
}

// Products returns the products collection.
func (d *Database) Products() *mongo.Collection {
	return d.DB.Collection(ProductsCollection)
}

// Ping verifies connectivity, used by the health endpoint.
func (d *Database) Ping(ctx context.Context) error {
	return d.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (d *Database) Close(ctx context.Context) error {
	d.log.Info().Msg("closing mongodb connection")
	return d.Client.Disconnect(ctx)
}
