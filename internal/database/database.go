package database

import (
	"context"
	"fmt"
	"time"

	"catalog-api/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used by the catalog.
const (
	CollectionCategories    = "categories"
	CollectionSubCategories = "subcategories"
	CollectionBrands        = "brands"
	CollectionProducts      = "products"
)

// Service wraps the mongo client and the catalog database handle. It is
// constructed once at startup and passed down explicitly; there is no
// package-level singleton.
type Service struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, cfg config.MongoConfig) (*Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Service{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Collection returns a handle for the named collection.
func (s *Service) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Health reports connectivity status for the health endpoint.
func (s *Service) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return map[string]string{
			"status": "down",
			"error":  err.Error(),
		}
	}

	return map[string]string{"status": "up"}
}

// Close disconnects the client. Called once during graceful shutdown.
func (s *Service) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
