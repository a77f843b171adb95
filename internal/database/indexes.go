package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureIndexes creates the unique name indexes the catalog relies on.
// Uniqueness is enforced here and surfaced as duplicate-key write failures;
// it is never pre-checked by the application.
func EnsureIndexes(ctx context.Context, svc *Service, logger *zap.Logger) error {
	uniqueName := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	for _, name := range []string{CollectionCategories, CollectionSubCategories, CollectionBrands} {
		if _, err := svc.Collection(name).Indexes().CreateOne(ctx, uniqueName); err != nil {
			return fmt.Errorf("failed to create unique name index on %s: %w", name, err)
		}
		logger.Info("Ensured unique name index", zap.String("collection", name))
	}

	// Non-unique lookup indexes for the reference fields the integrity
	// checks and populated reads query on.
	refIndexes := map[string]bson.D{
		CollectionSubCategories: {{Key: "category", Value: 1}},
		CollectionProducts:      {{Key: "category", Value: 1}},
	}
	for name, keys := range refIndexes {
		if _, err := svc.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys}); err != nil {
			return fmt.Errorf("failed to create reference index on %s: %w", name, err)
		}
	}

	return nil
}
