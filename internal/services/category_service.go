package services

import (
	"context"
	"fmt"

	"recyclehub-server/internal/db"
	"recyclehub-server/internal/models"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryService struct {
	categories *mongo.Collection
	logger     zerolog.Logger
}

func NewCategoryService(database *mongo.Database, logger zerolog.Logger) *CategoryService {
	return &CategoryService{
		categories: database.Collection(db.CategoriesCollection),
		logger:     logger,
	}
}

// ListCategories returns the full catalog, unordered. No writes are exposed;
// the catalog is seeded at startup.
func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.categories.Find(ctx, bson.M{})
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing categories")
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}
