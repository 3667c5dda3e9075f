package services

import (
	"context"
	"fmt"
	"time"

	"recyclehub-server/internal/db"
	"recyclehub-server/internal/models"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductService struct {
	products *mongo.Collection
	logger   zerolog.Logger
}

func NewProductService(database *mongo.Database, logger zerolog.Logger) *ProductService {
	return &ProductService{
		products: database.Collection(db.ProductsCollection),
		logger:   logger,
	}
}

// CreateProduct inserts the listing as-is. Seller and category references are
// not cross-checked against the identity or category stores.
func (s *ProductService) CreateProduct(ctx context.Context, product models.Product) (models.InsertResult, error) {
	if product.PostedAt.IsZero() {
		product.PostedAt = time.Now().UTC()
	}

	result, err := s.products.InsertOne(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("seller", product.SellerEmail).Msg("Error creating product")
		return models.InsertResult{}, fmt.Errorf("create product: %w", err)
	}

	s.logger.Info().Str("seller", product.SellerEmail).Str("category", product.Category).Msg("Product created")
	return models.InsertResult{InsertedID: result.InsertedID}, nil
}

func (s *ProductService) ListBySeller(ctx context.Context, email string) ([]models.Product, error) {
	return s.list(ctx, bson.M{"sellerEmail": email})
}

func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.list(ctx, bson.M{"category": category})
}

func (s *ProductService) ListAdvertised(ctx context.Context) ([]models.Product, error) {
	return s.list(ctx, bson.M{"isAdvertised": true})
}

// MarkAdvertised flips isAdvertised to true. There is no reverse operation.
func (s *ProductService) MarkAdvertised(ctx context.Context, id primitive.ObjectID) (models.UpdateResult, error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"isAdvertised": true}}

	result, err := s.products.UpdateOne(ctx, filter, update)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.Hex()).Msg("Error advertising product")
		return models.UpdateResult{}, fmt.Errorf("mark advertised: %w", err)
	}

	return models.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (s *ProductService) list(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := s.products.Find(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Interface("filter", filter).Msg("Error listing products")
		return nil, fmt.Errorf("list products: %w", err)
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}
