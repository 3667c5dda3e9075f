package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UsersCollection      = "users"
	CategoriesCollection = "categories"
	ProductsCollection   = "products"
	BookingsCollection   = "bookings"
)

// Connect establishes and verifies the store connection. Callers own the
// returned client and must Disconnect it on shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("MONGO_URI is not set")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the unique email index backing the one-record-per-email
// invariant of the users collection.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}
	return nil
}

var defaultCategories = []interface{}{
	bson.M{"name": "plastic", "image": "/assets/categories/plastic.png", "description": "Bottles, containers and other reusable plastics"},
	bson.M{"name": "paper", "image": "/assets/categories/paper.png", "description": "Books, cardboard and paper goods"},
	bson.M{"name": "metal", "image": "/assets/categories/metal.png", "description": "Scrap metal, tools and hardware"},
	bson.M{"name": "glass", "image": "/assets/categories/glass.png", "description": "Jars, bottles and glassware"},
	bson.M{"name": "electronics", "image": "/assets/categories/electronics.png", "description": "Working or repairable electronics"},
	bson.M{"name": "furniture", "image": "/assets/categories/furniture.png", "description": "Second-hand furniture"},
}

// SeedCategories populates the read-only category catalog on a fresh
// deployment. Existing catalogs are left untouched.
func SeedCategories(ctx context.Context, database *mongo.Database) error {
	coll := database.Collection(CategoriesCollection)

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	if _, err := coll.InsertMany(ctx, defaultCategories); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	return nil
}
