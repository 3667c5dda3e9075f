package services

import (
	"context"
	"errors"
	"fmt"

	"recyclehub-server/internal/db"
	"recyclehub-server/internal/models"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserService struct {
	users  *mongo.Collection
	logger zerolog.Logger
}

func NewUserService(database *mongo.Database, logger zerolog.Logger) *UserService {
	return &UserService{
		users:  database.Collection(db.UsersCollection),
		logger: logger,
	}
}

// UpsertUser stores the submitted document under key email. Idempotent:
// re-running with the same document leaves one stored record. Only the fields
// present in doc are written, so fields owned by the partial updates (role,
// isVerified) survive a re-login that omits them.
func (s *UserService) UpsertUser(ctx context.Context, email string, doc bson.M) (models.UpdateResult, error) {
	doc["email"] = email

	filter := bson.M{"email": email}
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)

	result, err := s.users.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("Error upserting user")
		return models.UpdateResult{}, fmt.Errorf("upsert user: %w", err)
	}

	s.logger.Info().Str("email", email).Int64("matched", result.MatchedCount).Msg("User upserted")
	return models.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedID:    result.UpsertedID,
	}, nil
}

// SetRole updates only the role field. An unknown email matches zero
// documents; that is a silent success, not an error.
func (s *UserService) SetRole(ctx context.Context, email, role string) (models.UpdateResult, error) {
	filter := bson.M{"email": email}
	update := bson.M{"$set": bson.M{"role": role}}

	result, err := s.users.UpdateOne(ctx, filter, update)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("Error setting user role")
		return models.UpdateResult{}, fmt.Errorf("set role: %w", err)
	}

	return models.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

// SetVerified updates only the isVerified flag, with the same no-upsert
// semantics as SetRole.
func (s *UserService) SetVerified(ctx context.Context, email string, isVerified bool) (models.UpdateResult, error) {
	filter := bson.M{"email": email}
	update := bson.M{"$set": bson.M{"isVerified": isVerified}}

	result, err := s.users.UpdateOne(ctx, filter, update)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("Error setting verify status")
		return models.UpdateResult{}, fmt.Errorf("set verify status: %w", err)
	}

	return models.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

// GetByEmail returns nil for an unknown email; that is a valid outcome,
// not an error.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("Error looking up user")
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (s *UserService) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{"role": role})
	if err != nil {
		s.logger.Error().Err(err).Str("role", role).Msg("Error listing users by role")
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// DeleteUser removes the record under email. Deleting an unknown email is a
// no-op success with a zero deleted count.
func (s *UserService) DeleteUser(ctx context.Context, email string) (models.DeleteResult, error) {
	result, err := s.users.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("Error deleting user")
		return models.DeleteResult{}, fmt.Errorf("delete user: %w", err)
	}

	s.logger.Info().Str("email", email).Int64("deleted", result.DeletedCount).Msg("User delete processed")
	return models.DeleteResult{DeletedCount: result.DeletedCount}, nil
}
