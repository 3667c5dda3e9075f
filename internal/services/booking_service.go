package services

import (
	"context"
	"fmt"
	"time"

	"recyclehub-server/internal/db"
	"recyclehub-server/internal/models"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingService struct {
	bookings *mongo.Collection
	logger   zerolog.Logger
}

func NewBookingService(database *mongo.Database, logger zerolog.Logger) *BookingService {
	return &BookingService{
		bookings: database.Collection(db.BookingsCollection),
		logger:   logger,
	}
}

// CreateBooking inserts the booking as-is; it may reference a product or
// buyer that no longer exists.
func (s *BookingService) CreateBooking(ctx context.Context, booking models.Booking) (models.InsertResult, error) {
	if booking.BookedAt.IsZero() {
		booking.BookedAt = time.Now().UTC()
	}

	result, err := s.bookings.InsertOne(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Str("buyer", booking.BuyerEmail).Msg("Error creating booking")
		return models.InsertResult{}, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info().Str("buyer", booking.BuyerEmail).Str("product", booking.ProductName).Msg("Booking created")
	return models.InsertResult{InsertedID: result.InsertedID}, nil
}

func (s *BookingService) ListByBuyer(ctx context.Context, email string) ([]models.Booking, error) {
	cursor, err := s.bookings.Find(ctx, bson.M{"buyerEmail": email})
	if err != nil {
		s.logger.Error().Err(err).Str("buyer", email).Msg("Error listing bookings")
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}
