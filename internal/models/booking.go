package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking snapshots the product details at purchase-intent time and is
// immutable after insert.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BuyerEmail      string             `bson:"buyerEmail" json:"buyerEmail"`
	BuyerName       string             `bson:"buyerName,omitempty" json:"buyerName,omitempty"`
	ProductID       string             `bson:"productID,omitempty" json:"productID,omitempty"`
	ProductName     string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	MeetingLocation string             `bson:"meetingLocation,omitempty" json:"meetingLocation,omitempty"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	BookedAt        time.Time          `bson:"bookedAt,omitempty" json:"bookedAt,omitempty"`
}

type CreateBookingRequest struct {
	BuyerEmail      string  `json:"buyerEmail" validate:"required,email"`
	BuyerName       string  `json:"buyerName,omitempty"`
	ProductID       string  `json:"productID,omitempty"`
	ProductName     string  `json:"productName" validate:"required"`
	Price           float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	MeetingLocation string  `json:"meetingLocation,omitempty"`
	Phone           string  `json:"phone,omitempty"`
}
