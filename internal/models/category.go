package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category is reference data: read-only via the API, seeded at startup.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}
