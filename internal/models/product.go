package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product references its seller and category by value, not by enforced
// foreign key; dangling references read back as empty result sets.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SellerEmail   string             `bson:"sellerEmail" json:"sellerEmail"`
	SellerName    string             `bson:"sellerName,omitempty" json:"sellerName,omitempty"`
	Category      string             `bson:"category" json:"category"`
	Name          string             `bson:"name" json:"name"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Condition     string             `bson:"condition,omitempty" json:"condition,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	YearsUsed     int                `bson:"yearsUsed,omitempty" json:"yearsUsed,omitempty"`
	PostedAt      time.Time          `bson:"postedAt,omitempty" json:"postedAt,omitempty"`
	IsAdvertised  bool               `bson:"isAdvertised" json:"isAdvertised"`
}

type CreateProductRequest struct {
	SellerEmail   string  `json:"sellerEmail" validate:"required,email"`
	SellerName    string  `json:"sellerName,omitempty"`
	Category      string  `json:"category" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Price         float64 `json:"price" validate:"gte=0"`
	OriginalPrice float64 `json:"originalPrice,omitempty" validate:"omitempty,gte=0"`
	Condition     string  `json:"condition,omitempty" validate:"omitempty,oneof=excellent good fair"`
	Description   string  `json:"description,omitempty"`
	Location      string  `json:"location,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	Image         string  `json:"image,omitempty" validate:"omitempty,url"`
	YearsUsed     int     `json:"yearsUsed,omitempty" validate:"omitempty,gte=0"`
}
