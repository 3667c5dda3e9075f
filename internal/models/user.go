package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Role       string             `bson:"role,omitempty" json:"role,omitempty"`
	IsVerified bool               `bson:"isVerified" json:"isVerified"`
	PhotoURL   string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Address    string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
}

type UserRole string

const (
	RoleBuyer  UserRole = "buyer"
	RoleSeller UserRole = "seller"
	RoleAdmin  UserRole = "admin"
)

// UpsertUserRequest carries only the fields the client sent; IsVerified is a
// pointer so an absent flag is distinguishable from an explicit false and the
// upsert never overwrites state owned by the verify-status update.
type UpsertUserRequest struct {
	Email      string `json:"email" validate:"omitempty,email"`
	Name       string `json:"name,omitempty"`
	Role       string `json:"role,omitempty" validate:"omitempty,oneof=buyer seller admin"`
	IsVerified *bool  `json:"isVerified,omitempty"`
	PhotoURL   string `json:"photoURL,omitempty" validate:"omitempty,url"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

type SetRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=buyer seller admin"`
}

type SetVerifiedRequest struct {
	IsVerified *bool `json:"isVerified" validate:"required"`
}

type UpsertUserResponse struct {
	Result UpdateResult `json:"result"`
	Token  string       `json:"token"`
}
