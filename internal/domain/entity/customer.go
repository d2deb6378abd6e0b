package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is a shop customer. No field is unique.
type Customer struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Ten       string             `json:"ten" bson:"ten"`
	Sdt       string             `json:"sdt" bson:"sdt"`
	Email     string             `json:"email" bson:"email"`
	DiaChi    string             `json:"diaChi" bson:"diaChi"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
