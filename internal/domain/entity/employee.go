package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is a staff member. Email is unique across the collection.
type Employee struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	HoTen       string             `json:"hoTen" bson:"hoTen"`
	Email       string             `json:"email" bson:"email"`
	SoDienThoai string             `json:"soDienThoai" bson:"soDienThoai"`
	ChucVu      string             `json:"chucVu" bson:"chucVu"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
