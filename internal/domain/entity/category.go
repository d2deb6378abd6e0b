package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a product grouping identified by a unique code (maDanhMuc).
type Category struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	MaDanhMuc  string             `json:"maDanhMuc" bson:"maDanhMuc"`
	TenDanhMuc string             `json:"tenDanhMuc" bson:"tenDanhMuc"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}
