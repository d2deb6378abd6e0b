package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Valid product categories.
const (
	CategoryCoffee  = "coffee"
	CategoryCacao   = "cacao"
	CategorySpecial = "special"
	CategoryTea     = "tea"
)

// MinProductPrice is the smallest accepted price (VND).
const MinProductPrice = 1000

// DefaultProductImage is used when a product is created without an image URL.
const DefaultProductImage = "https://via.placeholder.com/300x200?text=No+Image"

// Product is a menu item. Deletion is soft: IsActive flips to false and the
// product becomes invisible to every read.
type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Price       int                `json:"price" bson:"price"`
	Category    string             `json:"category" bson:"category"`
	Image       string             `json:"image" bson:"image"`
	Description string             `json:"description" bson:"description"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ValidCategory reports whether c belongs to the closed category set.
func ValidCategory(c string) bool {
	switch c {
	case CategoryCoffee, CategoryCacao, CategorySpecial, CategoryTea:
		return true
	}
	return false
}
