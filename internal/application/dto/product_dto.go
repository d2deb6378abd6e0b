package dto

// ProductRequest body for POST /api/products/create and PUT /api/products/update/:id.
// Image and Description are optional; the use case applies defaults.
type ProductRequest struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
}
