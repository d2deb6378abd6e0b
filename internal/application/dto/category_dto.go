package dto

// CategoryRequest body for POST /api/categories/add and PUT /api/categories/update/:id.
type CategoryRequest struct {
	MaDanhMuc  string `json:"maDanhMuc"`
	TenDanhMuc string `json:"tenDanhMuc"`
}
