package dto

// CustomerRequest body for POST /api/customers/add and PUT /api/customers/update/:id.
type CustomerRequest struct {
	Ten    string `json:"ten"`
	Sdt    string `json:"sdt"`
	Email  string `json:"email"`
	DiaChi string `json:"diaChi"`
}
