package dto

// EmployeeRequest body for POST /api/employees/add and PUT /api/employees/update/:id.
type EmployeeRequest struct {
	HoTen       string `json:"hoTen"`
	Email       string `json:"email"`
	SoDienThoai string `json:"soDienThoai"`
	ChucVu      string `json:"chucVu"`
}
