package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/trungnq-dev/coffee-manager-api/internal/application/dto"
	"github.com/trungnq-dev/coffee-manager-api/internal/application/usecase"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain"
	"github.com/trungnq-dev/coffee-manager-api/pkg/logger"
)

// EmployeeHandler HTTP layer for /api/employees. Duplicate email maps to 400,
// not 409, to keep the historical client contract.
type EmployeeHandler struct {
	uc  *usecase.EmployeeUseCase
	log *logger.Logger
}

// NewEmployeeHandler builds the handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, log *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, log: log}
}

// List GET /api/employees/all — bare array, newest first.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	employees, err := h.uc.List(c.Context())
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("list employees")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Lỗi server khi lấy danh sách nhân viên"})
	}
	return c.JSON(employees)
}

// Create POST /api/employees/add
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Thiếu thông tin bắt buộc"})
	}
	employee, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Thiếu thông tin bắt buộc"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email đã được sử dụng"})
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("create employee")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Lỗi server khi thêm nhân viên"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Thêm nhân viên thành công!",
		"success":  true,
		"employee": employee,
	})
}

// Update PUT /api/employees/update/:id
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Thiếu thông tin bắt buộc"})
	}
	employee, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Thiếu thông tin bắt buộc"})
		case errors.Is(err, domain.ErrInvalidID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "ID không hợp lệ"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Không tìm thấy nhân viên"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email đã được sử dụng"})
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("update employee")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Lỗi server khi cập nhật nhân viên"})
	}
	return c.JSON(fiber.Map{
		"message":  "Cập nhật nhân viên thành công!",
		"success":  true,
		"employee": employee,
	})
}

// Delete DELETE /api/employees/delete/:id
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	employee, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "ID không hợp lệ"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Không tìm thấy nhân viên"})
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("delete employee")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Lỗi server khi xóa nhân viên"})
	}
	return c.JSON(fiber.Map{
		"message":  "Xóa nhân viên thành công!",
		"success":  true,
		"employee": employee,
	})
}
