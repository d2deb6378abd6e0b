package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/trungnq-dev/coffee-manager-api/internal/application/dto"
	"github.com/trungnq-dev/coffee-manager-api/internal/application/usecase"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain"
	"github.com/trungnq-dev/coffee-manager-api/pkg/logger"
)

// CustomerHandler HTTP layer for /api/customers.
type CustomerHandler struct {
	uc  *usecase.CustomerUseCase
	log *logger.Logger
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

// List GET /api/customers/all — bare array, newest first.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.uc.List(c.Context())
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("list customers")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Lỗi server khi lấy danh sách khách hàng"})
	}
	return c.JSON(customers)
}

// Create POST /api/customers/add
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Thiếu thông tin bắt buộc"})
	}
	customer, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Thiếu thông tin bắt buộc"})
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("create customer")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Lỗi server khi thêm khách hàng"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Thêm khách hàng thành công!",
		"success":  true,
		"customer": customer,
	})
}

// Update PUT /api/customers/update/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Thiếu thông tin bắt buộc"})
	}
	customer, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Thiếu thông tin bắt buộc"})
		case errors.Is(err, domain.ErrInvalidID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "ID không hợp lệ"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Không tìm thấy khách hàng"})
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("update customer")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Lỗi server khi cập nhật khách hàng"})
	}
	return c.JSON(fiber.Map{
		"message":  "Cập nhật khách hàng thành công!",
		"success":  true,
		"customer": customer,
	})
}

// Delete DELETE /api/customers/delete/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	customer, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "ID không hợp lệ"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Không tìm thấy khách hàng"})
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("delete customer")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Lỗi server khi xóa khách hàng"})
	}
	return c.JSON(fiber.Map{
		"message":  "Xóa khách hàng thành công!",
		"success":  true,
		"customer": customer,
	})
}
