package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/trungnq-dev/coffee-manager-api/internal/application/dto"
	"github.com/trungnq-dev/coffee-manager-api/internal/application/usecase"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain"
	"github.com/trungnq-dev/coffee-manager-api/pkg/logger"
)

// ProductHandler HTTP layer for /api/products. Deleted (inactive) products
// are indistinguishable from absent ones.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler builds the handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

func productFail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": msg})
}

// productValidationError maps validation sentinels to their message, or
// returns false for everything else.
func productValidationError(c *fiber.Ctx, err error) (error, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return productFail(c, fiber.StatusBadRequest, "Thiếu thông tin bắt buộc (tên, giá, danh mục)"), true
	case errors.Is(err, domain.ErrPriceBelowMinimum):
		return productFail(c, fiber.StatusBadRequest, "Giá phải từ 1,000 VNĐ trở lên"), true
	case errors.Is(err, domain.ErrInvalidCategory):
		return productFail(c, fiber.StatusBadRequest, "Danh mục sản phẩm không hợp lệ"), true
	case errors.Is(err, domain.ErrDuplicate):
		return productFail(c, fiber.StatusBadRequest, "Sản phẩm với tên này đã tồn tại"), true
	}
	return nil, false
}

// List GET /api/products/all
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.List(c.Context())
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("list products")
		return productFail(c, fiber.StatusInternalServerError, "Lỗi server khi lấy danh sách sản phẩm")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
		"message": "Lấy danh sách sản phẩm thành công",
	})
}

// GetByID GET /api/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return productFail(c, fiber.StatusBadRequest, "ID không hợp lệ")
		case errors.Is(err, domain.ErrNotFound):
			return productFail(c, fiber.StatusNotFound, "Không tìm thấy sản phẩm")
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("get product")
		return productFail(c, fiber.StatusInternalServerError, "Lỗi server khi lấy thông tin sản phẩm")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    product,
		"message": "Lấy thông tin sản phẩm thành công",
	})
}

// ListByCategory GET /api/products/category/:category
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	category := c.Params("category")
	products, err := h.uc.ListByCategory(c.Context(), category)
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("list products by category")
		return productFail(c, fiber.StatusInternalServerError, "Lỗi server khi lấy sản phẩm theo danh mục")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
		"message": fmt.Sprintf("Lấy danh sách %s thành công", category),
	})
}

// Create POST /api/products/create
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return productFail(c, fiber.StatusBadRequest, "Thiếu thông tin bắt buộc (tên, giá, danh mục)")
	}
	product, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if resp, ok := productValidationError(c, err); ok {
			return resp
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("create product")
		return productFail(c, fiber.StatusInternalServerError, "Lỗi server khi thêm sản phẩm")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    product,
		"message": "Thêm sản phẩm thành công!",
	})
}

// Update PUT /api/products/update/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return productFail(c, fiber.StatusBadRequest, "Thiếu thông tin bắt buộc (tên, giá, danh mục)")
	}
	product, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if resp, ok := productValidationError(c, err); ok {
			return resp
		}
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return productFail(c, fiber.StatusBadRequest, "ID không hợp lệ")
		case errors.Is(err, domain.ErrNotFound):
			return productFail(c, fiber.StatusNotFound, "Không tìm thấy sản phẩm")
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("update product")
		return productFail(c, fiber.StatusInternalServerError, "Lỗi server khi cập nhật sản phẩm")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    product,
		"message": "Cập nhật sản phẩm thành công!",
	})
}

// Delete DELETE /api/products/delete/:id — soft delete.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	product, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return productFail(c, fiber.StatusBadRequest, "ID không hợp lệ")
		case errors.Is(err, domain.ErrNotFound):
			return productFail(c, fiber.StatusNotFound, "Không tìm thấy sản phẩm")
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("delete product")
		return productFail(c, fiber.StatusInternalServerError, "Lỗi server khi xóa sản phẩm")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Xóa sản phẩm thành công!",
		"data":    fiber.Map{"id": product.ID.Hex(), "name": product.Name},
	})
}
