package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/trungnq-dev/coffee-manager-api/internal/application/dto"
	"github.com/trungnq-dev/coffee-manager-api/internal/application/usecase"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain"
	"github.com/trungnq-dev/coffee-manager-api/pkg/logger"
)

// CategoryHandler HTTP layer for /api/categories.
type CategoryHandler struct {
	uc  *usecase.CategoryUseCase
	log *logger.Logger
}

// NewCategoryHandler builds the handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, log: log}
}

func categoryFail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": msg})
}

// List GET /api/categories/all
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.uc.List(c.Context())
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("list categories")
		return categoryFail(c, fiber.StatusInternalServerError, "Lỗi server khi lấy danh mục")
	}
	return c.JSON(fiber.Map{"success": true, "data": categories, "count": len(categories)})
}

// GetByID GET /api/categories/:id
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	category, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return categoryFail(c, fiber.StatusBadRequest, "ID không hợp lệ")
		case errors.Is(err, domain.ErrNotFound):
			return categoryFail(c, fiber.StatusNotFound, "Không tìm thấy danh mục")
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("get category")
		return categoryFail(c, fiber.StatusInternalServerError, "Lỗi server khi lấy danh mục")
	}
	return c.JSON(fiber.Map{"success": true, "data": category})
}

// Create POST /api/categories/add
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return categoryFail(c, fiber.StatusBadRequest, "Vui lòng nhập đầy đủ mã danh mục và tên danh mục")
	}
	category, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return categoryFail(c, fiber.StatusBadRequest, "Vui lòng nhập đầy đủ mã danh mục và tên danh mục")
		case errors.Is(err, domain.ErrDuplicate):
			return categoryFail(c, fiber.StatusBadRequest, "Mã danh mục đã tồn tại")
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("create category")
		return categoryFail(c, fiber.StatusInternalServerError, "Lỗi server khi thêm danh mục")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Thêm danh mục thành công",
		"data":    category,
	})
}

// Update PUT /api/categories/update/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return categoryFail(c, fiber.StatusBadRequest, "Vui lòng nhập đầy đủ mã danh mục và tên danh mục")
	}
	category, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return categoryFail(c, fiber.StatusBadRequest, "Vui lòng nhập đầy đủ mã danh mục và tên danh mục")
		case errors.Is(err, domain.ErrInvalidID):
			return categoryFail(c, fiber.StatusBadRequest, "ID không hợp lệ")
		case errors.Is(err, domain.ErrNotFound):
			return categoryFail(c, fiber.StatusNotFound, "Không tìm thấy danh mục để cập nhật")
		case errors.Is(err, domain.ErrDuplicate):
			return categoryFail(c, fiber.StatusBadRequest, "Mã danh mục đã tồn tại")
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("update category")
		return categoryFail(c, fiber.StatusInternalServerError, "Lỗi server khi cập nhật danh mục")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Cập nhật danh mục thành công",
		"data":    category,
	})
}

// Delete DELETE /api/categories/delete/:id
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	category, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return categoryFail(c, fiber.StatusBadRequest, "ID không hợp lệ")
		case errors.Is(err, domain.ErrNotFound):
			return categoryFail(c, fiber.StatusNotFound, "Không tìm thấy danh mục để xóa")
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("delete category")
		return categoryFail(c, fiber.StatusInternalServerError, "Lỗi server khi xóa danh mục")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Xóa danh mục thành công",
		"data":    category,
	})
}

// Search GET /api/categories/search/:keyword
func (h *CategoryHandler) Search(c *fiber.Ctx) error {
	categories, err := h.uc.Search(c.Context(), c.Params("keyword"))
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("search categories")
		return categoryFail(c, fiber.StatusInternalServerError, "Lỗi server khi tìm kiếm danh mục")
	}
	return c.JSON(fiber.Map{"success": true, "data": categories, "count": len(categories)})
}
