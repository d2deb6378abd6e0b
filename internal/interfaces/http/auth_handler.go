package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/trungnq-dev/coffee-manager-api/internal/application/auth"
	"github.com/trungnq-dev/coffee-manager-api/internal/application/dto"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain"
	"github.com/trungnq-dev/coffee-manager-api/pkg/logger"
)

// AuthHandler register and login. Login failures share one generic message so
// the endpoint cannot be used to enumerate accounts.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Register POST /api/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Thiếu thông tin bắt buộc"})
	}
	if err := h.uc.Register(c.Context(), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Thiếu thông tin bắt buộc"})
		case errors.Is(err, domain.ErrPasswordMismatch):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Mật khẩu không khớp"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email đã được sử dụng"})
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("register")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Lỗi server"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Đăng ký thành công!",
		"success": true,
	})
}

// Login POST /api/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Thiếu username/password"})
	}
	user, err := h.uc.Login(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Thiếu username/password"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Thông tin đăng nhập không đúng"})
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("login")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Lỗi server"})
	}
	return c.JSON(fiber.Map{
		"message": "Đăng nhập thành công!",
		"success": true,
		"user":    user,
	})
}
