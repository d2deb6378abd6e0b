package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/trungnq-dev/coffee-manager-api/internal/application/dto"
	"github.com/trungnq-dev/coffee-manager-api/internal/application/report"
	"github.com/trungnq-dev/coffee-manager-api/internal/application/usecase"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain"
	"github.com/trungnq-dev/coffee-manager-api/pkg/logger"
)

// TransactionHandler HTTP layer for /api/transactions. Store failures return
// a generic message; the detail stays in the server log.
type TransactionHandler struct {
	uc       *usecase.TransactionUseCase
	reportUC *report.ReportUseCase
	log      *logger.Logger
}

// NewTransactionHandler builds the handler.
func NewTransactionHandler(uc *usecase.TransactionUseCase, reportUC *report.ReportUseCase, log *logger.Logger) *TransactionHandler {
	return &TransactionHandler{uc: uc, reportUC: reportUC, log: log}
}

// Create POST /api/transactions/add
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.TransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Thiếu thông tin bắt buộc"})
	}
	tx, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Thiếu thông tin bắt buộc"})
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("create transaction")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Lỗi khi lưu giao dịch"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Lưu giao dịch thành công!",
		"data":    tx,
	})
}

// List GET /api/transactions/all
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	transactions, err := h.uc.List(c.Context())
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("list transactions")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Lỗi khi lấy giao dịch"})
	}
	return c.JSON(fiber.Map{"success": true, "data": transactions})
}

// Delete DELETE /api/transactions/:id — a malformed id is 400, a well-formed
// id with no match is 404.
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	tx, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "ID không hợp lệ"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Không tìm thấy giao dịch"})
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("delete transaction")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Lỗi server khi xóa giao dịch"})
	}
	return c.JSON(fiber.Map{
		"message":            "Xóa giao dịch thành công!",
		"success":            true,
		"deletedTransaction": tx,
	})
}

// Report GET /api/transactions/report?from=YYYY-MM-DD&to=YYYY-MM-DD — PDF
// income/expense summary of the range.
func (h *TransactionHandler) Report(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")
	pdf, err := h.reportUC.TransactionPDF(c.Context(), from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Khoảng thời gian không hợp lệ"})
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("transaction report")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Lỗi server khi tạo báo cáo thu chi"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="thuchi_%s_%s.pdf"`, from, to))
	return c.Send(pdf)
}
