package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// StorePinger reports whether the document store is reachable.
type StorePinger func(c *fiber.Ctx) error

// OpsHandler liveness and diagnostics endpoints.
type OpsHandler struct {
	ping StorePinger
}

// NewOpsHandler builds the handler.
func NewOpsHandler(ping StorePinger) *OpsHandler {
	return &OpsHandler{ping: ping}
}

// Healthz GET /healthz — plain liveness probe.
func (h *OpsHandler) Healthz(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// Ping GET /api/ping
func (h *OpsHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

// Test GET /test — server plus store status.
func (h *OpsHandler) Test(c *fiber.Ctx) error {
	mongoState := "Connected"
	if err := h.ping(c); err != nil {
		mongoState = "Disconnected"
	}
	return c.JSON(fiber.Map{
		"message":   "Server hoạt động OK!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"mongodb":   mongoState,
	})
}
