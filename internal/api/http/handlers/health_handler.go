package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	ready       func() bool
}

// NewHealthHandler returns a new handler instance. ready reports whether the
// signing configuration is in place; nil means always ready.
func NewHealthHandler(serviceName, version string, ready func() bool) *HealthHandler {
	if ready == nil {
		ready = func() bool { return true }
	}
	return &HealthHandler{serviceName: serviceName, version: version, ready: ready}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports whether the service can issue and verify tokens.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if h.ready() {
		return c.JSON(fiber.Map{"status": "ready"})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "NOT_READY",
			"message": "signing configuration unavailable",
		},
	})
}
