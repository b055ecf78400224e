package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bank-crm/internal/observability"
)

// MetricsHandler serves the in-memory counters.
type MetricsHandler struct {
	metrics *observability.Metrics
}

func NewMetricsHandler(metrics *observability.Metrics) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Show handles GET /metrics.
func (h *MetricsHandler) Show(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.metrics.Snapshot()})
}
