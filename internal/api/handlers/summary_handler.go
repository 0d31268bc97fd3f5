package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/feedback-pulse/backend/internal/metrics"
	"github.com/feedback-pulse/backend/internal/summary"
	"github.com/feedback-pulse/backend/pkg/logger"
)

type SummaryHandler struct {
	service *summary.Service
}

func NewSummaryHandler(service *summary.Service) *SummaryHandler {
	return &SummaryHandler{
		service: service,
	}
}

// GetSummary serves the cached summary when fresh and computes one
// otherwise. Adapter trouble never fails this endpoint; it shows up as an
// error annotation on a degraded payload.
func (h *SummaryHandler) GetSummary(c *fiber.Ctx) error {
	start := time.Now()
	defer func() {
		metrics.RequestDuration.WithLabelValues("summary_get").Observe(time.Since(start).Seconds())
	}()

	result, err := h.service.Get(c.Context())
	if err != nil {
		logger.Error("Failed to get summary", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get summary",
		})
	}

	return c.JSON(result)
}

// RefreshSummary recomputes unconditionally, even seconds after the last
// refresh, and overwrites the cached entry.
func (h *SummaryHandler) RefreshSummary(c *fiber.Ctx) error {
	start := time.Now()
	defer func() {
		metrics.RequestDuration.WithLabelValues("summary_refresh").Observe(time.Since(start).Seconds())
	}()

	result, err := h.service.Refresh(c.Context())
	if err != nil {
		logger.Error("Failed to refresh summary", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to refresh summary",
		})
	}

	payload := fiber.Map{
		"summary":         result.Summary,
		"recommendations": result.Recommendations,
		"updated_at":      result.UpdatedAt,
		"status":          "refreshed",
	}
	if result.Error != "" {
		payload["error"] = result.Error
	}

	return c.JSON(payload)
}
