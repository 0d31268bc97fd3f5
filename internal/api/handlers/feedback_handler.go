package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/feedback-pulse/backend/internal/feedback"
	"github.com/feedback-pulse/backend/internal/insights"
	"github.com/feedback-pulse/backend/internal/metrics"
	"github.com/feedback-pulse/backend/internal/storage/sqlite"
	"github.com/feedback-pulse/backend/pkg/logger"
)

type FeedbackHandler struct {
	store      *sqlite.Client
	windowSize int
}

func NewFeedbackHandler(store *sqlite.Client, windowSize int) *FeedbackHandler {
	return &FeedbackHandler{
		store:      store,
		windowSize: windowSize,
	}
}

// ListFeedback serves the filtered read. Filter values are sanitized
// fail-open and the limit is clamped, so bad input selects a default slice
// instead of erroring.
func (h *FeedbackHandler) ListFeedback(c *fiber.Ctx) error {
	metrics.FeedbackListRequests.Inc()

	filters := feedback.NewFilterSet()
	for _, attribute := range feedback.Attributes {
		filters.Set(attribute, c.Query(attribute))
	}
	limit := feedback.ClampLimit(c.Query("limit"))

	records, err := h.store.ListFeedback(filters, limit)
	if err != nil {
		logger.Error("Failed to list feedback", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list feedback",
		})
	}

	return c.JSON(fiber.Map{
		"feedback": records,
		"count":    len(records),
	})
}

func (h *FeedbackHandler) CreateFeedback(c *fiber.Ctx) error {
	var req struct {
		Submitter string `json:"submitter"`
		Channel   string `json:"channel"`
		Urgency   string `json:"urgency"`
		Theme     string `json:"theme"`
		Value     string `json:"value"`
		Sentiment string `json:"sentiment"`
		Message   string `json:"message"`
	}

	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	sub, err := feedback.NewSubmission(req.Submitter, req.Channel, req.Urgency, req.Theme, req.Value, req.Sentiment, req.Message)
	if err != nil {
		if errors.Is(err, feedback.ErrEmptyMessage) {
			metrics.FeedbackSubmissions.WithLabelValues("rejected").Inc()
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Message is required",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid submission",
		})
	}

	record, err := h.store.InsertFeedback(sub)
	if err != nil {
		metrics.FeedbackSubmissions.WithLabelValues("failed").Inc()
		logger.Error("Failed to store feedback", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store feedback",
		})
	}

	metrics.FeedbackSubmissions.WithLabelValues("accepted").Inc()
	return c.Status(fiber.StatusCreated).JSON(record)
}

// GetStats aggregates the same recent window the summary uses: counts per
// categorical attribute plus top keyword terms.
func (h *FeedbackHandler) GetStats(c *fiber.Ctx) error {
	records, err := h.store.ListFeedback(feedback.NewFilterSet(), h.windowSize)
	if err != nil {
		logger.Error("Failed to read stats window", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute stats",
		})
	}

	return c.JSON(insights.Build(records))
}
