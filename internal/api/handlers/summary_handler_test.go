package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedback-pulse/backend/internal/feedback"
	"github.com/feedback-pulse/backend/internal/storage/models"
	"github.com/feedback-pulse/backend/internal/summarizer"
	"github.com/feedback-pulse/backend/internal/summary"
)

type memoryCache struct {
	data map[string][]byte
}

func (m *memoryCache) Get(_ context.Context, key string, out interface{}) (bool, error) {
	data, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, out)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = data
	return nil
}

type staticReader struct {
	records []models.FeedbackRecord
}

func (r *staticReader) ListFeedback(_ feedback.FilterSet, _ int) ([]models.FeedbackRecord, error) {
	return r.records, nil
}

type stubSummarizer struct {
	result *summarizer.Result
	err    error
}

func (s *stubSummarizer) Summarize(_ context.Context, _ []models.FeedbackRecord) (*summarizer.Result, error) {
	return s.result, s.err
}

func newSummaryApp(s summary.Summarizer, records []models.FeedbackRecord) *fiber.App {
	service := summary.NewService(
		&memoryCache{data: make(map[string][]byte)},
		&staticReader{records: records},
		s,
		summary.Config{TTL: time.Hour, WindowSize: 50, CacheKey: "summary:latest"},
	)

	handler := NewSummaryHandler(service)

	app := fiber.New()
	app.Get("/api/v1/summary", handler.GetSummary)
	app.Post("/api/v1/summary/refresh", handler.RefreshSummary)
	return app
}

func TestGetSummarySuccess(t *testing.T) {
	app := newSummaryApp(&stubSummarizer{result: &summarizer.Result{
		Summary:         "Feedback trends negative on pricing.",
		Recommendations: []string{"Review pricing page"},
	}}, []models.FeedbackRecord{{Message: "too expensive", Urgency: "high", Theme: "pricing", Value: "retention", Sentiment: "negative"}})

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/summary", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "Feedback trends negative on pricing.", body["summary"])
	assert.NotEmpty(t, body["updated_at"])
	_, hasError := body["error"]
	assert.False(t, hasError, "healthy summary carries no error field")
}

func TestGetSummaryDegradedCarriesErrorField(t *testing.T) {
	app := newSummaryApp(
		&stubSummarizer{err: errors.New("model unavailable")},
		[]models.FeedbackRecord{{Message: "anything", Urgency: "low", Theme: "other", Value: "advocacy", Sentiment: "mixed"}},
	)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/summary", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode, "adapter failure never fails the request")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, summary.FallbackSummary, body["summary"])
	assert.Contains(t, body["error"], "model unavailable")
	assert.Len(t, body["recommendations"], 3)
}

func TestRefreshSummaryStatusMarker(t *testing.T) {
	app := newSummaryApp(&stubSummarizer{result: &summarizer.Result{
		Summary:         "All quiet.",
		Recommendations: []string{"Keep monitoring"},
	}}, []models.FeedbackRecord{{Message: "fine", Urgency: "low", Theme: "product", Value: "retention", Sentiment: "positive"}})

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/summary/refresh", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "refreshed", body["status"])
	assert.Equal(t, "All quiet.", body["summary"])
}
