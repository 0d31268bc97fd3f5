package summary

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feedback-pulse/backend/internal/feedback"
	"github.com/feedback-pulse/backend/internal/metrics"
	"github.com/feedback-pulse/backend/internal/storage/models"
	"github.com/feedback-pulse/backend/internal/summarizer"
	"github.com/feedback-pulse/backend/pkg/logger"
)

// CachedSummary is the single derived artifact this service maintains. It
// is a point-in-time aggregate over the recent feedback window and holds no
// reference to the records it was computed from. Error is set only on a
// degraded result.
type CachedSummary struct {
	Summary         string    `json:"summary"`
	Recommendations []string  `json:"recommendations"`
	UpdatedAt       time.Time `json:"updated_at"`
	Error           string    `json:"error,omitempty"`
}

type Cache interface {
	Get(ctx context.Context, key string, out interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type FeedbackReader interface {
	ListFeedback(filters feedback.FilterSet, limit int) ([]models.FeedbackRecord, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, records []models.FeedbackRecord) (*summarizer.Result, error)
}

type Config struct {
	TTL        time.Duration
	WindowSize int
	CacheKey   string
}

// Service implements cache-aside over one fixed cache key: serve the entry
// if Redis still holds it, otherwise recompute from the recent feedback
// window and write back with the TTL. Concurrent misses may both recompute;
// last writer wins and both observe a fresh entry afterwards.
type Service struct {
	cache      Cache
	store      FeedbackReader
	summarizer Summarizer
	cfg        Config
	now        func() time.Time
}

func NewService(cache Cache, store FeedbackReader, s Summarizer, cfg Config) *Service {
	if cfg.TTL == 0 {
		cfg.TTL = time.Hour
	}
	if cfg.WindowSize == 0 {
		cfg.WindowSize = 50
	}
	if cfg.CacheKey == "" {
		cfg.CacheKey = "summary:latest"
	}

	return &Service{
		cache:      cache,
		store:      store,
		summarizer: s,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Get returns a summary at most TTL stale: the cached entry when present,
// otherwise a freshly computed one.
func (s *Service) Get(ctx context.Context) (*CachedSummary, error) {
	var cached CachedSummary
	hit, err := s.cache.Get(ctx, s.cfg.CacheKey, &cached)
	if err != nil {
		return nil, err
	}
	if hit {
		metrics.SummaryCacheHits.Inc()
		return &cached, nil
	}

	metrics.SummaryCacheMisses.Inc()
	return s.Refresh(ctx)
}

// Refresh recomputes unconditionally and overwrites the cache, even when a
// fresh entry exists. The on-demand refresh endpoint depends on exactly
// that behavior.
func (s *Service) Refresh(ctx context.Context) (*CachedSummary, error) {
	generationID := uuid.New().String()

	result, err := s.compute(ctx, generationID)
	if err != nil {
		return nil, err
	}

	// A degraded result is cached with the normal TTL as well, so a
	// failing adapter is retried at most once per TTL window.
	if err := s.cache.Set(ctx, s.cfg.CacheKey, result, s.cfg.TTL); err != nil {
		return nil, err
	}

	logger.Info("Summary refreshed",
		zap.String("generation_id", generationID),
		zap.Bool("degraded", result.Error != ""),
		zap.Duration("ttl", s.cfg.TTL),
	)

	return result, nil
}

func (s *Service) compute(ctx context.Context, generationID string) (*CachedSummary, error) {
	// Internal aggregate read: empty filters, window size past the
	// interactive 25 cap.
	records, err := s.store.ListFeedback(feedback.NewFilterSet(), s.cfg.WindowSize)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		logger.Debug("Summary window empty, serving fallback", zap.String("generation_id", generationID))
		return s.fallback(""), nil
	}

	result, err := s.summarizer.Summarize(ctx, records)
	if err != nil {
		metrics.SummarizerFailures.Inc()
		logger.Warn("Summarizer failed, serving degraded summary",
			zap.String("generation_id", generationID),
			zap.Error(err),
		)
		return s.fallback("summary generation failed: " + err.Error()), nil
	}

	return s.repair(result), nil
}

// repair accepts a partially well-formed adapter result per field: a usable
// summary with missing recommendations keeps the summary and takes the
// canned recommendations, and vice versa.
func (s *Service) repair(result *summarizer.Result) *CachedSummary {
	out := &CachedSummary{
		Summary:         result.Summary,
		Recommendations: result.Recommendations,
		UpdatedAt:       s.now().UTC(),
	}

	if out.Summary == "" {
		out.Summary = FallbackSummary
	}
	if len(out.Recommendations) == 0 {
		out.Recommendations = FallbackRecommendations()
	}

	return out
}

func (s *Service) fallback(errAnnotation string) *CachedSummary {
	return &CachedSummary{
		Summary:         FallbackSummary,
		Recommendations: FallbackRecommendations(),
		UpdatedAt:       s.now().UTC(),
		Error:           errAnnotation,
	}
}
