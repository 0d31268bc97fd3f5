package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feedback_pulse_request_duration_seconds",
			Help:    "Request handling duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"endpoint"},
	)

	FeedbackSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_pulse_submissions_total",
			Help: "Total feedback submissions by outcome",
		},
		[]string{"status"},
	)

	FeedbackListRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_pulse_list_requests_total",
			Help: "Total filtered feedback list requests",
		},
	)

	SummaryCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_pulse_summary_cache_hits_total",
			Help: "Summary reads served from the cache",
		},
	)

	SummaryCacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_pulse_summary_cache_misses_total",
			Help: "Summary reads that triggered a recompute",
		},
	)

	SummarizerFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_pulse_summarizer_failures_total",
			Help: "Summarizer calls that degraded to the fallback",
		},
	)

	SummarizerTokens = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_pulse_summarizer_tokens_total",
			Help: "Total summarizer tokens used",
		},
		[]string{"model", "type"},
	)
)

func Init() {
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(FeedbackSubmissions)
	prometheus.MustRegister(FeedbackListRequests)
	prometheus.MustRegister(SummaryCacheHits)
	prometheus.MustRegister(SummaryCacheMisses)
	prometheus.MustRegister(SummarizerFailures)
	prometheus.MustRegister(SummarizerTokens)
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
