package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boothko_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "boothko_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boothko_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})
)

// Suggestion engine metrics.
var (
	SuggestionRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boothko_suggestion_requests_total",
		Help: "Suggestion requests by outcome (hit, empty)",
	}, []string{"result"})

	SuggestionsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "boothko_suggestions_returned",
		Help:    "Number of suggestions returned per request",
		Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8},
	})

	SuggestionCategories = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boothko_suggestion_categories_total",
		Help: "Suggestions served by category",
	}, []string{"category"})
)

// Search history metrics.
var (
	HistoryWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boothko_history_writes_total",
		Help: "Search history writes by result",
	}, []string{"result"})

	HistoryPruned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boothko_history_pruned_total",
		Help: "Search history rows removed by retention",
	})
)

// Database pool metrics, exported only for PostgreSQL.
var (
	DBPoolTotalConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "boothko_db_pool_total_conns",
		Help: "Total connections in the pool",
	})

	DBPoolIdleConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "boothko_db_pool_idle_conns",
		Help: "Idle connections in the pool",
	})

	DBPoolAcquiredConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "boothko_db_pool_acquired_conns",
		Help: "Connections currently checked out",
	})

	DBPoolMaxConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "boothko_db_pool_max_conns",
		Help: "Maximum pool size",
	})
)
