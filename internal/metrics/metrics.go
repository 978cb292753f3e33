package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitswitch_http_requests_total",
			Help: "Total number of HTTP requests handled by the gateway",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitswitch_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitswitch_backend_requests_total",
			Help: "Total number of requests sent to the FitSwitch backend",
		},
		[]string{"op", "status"},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitswitch_backend_request_duration_seconds",
			Help:    "Backend request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	CheckInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitswitch_checkins_total",
			Help: "Total number of check-in attempts",
		},
		[]string{"kind", "outcome"},
	)

	CheckOutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitswitch_checkouts_total",
			Help: "Total number of check-out attempts",
		},
		[]string{"kind", "outcome"},
	)

	VisitCacheFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitswitch_visit_cache_fallbacks_total",
			Help: "Times the visit verdict came from the local cache because the server session was unavailable",
		},
	)

	VisitCacheWriteFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitswitch_visit_cache_write_failures_total",
			Help: "Failed local visit record writes after a confirmed check-out",
		},
	)

	CatalogCacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitswitch_catalog_cache_hits_total",
			Help: "Catalog cache lookups by scope and result",
		},
		[]string{"scope", "result"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBackendRequest(op, status string, duration float64) {
	BackendRequestsTotal.WithLabelValues(op, status).Inc()
	BackendRequestDuration.WithLabelValues(op).Observe(duration)
}

func RecordCheckIn(kind, outcome string) {
	CheckInsTotal.WithLabelValues(kind, outcome).Inc()
}

func RecordCheckOut(kind, outcome string) {
	CheckOutsTotal.WithLabelValues(kind, outcome).Inc()
}

func RecordVisitCacheFallback() {
	VisitCacheFallbacksTotal.Inc()
}

func RecordVisitCacheWriteFailure() {
	VisitCacheWriteFailuresTotal.Inc()
}

func RecordCatalogCache(scope, result string) {
	CatalogCacheHitsTotal.WithLabelValues(scope, result).Inc()
}
