// Package metrics defines and registers the console's Prometheus metrics.
// All collectors are registered with the default registry at package init
// and exposed by the console server on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "admin_console"

// ── Backend client ────────────────────────────────────────────────────────────

// APIRequestsTotal counts backend calls made by the request helper.
// Labels:
//   - method: HTTP method
//   - status: response status code, or "0" on network failure
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of backend requests issued by the API client.",
	},
	[]string{"method", "status"},
)

// SessionInvalidationsTotal counts 401-driven session teardowns.
var SessionInvalidationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_invalidations_total",
		Help:      "Total number of sessions cleared after a 401 response.",
	},
)

// ── Development proxy ─────────────────────────────────────────────────────────

// ProxyRequestsTotal counts requests relayed by the development proxy.
// Labels:
//   - method: HTTP method
//   - status: status code returned to the caller
var ProxyRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "proxy_requests_total",
		Help:      "Total number of requests relayed by the development proxy.",
	},
	[]string{"method", "status"},
)

// ProxyDuration measures the backend round trip of a proxied request.
var ProxyDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "proxy_duration_seconds",
		Help:      "Duration of proxied backend round trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// RateLimitedTotal counts requests rejected by the per-IP limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
)

// ── Badge stream ──────────────────────────────────────────────────────────────

// BadgePollsTotal counts badge polls by result ("ok" or "error").
var BadgePollsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "badge_polls_total",
		Help:      "Total number of badge-count polls, labelled by result.",
	},
	[]string{"result"},
)

// BadgeStreams tracks open badge websocket connections.
var BadgeStreams = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "badge_streams",
		Help:      "Current number of open badge websocket streams.",
	},
)
