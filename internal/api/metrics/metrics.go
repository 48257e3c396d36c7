// Package metrics defines and registers all custom Prometheus metrics for
// the storefront gateway. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls against the upstream catalog/auth API.
// Labels:
//   - endpoint: logical operation name (e.g. "login", "product_search")
//   - result: "ok" or "error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of upstream API requests, by endpoint and result.",
	},
	[]string{"endpoint", "result"},
)

// UpstreamRequestDuration measures upstream call latency per endpoint.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of upstream API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsCreatedTotal counts sessions committed by a fully successful login
// pipeline.
var SessionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Total number of sessions created after a successful login.",
	},
)

// SessionsClearedTotal counts destroyed sessions.
// Label:
//   - reason: "logout", "invalid" (upstream rejected the token), or
//     "rollback" (profile fetch failed right after login)
var SessionsClearedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_cleared_total",
		Help:      "Total number of sessions cleared, by reason.",
	},
	[]string{"reason"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// CategoryCacheTotal counts category cache lookups.
// Label:
//   - result: "hit" or "miss"
var CategoryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "category_cache_total",
		Help:      "Total number of category cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Upload metrics ────────────────────────────────────────────────────────────

// UploadsTotal counts file-upload relays.
// Label:
//   - result: "ok" or "error"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of file uploads relayed to the upload host, by result.",
	},
	[]string{"result"},
)
