// Package metrics defines and registers all custom Prometheus metrics for the
// listings API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "listings"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts successful logins.
var LoginsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins.",
	},
)

// AuthFailuresTotal counts failed authentication attempts.
// Label:
//   - reason: "missing_token", "invalid_token", "expired_token",
//     "bad_credentials", "token_reused"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// TokenRotationsTotal counts refresh-token rotations.
// Label:
//   - result: "ok" or "rejected"
var TokenRotationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rotations_total",
		Help:      "Total number of refresh token rotation attempts, by result.",
	},
	[]string{"result"},
)

// ── Listing metrics ───────────────────────────────────────────────────────────

// PropertiesCreatedTotal counts newly created listings.
// Label:
//   - transaction_type: "sale" or "rent"
var PropertiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "properties_created_total",
		Help:      "Total number of properties listed, by transaction type.",
	},
	[]string{"transaction_type"},
)

// PropertyViewsTotal counts recorded listing page views. Owner self-views
// are not recorded and therefore not counted.
var PropertyViewsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "property_views_total",
		Help:      "Total number of recorded property page views.",
	},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsDeliveredTotal counts notifications persisted by the dispatcher.
// Label:
//   - kind: "like" or "review"
var NotificationsDeliveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_delivered_total",
		Help:      "Total number of notifications delivered, by kind.",
	},
	[]string{"kind"},
)

// NotificationQueueDepth tracks notifications enqueued but not yet handled
// by a dispatcher worker.
var NotificationQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Number of notifications waiting for a dispatcher worker.",
	},
)

// NotificationsErrorsTotal counts notifications that failed delivery.
// Label:
//   - kind: "like" or "review"
var NotificationsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_errors_total",
		Help:      "Total number of notifications that failed delivery, by kind.",
	},
	[]string{"kind"},
)
