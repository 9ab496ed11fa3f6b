// Package metrics defines the business counters of the visitor registry.
// HTTP request metrics come from the echoprometheus middleware; these cover
// what the request metrics cannot tell apart.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "visitor_registry"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRefreshTotal counts access-token refreshes.
// Label:
//   - result: "success", "invalid_token" or "error"
var TokenRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refresh_total",
		Help:      "Total number of access-token refresh attempts, by result.",
	},
	[]string{"result"},
)

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersCreatedTotal counts created accounts.
// Label:
//   - role: the role of the new account
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// UsersUpdatedTotal counts successful account updates.
var UsersUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_updated_total",
		Help:      "Total number of user accounts updated.",
	},
)

// ── Visitor metrics ───────────────────────────────────────────────────────────

// VisitorsCreatedTotal counts visitor check-ins.
var VisitorsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "visitors_created_total",
		Help:      "Total number of visitor check-ins recorded.",
	},
)

// VisitorListSize observes how many records each unpaginated list call returns.
var VisitorListSize = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "visitor_list_size",
		Help:      "Number of visitors returned per list call.",
		Buckets:   prometheus.ExponentialBuckets(10, 4, 7), // 10 … 40960
	},
)
