// Package metrics defines and registers the custom Prometheus metrics of the
// Bistro Boss API. It is the single source of truth for metric names, labels,
// and help strings. HTTP request metrics come from the echoprometheus
// middleware; this package only holds domain counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bistro"

// ── Checkout metrics ──────────────────────────────────────────────────────────

// PaymentsTotal counts checkout attempts.
// Labels:
//   - path: "card" or "gateway"
//   - result: "ok", "partial" (recorded but carts not deleted) or "error"
var PaymentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_total",
		Help:      "Total number of payments recorded or initiated, by path and result.",
	},
	[]string{"path", "result"},
)

// SettlementsTotal counts gateway confirmations.
// Label:
//   - result: "settled", "replayed", "invalid", "not_found" or "error"
var SettlementsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "settlements_total",
		Help:      "Total number of gateway payment confirmations, by result.",
	},
	[]string{"result"},
)

// CartReleasesTotal counts attempts to delete the carts of a settled payment.
// Labels:
//   - source: "settlement" or "reconciler"
//   - result: "ok" or "error"
var CartReleasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_releases_total",
		Help:      "Total number of cart release attempts after settlement.",
	},
	[]string{"source", "result"},
)

// CartEntriesDeletedTotal counts cart entries removed by checkout.
var CartEntriesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_entries_deleted_total",
		Help:      "Total number of cart entries deleted after payment.",
	},
)

// ── Access metrics ────────────────────────────────────────────────────────────

// TokensIssuedTotal counts session tokens handed out by POST /jwt.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of session tokens issued.",
	},
)

// UsersCreatedTotal counts first-login inserts into the directory.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created on first sign-in.",
	},
)

// ReleaseResult maps a release error to the result label value.
func ReleaseResult(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
