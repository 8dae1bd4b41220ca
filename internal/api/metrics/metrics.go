// Package metrics defines the custom Prometheus metrics of the finance API.
// They are registered on the default registry at package init via promauto
// and exposed on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "finance"

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// ── Ledger metrics ────────────────────────────────────────────────────────────

// TransactionsAddedTotal counts transactions recorded.
// Label:
//   - type: "expense" or "income"
var TransactionsAddedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_added_total",
		Help:      "Total number of transactions recorded, by type.",
	},
	[]string{"type"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts register/login/logout calls.
// Labels:
//   - operation: "register", "login" or "logout"
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// ── Assistant metrics ─────────────────────────────────────────────────────────

// AssistantQueriesTotal counts assistant questions by the rule that answered.
// Label:
//   - intent: rule name, or "fallback"
var AssistantQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assistant_queries_total",
		Help:      "Total number of assistant queries, by matched intent.",
	},
	[]string{"intent"},
)

// ── Settings metrics ──────────────────────────────────────────────────────────

// SettingsToggledTotal counts settings toggles.
// Label:
//   - setting: "dark_mode" or "private_mode"
var SettingsToggledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "settings_toggled_total",
		Help:      "Total number of settings toggles, by setting.",
	},
	[]string{"setting"},
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestDuration measures handler latency.
// Labels:
//   - method: HTTP method
//   - route: the registered route path (e.g. "/v1/transactions")
//   - status: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)

// Result maps an error to the result label.
func Result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
