// Package metrics exposes Prometheus collectors for the screening
// service. A dedicated registry keeps the scrape surface limited to the
// metrics declared here.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "talentscreen"

var registry = prometheus.NewRegistry()

var (
	// OracleCalls counts oracle invocations by operation and outcome.
	OracleCalls = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "oracle_calls_total",
		Help:      "Oracle invocations by operation and outcome.",
	}, []string{"op", "outcome"})

	// OracleScoreFallbacks counts compatibility scores that defaulted to 0
	// because the oracle output carried no parsable digits. Kept separate
	// from genuine zero scores.
	OracleScoreFallbacks = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "oracle_score_fallback_total",
		Help:      "Compatibility scores defaulted to 0 due to unparsable oracle output.",
	})

	// ProfileExtractions counts resume extraction runs.
	ProfileExtractions = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_extractions_total",
		Help:      "Resume profile extraction runs.",
	})

	// HTTPRequests counts API requests by method, route, and status class.
	HTTPRequests = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "API requests by method, route, and status class.",
	}, []string{"method", "route", "status"})
)

// Handler returns the scrape endpoint for the service registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
