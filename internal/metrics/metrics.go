// Package metrics registers the tracker's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()

	// Reloads counts full reload-and-recompute cycles, by outcome.
	Reloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tracker",
			Name:      "reloads_total",
			Help:      "Full reload cycles of the authoritative transaction set.",
		},
		[]string{"status"},
	)

	// StoreOps counts document-store round trips, by operation and outcome.
	StoreOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tracker",
			Name:      "store_operations_total",
			Help:      "Document store operations issued by the repository.",
		},
		[]string{"operation", "status"},
	)

	// HTTPRequests counts handled requests, by path and status class.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tracker",
			Name:      "http_requests_total",
			Help:      "HTTP requests handled by the server.",
		},
		[]string{"path", "status"},
	)
)

func init() {
	registry.MustRegister(Reloads, StoreOps, HTTPRequests)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// Status maps an error to the label value used across all counters.
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
