// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsdesk_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "newsdesk_http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

// routeLabel maps a request path to a bounded set of label values.
func routeLabel(path string) string {
	switch {
	case path == "/", path == "/api/search", path == "/healthz", path == "/metrics":
		return path
	case strings.HasPrefix(path, "/static/"):
		return "/static/"
	default:
		return "other"
	}
}
