// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package controller

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for searchesTotal.
const (
	outcomeOK        = "ok"
	outcomeTransport = "transport_error"
	outcomeHTTP      = "http_error"
	outcomeAPI       = "api_error"
	outcomeMalformed = "malformed_response"
	outcomeInvalid   = "invalid_params"
)

var (
	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_searches_total",
			Help: "Total number of search submissions by outcome",
		},
		[]string{"outcome"},
	)

	searchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "newsdesk_search_duration_seconds",
			Help:    "Time from submission to rendered results or error",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)
)

func observeSearch(outcome string, d time.Duration) {
	searchesTotal.WithLabelValues(outcome).Inc()
	searchDuration.Observe(d.Seconds())
}
