// Package metrics exposes Prometheus instruments for HTTP traffic and logins.
package metrics

import (
	"context"

	"github.com/nfrund/instaclone/internal/loginform"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "instaclone"

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Current number of HTTP requests being processed",
		},
	)
)

// Auth metrics
var (
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Total number of resolved login attempts",
		},
		[]string{"outcome"},
	)

	LoginFormsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "login_forms_active",
			Help:      "Login forms currently held in memory",
		},
	)
)

// SetLoginFormsActive records the login form store size. It fits
// loginform.WithSizeReporter.
func SetLoginFormsActive(size int) {
	LoginFormsActive.Set(float64(size))
}

// LoginRecorder counts login attempts by outcome.
type LoginRecorder struct{}

var _ loginform.Observer = LoginRecorder{}

// LoginResolved implements loginform.Observer.
func (LoginRecorder) LoginResolved(_ context.Context, _ string, outcome loginform.Outcome) {
	LoginAttempts.WithLabelValues(outcome.Kind).Inc()
}
