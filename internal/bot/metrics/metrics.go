// Package metrics holds the bot's Prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "teamfinder"

var (
	// Registry holds the bot's collectors.
	Registry = prometheus.NewRegistry()

	updates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "updates_total",
			Help:      "Inbound updates by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	updateDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "update_duration_seconds",
			Help:      "Time spent handling one update.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"kind"},
	)

	applications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "applications",
			Name:      "events_total",
			Help:      "Application lifecycle events.",
		},
		[]string{"event"},
	)

	gatewayErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "errors_total",
			Help:      "Failed outbound gateway calls.",
		},
		[]string{"op"},
	)

	inconsistencies = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "applications",
			Name:      "inconsistencies_total",
			Help:      "Rejections where the user was notified but the record could not be deleted.",
		},
	)

	sessions = prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "active",
			Help:      "Sessions currently held in memory.",
		},
		func() float64 { return float64(sessionCount()) },
	)

	sessionCount = func() int { return 0 }
)

// Outcomes recorded with updates_total.
const (
	OutcomeOK          = "ok"
	OutcomeRateLimited = "rate_limited"
	OutcomeMalformed   = "malformed"
	OutcomeIllegal     = "illegal"
	OutcomeDenied      = "denied"
	OutcomeError       = "error"
)

// Application events.
const (
	EventSubmitted = "submitted"
	EventConflict  = "conflict"
	EventApproved  = "approved"
	EventPublished = "published"
	EventRejected  = "rejected"
	EventDeleted   = "deleted"
)

func init() {
	Registry.MustRegister(
		updates,
		updateDuration,
		applications,
		gatewayErrors,
		inconsistencies,
		sessions,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes Registry over HTTP.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordUpdate counts one handled update.
func RecordUpdate(kind, outcome string, d time.Duration) {
	updates.WithLabelValues(kind, outcome).Inc()
	updateDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func RecordApplication(event string) {
	applications.WithLabelValues(event).Inc()
}

func RecordGatewayError(op string) {
	gatewayErrors.WithLabelValues(op).Inc()
}

func RecordInconsistency() {
	inconsistencies.Inc()
}

// TrackSessions makes the sessions gauge report fn.
func TrackSessions(fn func() int) {
	sessionCount = fn
}
