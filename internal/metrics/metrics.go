package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Status label values
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

var (
	// RegistrationsTotal counts user registrations and admin enrollments by status
	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notary_gateway_registrations_total",
			Help: "Total number of identity registrations",
		},
		[]string{"kind", "status"},
	)

	// DispatchTotal counts contract invocations
	DispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notary_gateway_dispatch_total",
			Help: "Total number of dispatched contract operations",
		},
		[]string{"contract", "operation", "kind", "status"},
	)

	// DispatchDuration tracks contract invocation latency
	DispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notary_gateway_dispatch_duration_seconds",
			Help:    "Contract operation duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"contract", "operation", "kind"},
	)

	// SessionsOpen tracks sessions that have connected and not yet closed
	SessionsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notary_gateway_sessions_open",
			Help: "Number of open network sessions",
		},
	)

	// SessionConnectFailures counts failed session establishments by reason
	SessionConnectFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notary_gateway_session_connect_failures_total",
			Help: "Total number of failed session connects",
		},
		[]string{"reason"},
	)
)

// StatusLabel maps an error to the status label value.
func StatusLabel(err error) string {
	if err != nil {
		return StatusFailure
	}
	return StatusSuccess
}
