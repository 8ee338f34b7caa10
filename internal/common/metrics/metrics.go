package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CallsLogged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dialer_calls_logged_total",
			Help: "Total number of call records created in HubSpot",
		},
		[]string{"status"},
	)

	RequestsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dialer_requests_failed_total",
			Help: "Total number of failed shim operations",
		},
		[]string{"operation", "error_code"},
	)

	RemoteRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "dialer_hubspot_request_duration_seconds",
			Help: "Duration of outbound HubSpot API requests in seconds",
		},
		[]string{"operation"},
	)

	RequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dialer_requests_in_flight",
			Help: "Number of shim operations currently in flight",
		},
		[]string{"operation"},
	)
)
