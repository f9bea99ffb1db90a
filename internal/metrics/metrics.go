package metrics

import "github.com/prometheus/client_golang/prometheus"

// Transport and session Prometheus metrics.
var (
	TransportRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quotefinder",
			Name:      "transport_requests_total",
			Help:      "Total number of requests sent to the quote server",
		},
		[]string{"endpoint", "outcome"}, // outcome: ok, http_error, network_error, decode_error
	)

	TransportRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "quotefinder",
			Name:      "transport_request_duration_seconds",
			Help:      "Quote server request duration in seconds",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	SearchOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quotefinder",
			Name:      "search_outcomes_total",
			Help:      "Settled searches by resulting state and server search type",
		},
		[]string{"state", "search_type"},
	)

	StaleResponsesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "quotefinder",
			Name:      "stale_responses_total",
			Help:      "Responses discarded because a newer search had started",
		},
	)
)

// Register adds all collectors to reg. Calling it twice on the same registry
// returns the AlreadyRegistered error from the second call.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		TransportRequestsTotal,
		TransportRequestDuration,
		SearchOutcomesTotal,
		StaleResponsesTotal,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
