// Package metrics holds the prometheus instrumentation shared by the
// HTTP middleware and exposed on the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Instrumentation bundles the prometheus collectors the server updates.
type Instrumentation struct {
	CounterRequests     *prometheus.CounterVec
	CounterAuthFailures prometheus.Counter
	HistRequestDuration prometheus.Histogram
}

// New registers the collectors on the default registerer.
func New(namespace, subsystem string) *Instrumentation {
	return NewWithRegisterer(namespace, subsystem, prometheus.DefaultRegisterer)
}

// NewTestInstrumentation registers the collectors on a private registry,
// so tests can run in parallel without duplicate registration panics.
func NewTestInstrumentation() *Instrumentation {
	return NewWithRegisterer("notes", "test_server", prometheus.NewRegistry())
}

// NewWithRegisterer registers the collectors on the given registerer.
func NewWithRegisterer(namespace, subsystem string, reg prometheus.Registerer) *Instrumentation {
	factory := promauto.With(reg)

	return &Instrumentation{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "The total number of incoming requests",
		}, []string{"method", "status"}),
		CounterAuthFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "auth_failures_total",
			Help:      "The total number of rejected authentications",
		}),
		HistRequestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Request handling duration",
		}),
	}
}
