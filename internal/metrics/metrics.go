// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "groupsplit"

// Metrics holds every collector the service and RPC layer record into.
type Metrics struct {
	RPCRequests  *prometheus.CounterVec
	RPCDuration  *prometheus.HistogramVec
	Computations prometheus.Counter
	ComputeTime  prometheus.Histogram
	Transfers    prometheus.Histogram
	Mutations    *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RPCRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC calls handled, by procedure and result code.",
		}, []string{"procedure", "code"}),
		RPCDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		Computations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "balance_computations_total",
			Help:      "Balance and debt simplification runs.",
		}),
		ComputeTime: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "balance_computation_seconds",
			Help:      "Time spent computing balances and simplified debts.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
		}),
		Transfers: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "simplified_transfers",
			Help:      "Number of transfers produced per simplification.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
		}),
		Mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_mutations_total",
			Help:      "Successful ledger changes, by kind.",
		}, []string{"kind"}),
	}
}

// ObserveComputation records one balance computation.
// It is safe to call on a nil *Metrics.
func (m *Metrics) ObserveComputation(elapsed time.Duration, transfers int) {
	if m == nil {
		return
	}
	m.Computations.Inc()
	m.ComputeTime.Observe(elapsed.Seconds())
	m.Transfers.Observe(float64(transfers))
}

// ObserveMutation counts one successful change of the given kind.
// It is safe to call on a nil *Metrics.
func (m *Metrics) ObserveMutation(kind string) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(kind).Inc()
}

// ObserveRPC records one RPC call.
// It is safe to call on a nil *Metrics.
func (m *Metrics) ObserveRPC(procedure, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RPCRequests.WithLabelValues(procedure, code).Inc()
	m.RPCDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())
}
