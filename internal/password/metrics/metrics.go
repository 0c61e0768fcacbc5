package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for password mutations.
type Metrics struct {
	ChangesTotal  prometheus.Counter
	ResetsTotal   prometheus.Counter
	FailuresTotal *prometheus.CounterVec
}

// New creates and registers all password metrics.
func New() *Metrics {
	return &Metrics{
		ChangesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "passgate_password_changes_total",
			Help: "Total number of successful password changes",
		}),
		ResetsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "passgate_password_resets_total",
			Help: "Total number of successful password resets",
		}),
		FailuresTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "passgate_password_failures_total",
			Help: "Total number of rejected password mutations by offending field",
		}, []string{"field"}),
	}
}

func (m *Metrics) RecordChange() {
	m.ChangesTotal.Inc()
}

func (m *Metrics) RecordReset() {
	m.ResetsTotal.Inc()
}

func (m *Metrics) RecordFailure(field string) {
	m.FailuresTotal.WithLabelValues(field).Inc()
}
