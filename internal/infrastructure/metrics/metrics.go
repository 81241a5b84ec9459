package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	results *prometheus.CounterVec
}

func CreateMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "partner_transaction_results_total",
			Help: "Partner transaction submissions by outcome code.",
		}, []string{"code"}),
	}

	reg.MustRegister(m.results)

	return m
}

func (m *Metrics) ObserveResult(code string) {
	m.results.WithLabelValues(code).Inc()
}
