// Package metrics exposes checkout and receipt outcome counters in the
// Prometheus format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics implements commands.Metrics on its own registry.
type Metrics struct {
	registry  *prometheus.Registry
	checkouts *prometheus.CounterVec
	receipts  *prometheus.CounterVec
}

// New registers the counters together with the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		checkouts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_orders_total",
			Help: "Checkout attempts by outcome (committed, rejected, failed)",
		}, []string{"outcome"}),
		receipts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_receipts_total",
			Help: "Receipt generation attempts by outcome (generated, failed)",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) ObserveCheckout(outcome string) {
	m.checkouts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveReceipt(outcome string) {
	m.receipts.WithLabelValues(outcome).Inc()
}

// Handler serves the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
