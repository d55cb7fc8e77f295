package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors holds the prometheus instruments exported by the console.
type Collectors struct {
	Logins        *prometheus.CounterVec
	Mutations     *prometheus.CounterVec
	LowStockItems prometheus.Gauge
}

// NewCollectors registers the console's instruments with the given
// registerer.
func NewCollectors(reg prometheus.Registerer) *Collectors {
	factory := promauto.With(reg)
	return &Collectors{
		Logins: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "merrymeal_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		Mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "merrymeal_record_mutations_total",
			Help: "Record mutations by screen and action.",
		}, []string{"screen", "action"}),
		LowStockItems: factory.NewGauge(prometheus.GaugeOpts{
			Name: "merrymeal_low_stock_items",
			Help: "Inventory items at or below the low-stock threshold.",
		}),
	}
}
