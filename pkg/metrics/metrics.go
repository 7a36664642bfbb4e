package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StoreMetrics holds the Prometheus collectors for the order core.
type StoreMetrics struct {
	OrdersPlaced   prometheus.Counter
	OrdersRejected prometheus.Counter
	StockConflicts prometheus.Counter
	SequenceDraws  prometheus.Counter
	OrderValue     prometheus.Histogram
	Notifications  *prometheus.CounterVec
}

// NewStoreMetrics registers the collectors with the default registerer.
func NewStoreMetrics() *StoreMetrics {
	return NewStoreMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewStoreMetricsWithRegisterer registers the collectors with a custom
// registerer; tests pass a fresh registry to avoid duplicate registration.
func NewStoreMetricsWithRegisterer(registerer prometheus.Registerer) *StoreMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &StoreMetrics{
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "poshstore_orders_placed_total",
			Help: "Total number of orders successfully placed",
		}),
		OrdersRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "poshstore_orders_rejected_total",
			Help: "Total number of order requests rejected by validation",
		}),
		StockConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "poshstore_stock_conflicts_total",
			Help: "Total number of order placements aborted by a stock conflict",
		}),
		SequenceDraws: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "poshstore_sequence_draws_total",
			Help: "Total number of order-number sequence values drawn",
		}),
		OrderValue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "poshstore_order_value",
			Help:    "Distribution of accepted order totals",
			Buckets: []float64{500, 1000, 5000, 10000, 50000, 100000, 500000},
		}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "poshstore_notifications_total",
			Help: "Order notifications by channel and outcome",
		}, []string{"channel", "outcome"}),
	}

	registerer.MustRegister(
		m.OrdersPlaced, m.OrdersRejected, m.StockConflicts,
		m.SequenceDraws, m.OrderValue, m.Notifications,
	)
	return m
}

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
