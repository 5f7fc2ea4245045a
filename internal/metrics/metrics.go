package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	OrdersSubmitted    prometheus.Counter
	WorkerRecords      *prometheus.CounterVec
	StockCompensations prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	submitted := prometheus.NewCounter(prometheus.CounterOpts{Name: "pipeline_orders_submitted_total"})
	records := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "pipeline_worker_records_total"}, []string{"worker", "outcome"})
	compensations := prometheus.NewCounter(prometheus.CounterOpts{Name: "pipeline_stock_compensations_total"})

	r.MustRegister(submitted, records, compensations)
	return &Registry{
		reg:                r,
		OrdersSubmitted:    submitted,
		WorkerRecords:      records,
		StockCompensations: compensations,
	}
}

// RecordOutcome tracks one processed record per worker: "ok", "retry" or
// "fatal".
func (r *Registry) RecordOutcome(worker, outcome string) {
	if r == nil {
		return
	}
	r.WorkerRecords.WithLabelValues(worker, outcome).Inc()
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
