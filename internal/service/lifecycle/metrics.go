package lifecycle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BatchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_requests_processed_total",
			Help: "Shipment requests processed by the batch, by result",
		},
		[]string{"result"},
	)

	BatchRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shipment_request_batch_duration_seconds",
			Help:    "Duration of one batch run",
			Buckets: prometheus.DefBuckets,
		},
	)
)
