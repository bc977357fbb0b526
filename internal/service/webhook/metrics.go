package webhook

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var WebhookOutcomesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "courier_webhook_outcomes_total",
		Help: "Courier webhook deliveries by outcome",
	},
	[]string{"courier", "outcome"},
)

const (
	outcomeNotFound     = "not_found"
	outcomeUnauthorized = "unauthorized"
	outcomeInvalid      = "invalid"
	outcomeError        = "error"
)
