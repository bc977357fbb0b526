package dhl

import (
	"context"
	"time"
)

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type deliveryEstimator interface {
	EstimateDelivery(shipmentType string, baseTime time.Time) time.Time
}
