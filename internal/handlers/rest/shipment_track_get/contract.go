//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_track_get_test
package shipment_track_get

import (
	"context"

	"orchestrator/internal/entities"
	"orchestrator/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Track(ctx context.Context, referenceNumber string, live bool) (*entities.TrackingView, error)
}
