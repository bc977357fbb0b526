//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_status_get_test
package shipment_status_get

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
	GetSummary(ctx context.Context, referenceNumber string) (*entities.StatusSummary, error)
}
