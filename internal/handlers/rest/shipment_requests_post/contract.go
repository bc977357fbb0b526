//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_requests_post_test
package shipment_requests_post

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
	CreateRequest(ctx context.Context, req *entities.ShipmentRequestCreate) (*entities.IntakeResult, error)
}
