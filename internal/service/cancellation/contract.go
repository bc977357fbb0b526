//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cancellation_test
package cancellation

import (
	"context"

	"orchestrator/internal/entities"
	"orchestrator/internal/gateway/courier"
	"orchestrator/pkg/logger"
)

type serviceLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type ShipmentRepository interface {
	GetDetailsByReference(ctx context.Context, referenceNumber string) (*entities.ShipmentDetails, error)
}

type StatusRepository interface {
	Latest(ctx context.Context, shipmentID int64) (*entities.ShipmentStatus, error)
	Append(ctx context.Context, status entities.ShipmentStatus) (*entities.ShipmentStatus, error)
}

type CourierGateway interface {
	CancelShipment(ctx context.Context, name, externalID string) (*courier.CancelResult, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
