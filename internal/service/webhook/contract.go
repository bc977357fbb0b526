//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=webhook_test
package webhook

import (
	"context"

	"orchestrator/internal/entities"
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
	GetByExternalIDForUpdate(ctx context.Context, externalID string) (*entities.Shipment, error)
}

type StatusRepository interface {
	Latest(ctx context.Context, shipmentID int64) (*entities.ShipmentStatus, error)
	Append(ctx context.Context, status entities.ShipmentStatus) (*entities.ShipmentStatus, error)
}

type StatusMapper interface {
	MapWebhookStatus(name, raw string) entities.StatusType
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
