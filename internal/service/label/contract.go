//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=label_test
package label

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
	GetByReference(ctx context.Context, referenceNumber string) (*entities.Shipment, error)
}

type LabelRepository interface {
	GetActive(ctx context.Context, shipmentID int64) (*entities.ShipmentLabel, error)
	DeactivateForShipment(ctx context.Context, shipmentID int64) error
	Create(ctx context.Context, shipmentID int64, url, format string) (*entities.ShipmentLabel, error)
}

type LabelCache interface {
	Get(ctx context.Context, referenceNumber string) (*entities.ShipmentLabel, bool, error)
	Set(ctx context.Context, label *entities.ShipmentLabel) error
}

type CourierGateway interface {
	FetchLabel(ctx context.Context, name, externalID string) (*courier.LabelResult, error)
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
