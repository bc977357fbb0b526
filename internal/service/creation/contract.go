//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=creation_test
package creation

import (
	"context"

	"orchestrator/internal/entities"
)

type ShipmentTypeRepository interface {
	GetShipmentType(ctx context.Context, id int64) (*entities.ShipmentType, error)
}

type ShipmentRepository interface {
	Create(ctx context.Context, shipmentCreate entities.ShipmentCreate) (*entities.Shipment, error)
}

type StatusRepository interface {
	Append(ctx context.Context, status entities.ShipmentStatus) (*entities.ShipmentStatus, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
