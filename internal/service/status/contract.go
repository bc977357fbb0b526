//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_test
package status

import (
	"context"

	"orchestrator/internal/entities"
	"orchestrator/internal/gateway/courier"
)

type ShipmentRepository interface {
	GetByReference(ctx context.Context, referenceNumber string) (*entities.Shipment, error)
	GetDetailsByReference(ctx context.Context, referenceNumber string) (*entities.ShipmentDetails, error)
}

type StatusRepository interface {
	History(ctx context.Context, shipmentID int64) ([]entities.ShipmentStatus, error)
}

type CourierGateway interface {
	TrackShipment(ctx context.Context, name, externalID string) (*courier.TrackingResult, error)
}
