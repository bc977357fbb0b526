//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=intake_test
package intake

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
	GetByReference(ctx context.Context, referenceNumber string) (*entities.Shipment, error)
}

type RequestRepository interface {
	GetLatestByReference(ctx context.Context, referenceNumber string) (*entities.ShipmentRequest, error)
	Create(ctx context.Context, referenceNumber string, body entities.RequestBody) (*entities.ShipmentRequest, error)
}

type PartyRepository interface {
	GetByID(ctx context.Context, kind entities.PartyKind, id int64) (*entities.Party, error)
	GetOrCreateByEmail(ctx context.Context, kind entities.PartyKind, party entities.Party) (*entities.Party, error)
}

type ReferenceRepository interface {
	GetShipmentType(ctx context.Context, id int64) (*entities.ShipmentType, error)
	GetRouteByID(ctx context.Context, id int64) (*entities.Route, error)
	GetOrCreateRoute(ctx context.Context, origin, destination string) (*entities.Route, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
