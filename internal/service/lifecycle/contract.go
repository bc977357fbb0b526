//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lifecycle_test
package lifecycle

import (
	"context"
	"time"

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

type RequestRepository interface {
	ListToProcess(ctx context.Context, limit int) ([]entities.ShipmentRequest, error)
	Claim(ctx context.Context, id int64, now time.Time) (*entities.ShipmentRequest, error)
	MarkCompleted(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, reason string) error
}

type PartyRepository interface {
	GetByID(ctx context.Context, kind entities.PartyKind, id int64) (*entities.Party, error)
}

type ReferenceRepository interface {
	GetShipmentType(ctx context.Context, id int64) (*entities.ShipmentType, error)
	GetRouteByID(ctx context.Context, id int64) (*entities.Route, error)
	GetOrCreateRoute(ctx context.Context, origin, destination string) (*entities.Route, error)
}

type CourierSelector interface {
	Find(ctx context.Context, shipmentTypeID int64, origin, destination string) (*entities.Courier, error)
}

type CourierGateway interface {
	CreateShipment(ctx context.Context, name string, req *courier.ShipmentRequest) (*courier.ShipmentResult, error)
}

type ShipmentCreator interface {
	CreateShipment(ctx context.Context, req *courier.ShipmentRequest, result *courier.ShipmentResult, selected entities.Courier) (*entities.Shipment, error)
}

type Locker interface {
	TryLock(ctx context.Context) (string, error)
	Unlock(ctx context.Context, token string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
