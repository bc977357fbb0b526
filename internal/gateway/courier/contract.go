//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"orchestrator/internal/entities"
)

// ShipmentCourier обязательные возможности любого адаптера.
type ShipmentCourier interface {
	CreateShipment(ctx context.Context, req *ShipmentRequest) (*ShipmentResult, error)
	FetchLabel(ctx context.Context, externalID string) (*LabelResult, error)
	TrackShipment(ctx context.Context, externalID string) (*TrackingResult, error)
}

// CancellableCourier опциональная возможность, проверяется type assertion.
type CancellableCourier interface {
	ShipmentCourier
	CancelShipment(ctx context.Context, externalID string) (*CancelResult, error)
}

type ConfigRepository interface {
	GetActiveConfigByCourierName(ctx context.Context, name string) (*entities.CourierConfig, error)
}

type (
	Constructor func(cfg entities.CourierConfig) (ShipmentCourier, error)

	// StatusMapper переводит словарь статусов вебхука провайдера в каноничный.
	StatusMapper func(raw string) entities.StatusType

	Provider struct {
		Constructor   Constructor
		WebhookStatus StatusMapper
	}
)
