package shipment_label

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"orchestrator/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetActive(ctx context.Context, shipmentID int64) (*entities.ShipmentLabel, error) {
	query := `
		SELECT id, shipment_id, url, format, is_active, created_at
		FROM shipment_labels
		WHERE shipment_id = $1 AND is_active
	`

	var labelDB ShipmentLabelDB
	err := r.querier.QueryRow(ctx, query, shipmentID).Scan(
		&labelDB.ID,
		&labelDB.ShipmentID,
		&labelDB.URL,
		&labelDB.Format,
		&labelDB.IsActive,
		&labelDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrLabelNotFound
		}
		return nil, fmt.Errorf("unexpected shipment label repository get active error: %w", err)
	}

	return ToDomain(&labelDB), nil
}

// DeactivateForShipment должен вызываться в той же транзакции, что и Create,
// иначе уникальный индекс активной этикетки отклонит вставку.
func (r *Repository) DeactivateForShipment(ctx context.Context, shipmentID int64) error {
	query := `UPDATE shipment_labels SET is_active = FALSE WHERE shipment_id = $1 AND is_active`

	_, err := r.querier.Exec(ctx, query, shipmentID)
	if err != nil {
		return fmt.Errorf("unexpected shipment label repository deactivate error: %w", err)
	}

	return nil
}

func (r *Repository) Create(ctx context.Context, shipmentID int64, url, format string) (*entities.ShipmentLabel, error) {
	query := `
		INSERT INTO shipment_labels (shipment_id, url, format, is_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id, shipment_id, url, format, is_active, created_at
	`

	var labelDB ShipmentLabelDB
	err := r.querier.QueryRow(ctx, query, shipmentID, url, format).Scan(
		&labelDB.ID,
		&labelDB.ShipmentID,
		&labelDB.URL,
		&labelDB.Format,
		&labelDB.IsActive,
		&labelDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment label repository create error: %w", err)
	}

	return ToDomain(&labelDB), nil
}
