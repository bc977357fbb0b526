package reference

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"orchestrator/internal/entities"
)

// Repository справочники: типы отправлений и маршруты.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetShipmentType(ctx context.Context, id int64) (*entities.ShipmentType, error) {
	query := `SELECT id, name, description FROM shipment_types WHERE id = $1`

	var shipmentTypeDB ShipmentTypeDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&shipmentTypeDB.ID,
		&shipmentTypeDB.Name,
		&shipmentTypeDB.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrShipmentTypeNotFound
		}
		return nil, fmt.Errorf("unexpected reference repository get shipment type error: %w", err)
	}

	return ToShipmentTypeDomain(&shipmentTypeDB), nil
}

func (r *Repository) GetRouteByID(ctx context.Context, id int64) (*entities.Route, error) {
	query := `SELECT id, origin, destination, created_at FROM routes WHERE id = $1`

	var routeDB RouteDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&routeDB.ID,
		&routeDB.Origin,
		&routeDB.Destination,
		&routeDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected reference repository get route error: %w", err)
	}

	return ToRouteDomain(&routeDB), nil
}

// GetOrCreateRoute города сравниваются без учета регистра, при вставке сохраняется написание вызывающего.
func (r *Repository) GetOrCreateRoute(ctx context.Context, origin, destination string) (*entities.Route, error) {
	query := `
		WITH inserted AS (
			INSERT INTO routes (origin, destination)
			VALUES ($1, $2)
			ON CONFLICT (LOWER(origin), LOWER(destination)) DO NOTHING
			RETURNING id, origin, destination, created_at
		)
		SELECT id, origin, destination, created_at FROM inserted
		UNION ALL
		SELECT id, origin, destination, created_at FROM routes
		WHERE LOWER(origin) = LOWER($1) AND LOWER(destination) = LOWER($2)
		LIMIT 1
	`

	var routeDB RouteDB
	err := r.querier.QueryRow(ctx, query, origin, destination).Scan(
		&routeDB.ID,
		&routeDB.Origin,
		&routeDB.Destination,
		&routeDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected reference repository get or create route error: %w", err)
	}

	return ToRouteDomain(&routeDB), nil
}
