package shipment_status

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"orchestrator/internal/entities"
	"orchestrator/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var statusColumns = []string{"id", "shipment_id", "status", "address", "postal_code", "country", "created_at"}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func statusDest(s *ShipmentStatusDB) []interface{} {
	return []interface{}{
		&s.ID,
		&s.ShipmentID,
		&s.Status,
		&s.Address,
		&s.PostalCode,
		&s.Country,
		&s.CreatedAt,
	}
}

// Append журнал только дописывается, строки никогда не меняются.
func (r *Repository) Append(ctx context.Context, status entities.ShipmentStatus) (*entities.ShipmentStatus, error) {
	statusModel := FromDomain(&status)

	query, args, err := qb.
		Insert("shipment_statuses").
		Columns("shipment_id", "status", "address", "postal_code", "country").
		Values(statusModel.ShipmentID, statusModel.Status, statusModel.Address, statusModel.PostalCode, statusModel.Country).
		Suffix("RETURNING id, shipment_id, status, address, postal_code, country, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment status repository append error: %w", err)
	}

	var statusDB ShipmentStatusDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(statusDest(&statusDB)...)
	if err != nil {
		if repository.IsForeignKeyViolation(err, "") {
			return nil, entities.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment status repository append error: %w", err)
	}

	return ToDomain(&statusDB), nil
}

// Latest при равном created_at побеждает больший id.
func (r *Repository) Latest(ctx context.Context, shipmentID int64) (*entities.ShipmentStatus, error) {
	query, args, err := qb.
		Select(statusColumns...).
		From("shipment_statuses").
		Where(sq.Eq{"shipment_id": shipmentID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment status repository latest error: %w", err)
	}

	var statusDB ShipmentStatusDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(statusDest(&statusDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrStatusNotFound
		}
		return nil, fmt.Errorf("unexpected shipment status repository latest error: %w", err)
	}

	return ToDomain(&statusDB), nil
}

func (r *Repository) History(ctx context.Context, shipmentID int64) ([]entities.ShipmentStatus, error) {
	query, args, err := qb.
		Select(statusColumns...).
		From("shipment_statuses").
		Where(sq.Eq{"shipment_id": shipmentID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment status repository history error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment status repository history error: %w", err)
	}
	defer rows.Close()

	var statuses []ShipmentStatusDB
	for rows.Next() {
		var statusDB ShipmentStatusDB
		if err := rows.Scan(statusDest(&statusDB)...); err != nil {
			return nil, fmt.Errorf("unexpected shipment status repository history error: %w", err)
		}
		statuses = append(statuses, statusDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment status repository history error: %w", err)
	}

	return ToDomainList(statuses), nil
}
