package courier

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"orchestrator/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// FindCandidates активные курьеры, которые умеют этот тип отправления и обслуживают маршрут
// (города без учета регистра, ребро маршрута активно). UsageCount - число отправлений курьера
// того же типа по тому же маршруту начиная с since.
func (r *Repository) FindCandidates(
	ctx context.Context,
	shipmentTypeID int64,
	origin, destination string,
	since time.Time,
) ([]entities.CourierCandidate, error) {
	query, args, err := qb.
		Select(
			"c.id", "c.name", "c.supports_cancellation", "c.is_active", "c.created_at", "c.updated_at",
			"COUNT(s.id) AS usage_count",
		).
		From("couriers c").
		Join("courier_shipment_types cst ON cst.courier_id = c.id").
		Join("courier_routes cr ON cr.courier_id = c.id").
		Join("routes r ON r.id = cr.route_id").
		LeftJoin(
			"shipments s ON s.courier_id = c.id AND s.shipment_type_id = cst.shipment_type_id AND s.route_id = r.id AND s.created_at >= ?",
			since,
		).
		Where(sq.Eq{
			"cst.shipment_type_id": shipmentTypeID,
			"c.is_active":          true,
			"cr.is_active":         true,
		}).
		Where("LOWER(r.origin) = LOWER(?)", origin).
		Where("LOWER(r.destination) = LOWER(?)", destination).
		GroupBy("c.id").
		OrderBy("usage_count ASC", "c.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository find candidates error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository find candidates error: %w", err)
	}
	defer rows.Close()

	candidates := make([]CandidateDB, 0, 2)
	for rows.Next() {
		var candidateDB CandidateDB
		err := rows.Scan(
			&candidateDB.ID,
			&candidateDB.Name,
			&candidateDB.SupportsCancellation,
			&candidateDB.IsActive,
			&candidateDB.CreatedAt,
			&candidateDB.UpdatedAt,
			&candidateDB.UsageCount,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository find candidates error: %w", err)
		}
		candidates = append(candidates, candidateDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository find candidates error: %w", err)
	}

	return ToCandidateDomainList(candidates), nil
}

// GetActiveConfigByCourierName неактивный курьер или конфиг - тоже ErrCourierNotFound.
func (r *Repository) GetActiveConfigByCourierName(ctx context.Context, name string) (*entities.CourierConfig, error) {
	query := `
		SELECT cc.courier_id, c.name, cc.base_url, cc.api_key, cc.api_secret,
		       cc.username, cc.password, cc.is_active, cc.updated_at
		FROM courier_configs cc
		JOIN couriers c ON c.id = cc.courier_id
		WHERE LOWER(c.name) = LOWER($1)
		  AND cc.is_active
		  AND c.is_active
	`

	var configDB ConfigDB
	err := r.querier.QueryRow(ctx, query, name).Scan(
		&configDB.CourierID,
		&configDB.CourierName,
		&configDB.BaseURL,
		&configDB.APIKey,
		&configDB.APISecret,
		&configDB.Username,
		&configDB.Password,
		&configDB.IsActive,
		&configDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository get config error: %w", err)
	}

	return ToConfigDomain(&configDB), nil
}
