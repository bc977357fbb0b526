package shipment_request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"orchestrator/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const columns = "id, reference_number, request_body, status, retries, last_retried_at, failed_reason, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scan(row pgx.Row, requestDB *ShipmentRequestDB) error {
	return row.Scan(
		&requestDB.ID,
		&requestDB.ReferenceNumber,
		&requestDB.RequestBody,
		&requestDB.Status,
		&requestDB.Retries,
		&requestDB.LastRetriedAt,
		&requestDB.FailedReason,
		&requestDB.CreatedAt,
		&requestDB.UpdatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, referenceNumber string, body entities.RequestBody) (*entities.ShipmentRequest, error) {
	rawBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment request repository create error: %w", err)
	}

	query := `
		INSERT INTO shipment_requests (reference_number, request_body, status)
		VALUES ($1, $2, $3)
		RETURNING ` + columns

	var requestDB ShipmentRequestDB
	err = scan(r.querier.QueryRow(ctx, query, referenceNumber, rawBody, entities.RequestPending.String()), &requestDB)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment request repository create error: %w", err)
	}

	return ToDomain(&requestDB)
}

// GetLatestByReference номер может повторяться между последовательными попытками, берем последнюю заявку.
func (r *Repository) GetLatestByReference(ctx context.Context, referenceNumber string) (*entities.ShipmentRequest, error) {
	query := `SELECT ` + columns + `
		FROM shipment_requests
		WHERE reference_number = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	var requestDB ShipmentRequestDB
	err := scan(r.querier.QueryRow(ctx, query, referenceNumber), &requestDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRequestNotFound
		}
		return nil, fmt.Errorf("unexpected shipment request repository get latest error: %w", err)
	}

	return ToDomain(&requestDB)
}

// ListToProcess pending и failed заявки с неисчерпанными попытками, старые первыми.
func (r *Repository) ListToProcess(ctx context.Context, limit int) ([]entities.ShipmentRequest, error) {
	query, args, err := qb.
		Select(columns).
		From("shipment_requests").
		Where(sq.Eq{"status": []string{entities.RequestPending.String(), entities.RequestFailed.String()}}).
		Where(sq.Lt{"retries": entities.MaxRequestRetries}).
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment request repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment request repository list error: %w", err)
	}
	defer rows.Close()

	requestsDB := make([]ShipmentRequestDB, 0, limit)
	for rows.Next() {
		var requestDB ShipmentRequestDB
		if err := scan(rows, &requestDB); err != nil {
			return nil, fmt.Errorf("unexpected shipment request repository list error: %w", err)
		}
		requestsDB = append(requestsDB, requestDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment request repository list error: %w", err)
	}

	return ToDomainList(requestsDB)
}

// Claim условный апдейт: заявку получает только тот, кто увидел ее еще не взятой.
// Иначе ErrRequestNotFound.
func (r *Repository) Claim(ctx context.Context, id int64, now time.Time) (*entities.ShipmentRequest, error) {
	query, args, err := qb.
		Update("shipment_requests").
		Set("status", entities.RequestProcessing.String()).
		Set("retries", sq.Expr("retries + 1")).
		Set("last_retried_at", now).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"status": []string{entities.RequestPending.String(), entities.RequestFailed.String()}}).
		Where(sq.Lt{"retries": entities.MaxRequestRetries}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment request repository claim error: %w", err)
	}

	var requestDB ShipmentRequestDB
	err = scan(r.querier.QueryRow(ctx, query, args...), &requestDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRequestNotFound
		}
		return nil, fmt.Errorf("unexpected shipment request repository claim error: %w", err)
	}

	return ToDomain(&requestDB)
}

func (r *Repository) MarkCompleted(ctx context.Context, id int64) error {
	query := `
		UPDATE shipment_requests
		SET status = $2, failed_reason = NULL, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id, entities.RequestCompleted.String())
	if err != nil {
		return fmt.Errorf("unexpected shipment request repository mark completed error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entities.ErrRequestNotFound
	}

	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, id int64, reason string) error {
	query := `
		UPDATE shipment_requests
		SET status = $2, failed_reason = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id, entities.RequestFailed.String(), reason)
	if err != nil {
		return fmt.Errorf("unexpected shipment request repository mark failed error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entities.ErrRequestNotFound
	}

	return nil
}
