package party

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"orchestrator/internal/entities"
)

var errUnknownKind = errors.New("unknown party kind")

// Repository отправители и получатели лежат в разных таблицах с одинаковой схемой.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func tableFor(kind entities.PartyKind) (string, error) {
	switch kind {
	case entities.Shipper:
		return "shippers", nil
	case entities.Consignee:
		return "consignees", nil
	default:
		return "", fmt.Errorf("%w: %s", errUnknownKind, kind)
	}
}

func (r *Repository) GetByID(ctx context.Context, kind entities.PartyKind, id int64) (*entities.Party, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, name, address, postal_code, city, country, phone, email, created_at
		FROM ` + table + `
		WHERE id = $1`

	var partyDB PartyDB
	err = r.querier.QueryRow(ctx, query, id).Scan(
		&partyDB.ID,
		&partyDB.Name,
		&partyDB.Address,
		&partyDB.PostalCode,
		&partyDB.City,
		&partyDB.Country,
		&partyDB.Phone,
		&partyDB.Email,
		&partyDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrPartyNotFound
		}
		return nil, fmt.Errorf("unexpected party repository get %s error: %w", kind, err)
	}

	return ToDomain(&partyDB), nil
}

// GetOrCreateByEmail email - естественный ключ. Существующая запись возвращается как есть, без обновления полей.
func (r *Repository) GetOrCreateByEmail(ctx context.Context, kind entities.PartyKind, party entities.Party) (*entities.Party, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	partyModel := FromDomain(&party)
	partyModel.Email = strings.ToLower(strings.TrimSpace(partyModel.Email))

	query := `
		WITH inserted AS (
			INSERT INTO ` + table + ` (name, address, postal_code, city, country, phone, email)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (email) DO NOTHING
			RETURNING id, name, address, postal_code, city, country, phone, email, created_at
		)
		SELECT id, name, address, postal_code, city, country, phone, email, created_at FROM inserted
		UNION ALL
		SELECT id, name, address, postal_code, city, country, phone, email, created_at
		FROM ` + table + `
		WHERE email = $7
		LIMIT 1
	`

	var partyDB PartyDB
	err = r.querier.QueryRow(
		ctx,
		query,
		partyModel.Name,
		partyModel.Address,
		partyModel.PostalCode,
		partyModel.City,
		partyModel.Country,
		partyModel.Phone,
		partyModel.Email,
	).Scan(
		&partyDB.ID,
		&partyDB.Name,
		&partyDB.Address,
		&partyDB.PostalCode,
		&partyDB.City,
		&partyDB.Country,
		&partyDB.Phone,
		&partyDB.Email,
		&partyDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected party repository get or create %s error: %w", kind, err)
	}

	return ToDomain(&partyDB), nil
}
