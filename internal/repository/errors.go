package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrForeignKeyViolation = "23503"
	PgErrUniqueViolation     = "23505"
)

// Имена ограничений из migrations/, postgres генерирует их как <table>_<column>_key / _fkey.
const (
	ConstraintShipmentReference = "shipments_reference_number_key"
	ConstraintShipmentType      = "shipments_shipment_type_id_fkey"
)

// IsUniqueViolation пустой constraint совпадает с любым уникальным ограничением.
func IsUniqueViolation(err error, constraint string) bool {
	return isConstraintViolation(err, PgErrUniqueViolation, constraint)
}

func IsForeignKeyViolation(err error, constraint string) bool {
	return isConstraintViolation(err, PgErrForeignKeyViolation, constraint)
}

func isConstraintViolation(err error, code, constraint string) bool {
	pgErr, ok := pgError(err, code)
	if !ok {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

func pgError(err error, code string) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr, true
	}
	return nil, false
}
