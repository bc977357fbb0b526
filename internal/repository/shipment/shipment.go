package shipment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"orchestrator/internal/entities"
	"orchestrator/internal/repository"
)

const shipmentColumns = `s.id, s.reference_number, s.courier_id, c.name, s.shipment_type_id, s.courier_external_id,
	s.shipper_id, s.consignee_id, s.route_id, s.weight, s.weight_unit, s.height, s.width, s.length,
	s.dimension_unit, s.pickup_date, s.special_instructions, s.created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func shipmentDest(s *ShipmentDB) []interface{} {
	return []interface{}{
		&s.ID,
		&s.ReferenceNumber,
		&s.CourierID,
		&s.CourierName,
		&s.ShipmentTypeID,
		&s.CourierExternalID,
		&s.ShipperID,
		&s.ConsigneeID,
		&s.RouteID,
		&s.Weight,
		&s.WeightUnit,
		&s.Height,
		&s.Width,
		&s.Length,
		&s.DimensionUnit,
		&s.PickupDate,
		&s.SpecialInstructions,
		&s.CreatedAt,
	}
}

// Create уникальность reference_number и courier_external_id - ErrShipmentAlreadyExists.
func (r *Repository) Create(ctx context.Context, shipmentCreate entities.ShipmentCreate) (*entities.Shipment, error) {
	shipmentModel := FromDomainCreate(&shipmentCreate)

	query := `
		WITH s AS (
			INSERT INTO shipments (reference_number, courier_id, shipment_type_id, courier_external_id,
				shipper_id, consignee_id, route_id, weight, weight_unit, height, width, length,
				dimension_unit, pickup_date, special_instructions)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			RETURNING *
		)
		SELECT ` + shipmentColumns + `
		FROM s
		JOIN couriers c ON c.id = s.courier_id
	`

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		shipmentModel.ReferenceNumber,
		shipmentModel.CourierID,
		shipmentModel.ShipmentTypeID,
		shipmentModel.CourierExternalID,
		shipmentModel.ShipperID,
		shipmentModel.ConsigneeID,
		shipmentModel.RouteID,
		shipmentModel.Weight,
		shipmentModel.WeightUnit,
		shipmentModel.Height,
		shipmentModel.Width,
		shipmentModel.Length,
		shipmentModel.DimensionUnit,
		shipmentModel.PickupDate,
		shipmentModel.SpecialInstructions,
	).Scan(shipmentDest(&shipmentDB)...)
	if err != nil {
		if repository.IsUniqueViolation(err, repository.ConstraintShipmentReference) {
			return nil, entities.ErrShipmentAlreadyExists
		}
		if repository.IsForeignKeyViolation(err, repository.ConstraintShipmentType) {
			return nil, entities.ErrShipmentTypeNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}

func (r *Repository) GetByReference(ctx context.Context, referenceNumber string) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments s
		JOIN couriers c ON c.id = s.courier_id
		WHERE s.reference_number = $1`

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(ctx, query, referenceNumber).Scan(shipmentDest(&shipmentDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get by reference error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}

// GetByExternalIDForUpdate блокирует строку отправления до конца транзакции,
// так параллельные вебхуки по одному отправлению применяются по очереди.
func (r *Repository) GetByExternalIDForUpdate(ctx context.Context, externalID string) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments s
		JOIN couriers c ON c.id = s.courier_id
		WHERE s.courier_external_id = $1
		FOR UPDATE OF s`

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(ctx, query, externalID).Scan(shipmentDest(&shipmentDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get by external id error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}

func (r *Repository) GetDetailsByReference(ctx context.Context, referenceNumber string) (*entities.ShipmentDetails, error) {
	query := `SELECT ` + shipmentColumns + `,
			sh.id, sh.name, sh.address, sh.postal_code, sh.city, sh.country, sh.phone, sh.email, sh.created_at,
			cn.id, cn.name, cn.address, cn.postal_code, cn.city, cn.country, cn.phone, cn.email, cn.created_at,
			c.id, c.name, c.supports_cancellation, c.is_active, c.created_at, c.updated_at
		FROM shipments s
		JOIN couriers c ON c.id = s.courier_id
		JOIN shippers sh ON sh.id = s.shipper_id
		JOIN consignees cn ON cn.id = s.consignee_id
		WHERE s.reference_number = $1`

	var detailsDB ShipmentDetailsDB
	dest := shipmentDest(&detailsDB.Shipment)
	dest = append(dest,
		&detailsDB.Shipper.ID,
		&detailsDB.Shipper.Name,
		&detailsDB.Shipper.Address,
		&detailsDB.Shipper.PostalCode,
		&detailsDB.Shipper.City,
		&detailsDB.Shipper.Country,
		&detailsDB.Shipper.Phone,
		&detailsDB.Shipper.Email,
		&detailsDB.Shipper.CreatedAt,
		&detailsDB.Consignee.ID,
		&detailsDB.Consignee.Name,
		&detailsDB.Consignee.Address,
		&detailsDB.Consignee.PostalCode,
		&detailsDB.Consignee.City,
		&detailsDB.Consignee.Country,
		&detailsDB.Consignee.Phone,
		&detailsDB.Consignee.Email,
		&detailsDB.Consignee.CreatedAt,
		&detailsDB.Courier.ID,
		&detailsDB.Courier.Name,
		&detailsDB.Courier.SupportsCancellation,
		&detailsDB.Courier.IsActive,
		&detailsDB.Courier.CreatedAt,
		&detailsDB.Courier.UpdatedAt,
	)

	err := r.querier.QueryRow(ctx, query, referenceNumber).Scan(dest...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get details error: %w", err)
	}

	return ToDetailsDomain(&detailsDB), nil
}
