package creation

import (
	"context"
	"errors"
	"fmt"

	"orchestrator/internal/entities"
	"orchestrator/internal/gateway/courier"
)

type Creation struct {
	shipmentTypes ShipmentTypeRepository
	shipments     ShipmentRepository
	statuses      StatusRepository
	txManager     TxManager
}

func New(
	shipmentTypes ShipmentTypeRepository,
	shipments ShipmentRepository,
	statuses StatusRepository,
	txManager TxManager,
) *Creation {
	return &Creation{
		shipmentTypes: shipmentTypes,
		shipments:     shipments,
		statuses:      statuses,
		txManager:     txManager,
	}
}

// CreateShipment сохраняет принятое курьером отправление и начальный статус created.
// Внутри внешней транзакции (батч) присоединяется к ней.
func (c *Creation) CreateShipment(
	ctx context.Context,
	req *courier.ShipmentRequest,
	result *courier.ShipmentResult,
	selected entities.Courier,
) (*entities.Shipment, error) {
	if result == nil || !result.Success {
		return nil, ErrUnsuccessfulResult
	}
	if result.TrackingNumber == "" {
		return nil, ErrMissingTrackingNumber
	}

	var created *entities.Shipment
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		shipmentType, err := c.shipmentTypes.GetShipmentType(ctx, req.ShipmentTypeID)
		if err != nil {
			return fmt.Errorf("get shipment type: %w", err)
		}

		shipmentCreate := entities.ShipmentCreate{
			ReferenceNumber:     req.ReferenceNumber,
			CourierID:           selected.ID,
			ShipmentTypeID:      shipmentType.ID,
			CourierExternalID:   result.TrackingNumber,
			ShipperID:           req.Shipper.ID,
			ConsigneeID:         req.Consignee.ID,
			Weight:              req.Weight,
			Dimensions:          req.Dimensions,
			PickupDate:          req.PickupDate,
			SpecialInstructions: req.SpecialInstructions,
		}
		if req.Route.ID > 0 {
			routeID := req.Route.ID
			shipmentCreate.RouteID = &routeID
		}

		shipment, err := c.shipments.Create(ctx, shipmentCreate)
		if err != nil {
			if errors.Is(err, entities.ErrShipmentAlreadyExists) {
				return err
			}
			return fmt.Errorf("create shipment: %w", err)
		}

		_, err = c.statuses.Append(ctx, entities.ShipmentStatus{
			ShipmentID: shipment.ID,
			Status:     entities.StatusCreated,
			Location: entities.StatusLocation{
				Address:    req.Shipper.FullAddress(),
				PostalCode: req.Shipper.PostalCode,
				Country:    req.Shipper.Country,
			},
		})
		if err != nil {
			return fmt.Errorf("append initial status: %w", err)
		}

		created = shipment
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
