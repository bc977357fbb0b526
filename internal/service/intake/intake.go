package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orchestrator/internal/entities"
	"orchestrator/pkg/logger"
)

type Intake struct {
	log       serviceLogger
	shipments ShipmentRepository
	requests  RequestRepository
	parties   PartyRepository
	reference ReferenceRepository
	txManager TxManager
}

func New(
	log serviceLogger,
	shipments ShipmentRepository,
	requests RequestRepository,
	parties PartyRepository,
	reference ReferenceRepository,
	txManager TxManager,
) *Intake {
	return &Intake{
		log:       log.With(logger.NewField("service", "intake")),
		shipments: shipments,
		requests:  requests,
		parties:   parties,
		reference: reference,
		txManager: txManager,
	}
}

// CreateRequest идемпотентен по номеру: существующее отправление или заявка в работе
// возвращаются без новой работы. Новая заявка создается в статусе pending.
func (i *Intake) CreateRequest(ctx context.Context, req *entities.ShipmentRequestCreate) (*entities.IntakeResult, error) {
	if validationErr := validate(req); validationErr != nil {
		return nil, validationErr
	}

	reference := strings.TrimSpace(req.ReferenceNumber)
	log := i.log.With(logger.NewField("reference_number", reference))

	var result *entities.IntakeResult
	err := i.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		result, err = i.create(ctx, reference, req)
		return err
	})
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return nil, validationErr
		}
		log.Error("create shipment request failed", logger.NewField("error", err))
		return nil, err
	}

	log.Info("shipment request accepted", logger.NewField("outcome", string(result.Outcome)))

	return result, nil
}

func (i *Intake) create(ctx context.Context, reference string, req *entities.ShipmentRequestCreate) (*entities.IntakeResult, error) {
	shipment, err := i.shipments.GetByReference(ctx, reference)
	switch {
	case err == nil:
		return &entities.IntakeResult{Outcome: entities.IntakeExistingShipment, Shipment: shipment}, nil
	case !errors.Is(err, entities.ErrShipmentNotFound):
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	latest, err := i.requests.GetLatestByReference(ctx, reference)
	switch {
	case err == nil && latest.Status.InFlight():
		return &entities.IntakeResult{Outcome: entities.IntakeAlreadyProcessing, Request: latest}, nil
	case err != nil && !errors.Is(err, entities.ErrRequestNotFound):
		return nil, fmt.Errorf("get latest request: %w", err)
	}

	if _, err := i.reference.GetShipmentType(ctx, req.ShipmentTypeID); err != nil {
		if errors.Is(err, entities.ErrShipmentTypeNotFound) {
			return nil, fieldError("shipment_type_id", "Shipment type with this ID does not exist.")
		}
		return nil, fmt.Errorf("get shipment type: %w", err)
	}

	shipper, err := i.resolveParty(ctx, entities.Shipper, req.ShipperID, req.Shipper)
	if err != nil {
		return nil, err
	}

	consignee, err := i.resolveParty(ctx, entities.Consignee, req.ConsigneeID, req.Consignee)
	if err != nil {
		return nil, err
	}

	routeID, err := i.resolveRoute(ctx, req.RouteID, shipper.City, consignee.City)
	if err != nil {
		return nil, err
	}

	request, err := i.requests.Create(ctx, reference, buildBody(req, routeID, shipper, consignee))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return &entities.IntakeResult{Outcome: entities.IntakeNew, Request: request}, nil
}

func (i *Intake) resolveParty(ctx context.Context, kind entities.PartyKind, id *int64, data *entities.Party) (*entities.Party, error) {
	if id != nil && *id > 0 {
		party, err := i.parties.GetByID(ctx, kind, *id)
		if err != nil {
			if errors.Is(err, entities.ErrPartyNotFound) {
				return nil, fieldError(kind.String()+"_id", titleKind(kind)+" with this ID does not exist.")
			}
			return nil, fmt.Errorf("get %s: %w", kind, err)
		}
		return party, nil
	}

	party, err := i.parties.GetOrCreateByEmail(ctx, kind, *data)
	if err != nil {
		return nil, fmt.Errorf("get or create %s: %w", kind, err)
	}
	return party, nil
}

// resolveRoute явный route_id должен существовать, иначе маршрут берется по городам сторон.
func (i *Intake) resolveRoute(ctx context.Context, routeID *int64, origin, destination string) (*int64, error) {
	if routeID != nil {
		route, err := i.reference.GetRouteByID(ctx, *routeID)
		if err != nil {
			if errors.Is(err, entities.ErrRouteNotFound) {
				return nil, fieldError("route_id", "Route with this ID does not exist.")
			}
			return nil, fmt.Errorf("get route: %w", err)
		}
		return &route.ID, nil
	}

	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return nil, nil
	}

	route, err := i.reference.GetOrCreateRoute(ctx, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("get or create route: %w", err)
	}
	return &route.ID, nil
}

func buildBody(req *entities.ShipmentRequestCreate, routeID *int64, shipper, consignee *entities.Party) entities.RequestBody {
	body := entities.RequestBody{
		ShipmentTypeID:      req.ShipmentTypeID,
		RouteID:             routeID,
		ShipperID:           shipper.ID,
		ConsigneeID:         consignee.ID,
		PickupDate:          req.PickupDate,
		Weight:              req.Weight.Value,
		WeightUnit:          req.Weight.Unit,
		DimensionUnit:       entities.DefaultDimensionUnit,
		Items:               req.Items,
		SpecialInstructions: req.SpecialInstructions,
		ShipperCity:         shipper.City,
		ConsigneeCity:       consignee.City,
	}

	if req.Dimensions != nil {
		body.Dimensions = &entities.RequestDimensions{
			Height: req.Dimensions.Height,
			Width:  req.Dimensions.Width,
			Length: req.Dimensions.Length,
		}
		body.DimensionUnit = req.Dimensions.Unit
	}

	return body
}

func titleKind(kind entities.PartyKind) string {
	s := kind.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
