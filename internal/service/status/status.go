package status

import (
	"context"
	"fmt"
	"strings"

	"orchestrator/internal/entities"
)

type Status struct {
	shipments ShipmentRepository
	statuses  StatusRepository
	couriers  CourierGateway
}

func New(shipments ShipmentRepository, statuses StatusRepository, couriers CourierGateway) *Status {
	return &Status{
		shipments: shipments,
		statuses:  statuses,
		couriers:  couriers,
	}
}

// GetSummary текущий статус - последняя запись журнала. Пустой журнал дает unknown.
func (s *Status) GetSummary(ctx context.Context, referenceNumber string) (*entities.StatusSummary, error) {
	if !isValidReference(referenceNumber) {
		return nil, ErrInvalidReference
	}

	shipment, err := s.shipments.GetByReference(ctx, referenceNumber)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	history, err := s.statuses.History(ctx, shipment.ID)
	if err != nil {
		return nil, fmt.Errorf("get status history: %w", err)
	}

	summary := &entities.StatusSummary{
		ShipmentID:      shipment.ID,
		ReferenceNumber: shipment.ReferenceNumber,
		CurrentStatus:   entities.StatusUnknown,
		TotalUpdates:    len(history),
		History:         history,
	}
	if len(history) > 0 {
		latest := history[len(history)-1]
		summary.CurrentStatus = latest.Status
		lastUpdated := latest.CreatedAt
		summary.LastUpdated = &lastUpdated
	}

	return summary, nil
}

// Track по умолчанию собирает ответ только из локального журнала.
// live=true дополнительно запрашивает курьера, журнал при этом не меняется.
func (s *Status) Track(ctx context.Context, referenceNumber string, live bool) (*entities.TrackingView, error) {
	if !isValidReference(referenceNumber) {
		return nil, ErrInvalidReference
	}

	details, err := s.shipments.GetDetailsByReference(ctx, referenceNumber)
	if err != nil {
		return nil, fmt.Errorf("get shipment details: %w", err)
	}

	if live {
		return s.trackLive(ctx, details)
	}

	history, err := s.statuses.History(ctx, details.Shipment.ID)
	if err != nil {
		return nil, fmt.Errorf("get status history: %w", err)
	}

	return buildTrackingView(details, history), nil
}

func (s *Status) trackLive(ctx context.Context, details *entities.ShipmentDetails) (*entities.TrackingView, error) {
	result, err := s.couriers.TrackShipment(ctx, details.Courier.Name, details.Shipment.CourierExternalID)
	if err != nil {
		return nil, err
	}

	view := &entities.TrackingView{
		ReferenceNumber:   details.Shipment.ReferenceNumber,
		TrackingNumber:    details.Shipment.CourierExternalID,
		Courier:           details.Courier.Name,
		CurrentStatus:     result.CurrentStatus,
		CurrentLocation:   formatLocation(result.Location),
		Origin:            details.Shipper,
		Destination:       details.Consignee,
		Events:            result.Events,
		EstimatedDelivery: result.EstimatedDelivery,
		Source:            entities.TrackingSourceCourier,
	}
	if view.Events == nil {
		view.Events = []entities.TrackingEvent{}
	}

	return view, nil
}

func buildTrackingView(details *entities.ShipmentDetails, history []entities.ShipmentStatus) *entities.TrackingView {
	view := &entities.TrackingView{
		ReferenceNumber: details.Shipment.ReferenceNumber,
		TrackingNumber:  details.Shipment.CourierExternalID,
		Courier:         details.Courier.Name,
		CurrentStatus:   entities.StatusUnknown,
		Origin:          details.Shipper,
		Destination:     details.Consignee,
		Events:          make([]entities.TrackingEvent, 0, len(history)),
		Source:          entities.TrackingSourceLocal,
	}

	for _, entry := range history {
		view.Events = append(view.Events, entities.TrackingEvent{
			Timestamp:   entry.CreatedAt,
			Status:      entry.Status,
			RawStatus:   entry.Status.String(),
			Description: entry.Status.DisplayName(),
			Location:    formatLocation(entry.Location),
		})
	}

	if len(history) > 0 {
		latest := history[len(history)-1]
		view.CurrentStatus = latest.Status
		view.CurrentLocation = formatLocation(latest.Location)
	}

	return view
}

func formatLocation(location entities.StatusLocation) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{location.Address, location.PostalCode, location.Country} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
