package dhl

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"orchestrator/internal/entities"
	"orchestrator/internal/gateway/courier"
)

const (
	defaultProfile       = "STANDARD_GRUPPENPROFIL"
	DefaultBillingNumber = "33333333330102"
	defaultProduct       = "V01PAK"
	defaultLabelFormat   = "PDF"

	shipDateLayout = "2006-01-02"
)

// productCode тип отправления -> продукт DHL, неизвестный тип уходит как обычная посылка.
func productCode(shipmentType string) string {
	switch strings.ToUpper(strings.TrimSpace(shipmentType)) {
	case "NORMAL":
		return "V01PAK"
	case "URGENT":
		return "V53WPAK"
	case "SAME_DAY_DELIVERY":
		return "V54EPAK"
	case "ECONOMY":
		return "V55PAK"
	case "EXPRESS_WORLDWIDE":
		return "V62WP"
	case "EXPRESS_WORLDWIDE_IMPORT":
		return "V66WPI"
	default:
		return defaultProduct
	}
}

func toContact(p entities.Party) Contact {
	return Contact{
		Name1:         p.Name,
		AddressStreet: p.Address,
		PostalCode:    p.PostalCode,
		City:          p.City,
		Country:       p.Country,
		Phone:         p.Phone,
		Email:         p.Email,
	}
}

// toOrderRequest единицы веса и габаритов передаются без конвертации.
func toOrderRequest(req *courier.ShipmentRequest, billingNumber string) *OrderRequest {
	shipment := OrderShipment{
		Product:       productCode(req.ShipmentType),
		BillingNumber: billingNumber,
		RefNo:         req.ReferenceNumber,
		ShipDate:      req.PickupDate,
		Shipper:       toContact(req.Shipper),
		Consignee:     toContact(req.Consignee),
		Details: Details{
			Weight: WeightValue{
				UOM:   req.Weight.Unit.String(),
				Value: req.Weight.Value.InexactFloat64(),
			},
		},
	}

	if !req.Dimensions.IsZero() {
		shipment.Details.Dim = &Dim{
			UOM:    req.Dimensions.Unit.String(),
			Length: req.Dimensions.Length.InexactFloat64(),
			Width:  req.Dimensions.Width.InexactFloat64(),
			Height: req.Dimensions.Height.InexactFloat64(),
		}
	}

	return &OrderRequest{
		Profile:   defaultProfile,
		Shipments: []OrderShipment{shipment},
	}
}

func rawJSON(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return raw
}

func toShipmentResult(resp *OrderResponse, estimated time.Time) *courier.ShipmentResult {
	raw := rawJSON(resp)
	if resp == nil || len(resp.Items) == 0 {
		return &courier.ShipmentResult{
			Success:      false,
			ErrorMessage: "No shipment data in DHL response",
			RawResponse:  raw,
		}
	}

	item := resp.Items[0]
	if item.Sstatus != nil && item.Sstatus.StatusCode >= 400 {
		return &courier.ShipmentResult{
			Success:      false,
			ErrorMessage: itemStatusMessage(item.Sstatus),
			RawResponse:  raw,
		}
	}
	if item.ShipmentNo == "" {
		return &courier.ShipmentResult{
			Success:      false,
			ErrorMessage: "No shipment number in DHL response",
			RawResponse:  raw,
		}
	}

	reference := item.ShipmentRefNo
	if reference == "" {
		reference = item.ShipmentNo
	}

	return &courier.ShipmentResult{
		Success:           true,
		TrackingNumber:    item.ShipmentNo,
		CourierReference:  reference,
		EstimatedDelivery: &estimated,
		RawResponse:       raw,
	}
}

func itemStatusMessage(status *Status) string {
	if status.Detail != "" {
		return status.Detail
	}
	if status.Title != "" {
		return status.Title
	}
	return fmt.Sprintf("DHL item status %d", status.StatusCode)
}

func toLabelResult(resp *OrderResponse) *courier.LabelResult {
	if resp == nil || len(resp.Items) == 0 || resp.Items[0].Label == nil {
		return nil
	}

	label := resp.Items[0].Label
	format := label.FileFormat
	if format == "" {
		format = defaultLabelFormat
	}

	return &courier.LabelResult{
		URL:         label.URL,
		Format:      format,
		RawResponse: rawJSON(resp),
	}
}

// parseTimestamp DHL отдает время то с зоной, то без.
func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", shipDateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func toLocation(place *Place) entities.StatusLocation {
	if place == nil {
		return entities.StatusLocation{}
	}
	return entities.StatusLocation{
		Address:    place.Address.AddressLocality,
		PostalCode: place.Address.PostalCode,
		Country:    place.Address.CountryCode,
	}
}

func locality(place *Place) string {
	if place == nil {
		return ""
	}
	return place.Address.AddressLocality
}

func rawTrackingStatus(status TrackingStatus) string {
	if status.Status != "" {
		return status.Status
	}
	return status.StatusCode
}

func toTrackingResult(resp *TrackingResponse) *courier.TrackingResult {
	if resp == nil || len(resp.Shipments) == 0 {
		return nil
	}

	shipment := resp.Shipments[0]
	raw := rawTrackingStatus(shipment.Status)

	result := &courier.TrackingResult{
		TrackingNumber: shipment.ID,
		Service:        shipment.Service,
		CurrentStatus:  MapTrackingStatus(raw),
		RawStatus:      raw,
		Description:    shipment.Status.Description,
		Location:       toLocation(shipment.Status.Location),
		Origin:         locality(shipment.Origin),
		Destination:    locality(shipment.Destination),
		Events:         make([]entities.TrackingEvent, 0, len(shipment.Events)),
	}

	if eta, ok := parseTimestamp(shipment.EstimatedTimeOfDelivery); ok {
		result.EstimatedDelivery = &eta
	}

	for _, event := range shipment.Events {
		timestamp, _ := parseTimestamp(event.Timestamp)
		eventRaw := rawTrackingStatus(event)
		result.Events = append(result.Events, entities.TrackingEvent{
			Timestamp:   timestamp,
			Status:      MapTrackingStatus(eventRaw),
			RawStatus:   eventRaw,
			Description: event.Description,
			Location:    locality(event.Location),
		})
	}

	if details := shipment.Details; details != nil {
		if details.Product != nil {
			result.ProductName = details.Product.ProductName
		}
		if details.Weight != nil {
			result.Weight = strings.TrimSpace(fmt.Sprintf("%g %s", details.Weight.Value, details.Weight.UnitText))
		}
		for _, ref := range details.References {
			result.References = append(result.References, courier.Reference{Number: ref.Number, Type: ref.Type})
		}
	}

	return result
}
