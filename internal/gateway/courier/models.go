package courier

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"orchestrator/internal/entities"
)

// ShipmentRequest каноничная модель, которую каждый адаптер переводит в свой payload.
// Единицы веса и габаритов передаются как есть, без неявных конвертаций.
type ShipmentRequest struct {
	ReferenceNumber     string
	ShipmentTypeID      int64
	ShipmentType        string
	Shipper             entities.Party
	Consignee           entities.Party
	Route               entities.Route
	Weight              entities.Weight
	Dimensions          entities.Dimensions
	PickupDate          string
	SpecialInstructions string
}

type ShipmentResult struct {
	Success           bool
	TrackingNumber    string
	CourierReference  string
	EstimatedDelivery *time.Time
	Cost              *decimal.Decimal
	ErrorMessage      string
	RawResponse       json.RawMessage
}

type LabelResult struct {
	URL         string
	Format      string
	RawResponse json.RawMessage
}

type Reference struct {
	Number string
	Type   string
}

type TrackingResult struct {
	TrackingNumber    string
	Service           string
	CurrentStatus     entities.StatusType
	RawStatus         string
	Description       string
	Location          entities.StatusLocation
	Events            []entities.TrackingEvent
	Origin            string
	Destination       string
	ProductName       string
	Weight            string
	References        []Reference
	EstimatedDelivery *time.Time
}

type CancelResult struct {
	Success bool
	Message string
}
