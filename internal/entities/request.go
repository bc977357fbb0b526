package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestProcessing RequestStatus = "processing"
	RequestCompleted  RequestStatus = "completed"
	RequestFailed     RequestStatus = "failed"
	RequestCancelled  RequestStatus = "cancelled"
)

// MaxRequestRetries после стольких попыток заявка больше не попадает в батч.
const MaxRequestRetries = 3

func (s RequestStatus) String() string {
	return string(s)
}

func (s RequestStatus) InFlight() bool {
	return s == RequestPending || s == RequestProcessing
}

type RequestItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Weight      decimal.Decimal `json:"weight"`
}

type RequestDimensions struct {
	Height decimal.Decimal `json:"height"`
	Width  decimal.Decimal `json:"width"`
	Length decimal.Decimal `json:"length"`
}

// RequestBody неизменяемое намерение, сохраняется как JSONB.
type RequestBody struct {
	ShipmentTypeID      int64              `json:"shipment_type_id"`
	RouteID             *int64             `json:"route_id,omitempty"`
	ShipperID           int64              `json:"shipper_id"`
	ConsigneeID         int64              `json:"consignee_id"`
	PickupDate          string             `json:"pickup_date,omitempty"`
	Weight              decimal.Decimal    `json:"weight"`
	WeightUnit          WeightUnit         `json:"weight_unit"`
	Dimensions          *RequestDimensions `json:"dimensions,omitempty"`
	DimensionUnit       DimensionUnit      `json:"dimension_unit"`
	Items               []RequestItem      `json:"items,omitempty"`
	SpecialInstructions string             `json:"special_instructions,omitempty"`
	ShipperCity         string             `json:"shipper_city"`
	ConsigneeCity       string             `json:"consignee_city"`
}

func (b RequestBody) ToWeight() Weight {
	return Weight{Value: b.Weight, Unit: b.WeightUnit}
}

func (b RequestBody) ToDimensions() Dimensions {
	if b.Dimensions == nil {
		return Dimensions{Unit: b.DimensionUnit}
	}
	return Dimensions{
		Height: b.Dimensions.Height,
		Width:  b.Dimensions.Width,
		Length: b.Dimensions.Length,
		Unit:   b.DimensionUnit,
	}
}

type ShipmentRequest struct {
	ID              int64
	ReferenceNumber string
	Body            RequestBody
	Status          RequestStatus
	Retries         int
	LastRetriedAt   *time.Time
	FailedReason    *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type BatchDetail struct {
	RequestID       int64
	ReferenceNumber string
	Success         bool
	Courier         string
	Error           string
}

// BatchSummary единственный наблюдаемый снаружи результат прогона батча.
type BatchSummary struct {
	Total      int
	Successful int
	Failed     int
	Details    []BatchDetail
}

func (s *BatchSummary) Add(detail BatchDetail) {
	s.Total++
	if detail.Success {
		s.Successful++
	} else {
		s.Failed++
	}
	s.Details = append(s.Details, detail)
}

type IntakeOutcome string

const (
	IntakeNew               IntakeOutcome = "new"
	IntakeExistingShipment  IntakeOutcome = "existing_shipment"
	IntakeAlreadyProcessing IntakeOutcome = "already_processing"
)

// ShipmentRequestCreate - провалидированный вход intake, стороны заданы id либо данными.
type ShipmentRequestCreate struct {
	ReferenceNumber     string
	ShipmentTypeID      int64
	RouteID             *int64
	ShipperID           *int64
	Shipper             *Party
	ConsigneeID         *int64
	Consignee           *Party
	PickupDate          string
	Weight              Weight
	Dimensions          *Dimensions
	Items               []RequestItem
	SpecialInstructions string
}

type IntakeResult struct {
	Outcome  IntakeOutcome
	Request  *ShipmentRequest
	Shipment *Shipment
}
