package shipment

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShipmentDB struct {
	ID                  int64
	ReferenceNumber     string
	CourierID           int64
	CourierName         string
	ShipmentTypeID      int64
	CourierExternalID   string
	ShipperID           int64
	ConsigneeID         int64
	RouteID             *int64
	Weight              decimal.Decimal
	WeightUnit          string
	Height              decimal.NullDecimal
	Width               decimal.NullDecimal
	Length              decimal.NullDecimal
	DimensionUnit       *string
	PickupDate          *time.Time
	SpecialInstructions string
	CreatedAt           time.Time
}

type PartyDB struct {
	ID         int64
	Name       string
	Address    string
	PostalCode string
	City       string
	Country    string
	Phone      string
	Email      string
	CreatedAt  time.Time
}

type CourierDB struct {
	ID                   int64
	Name                 string
	SupportsCancellation bool
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type ShipmentDetailsDB struct {
	Shipment  ShipmentDB
	Shipper   PartyDB
	Consignee PartyDB
	Courier   CourierDB
}
