package entities

import "time"

// Shipment создается ровно один раз на успешно отправленную заявку и после не меняется.
type Shipment struct {
	ID                  int64
	ReferenceNumber     string
	CourierID           int64
	CourierName         string
	ShipmentTypeID      int64
	CourierExternalID   string
	ShipperID           int64
	ConsigneeID         int64
	RouteID             *int64
	Weight              Weight
	Dimensions          Dimensions
	PickupDate          string
	SpecialInstructions string
	CreatedAt           time.Time
}

// ShipmentCreate данные для вставки, внешний id берется из ответа адаптера.
type ShipmentCreate struct {
	ReferenceNumber     string
	CourierID           int64
	ShipmentTypeID      int64
	CourierExternalID   string
	ShipperID           int64
	ConsigneeID         int64
	RouteID             *int64
	Weight              Weight
	Dimensions          Dimensions
	PickupDate          string
	SpecialInstructions string
}

// ShipmentDetails отправление со связанными справочниками, нужен для tracking view.
type ShipmentDetails struct {
	Shipment  Shipment
	Shipper   Party
	Consignee Party
	Courier   Courier
}

type ShipmentLabel struct {
	ID              int64
	ShipmentID      int64
	ReferenceNumber string
	URL             string
	Format          string
	IsActive        bool
	CreatedAt       time.Time
}

type CancellationResult struct {
	ShipmentID      int64
	ReferenceNumber string
	Courier         string
	Message         string
	StatusEntryID   int64
}
