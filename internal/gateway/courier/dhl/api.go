package dhl

import (
	"context"
	"fmt"
)

// APIClient абстракция над DHL Parcel DE Shipping v2 и Unified Tracking API.
// Боевая реализация - HTTPAPIClient, для локального запуска и тестов - MockAPIClient.
type APIClient interface {
	// CreateOrder POST /parcel/de/shipping/v2/orders?validate=false
	CreateOrder(ctx context.Context, req *OrderRequest) (*OrderResponse, error)

	// GetLabel GET /parcel/de/shipping/v2/orders?shipment={shipmentNo}
	GetLabel(ctx context.Context, shipmentNo string) (*OrderResponse, error)

	// CancelOrder DELETE /parcel/de/shipping/v2/orders?shipment={shipmentNo}
	CancelOrder(ctx context.Context, shipmentNo string) (*OrderResponse, error)

	// TrackShipment GET /track/shipments?trackingNumber={trackingNumber}
	TrackShipment(ctx context.Context, trackingNumber string) (*TrackingResponse, error)
}

type OrderRequest struct {
	Profile   string          `json:"profile"`
	Shipments []OrderShipment `json:"shipments"`
}

type OrderShipment struct {
	Product       string  `json:"product"`
	BillingNumber string  `json:"billingNumber"`
	RefNo         string  `json:"refNo,omitempty"`
	ShipDate      string  `json:"shipDate,omitempty"`
	Shipper       Contact `json:"shipper"`
	Consignee     Contact `json:"consignee"`
	Details       Details `json:"details"`
}

type Contact struct {
	Name1         string `json:"name1"`
	AddressStreet string `json:"addressStreet"`
	PostalCode    string `json:"postalCode"`
	City          string `json:"city"`
	Country       string `json:"country"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
}

type Details struct {
	Dim    *Dim        `json:"dim,omitempty"`
	Weight WeightValue `json:"weight"`
}

type Dim struct {
	UOM    string  `json:"uom"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type WeightValue struct {
	UOM   string  `json:"uom"`
	Value float64 `json:"value"`
}

type Status struct {
	Title      string `json:"title"`
	StatusCode int    `json:"statusCode"`
	Detail     string `json:"detail,omitempty"`
}

type OrderResponse struct {
	Status *Status     `json:"status,omitempty"`
	Items  []OrderItem `json:"items"`
}

type OrderItem struct {
	ShipmentNo         string              `json:"shipmentNo"`
	ShipmentRefNo      string              `json:"shipmentRefNo,omitempty"`
	Sstatus            *Status             `json:"sstatus,omitempty"`
	Label              *Document           `json:"label,omitempty"`
	ValidationMessages []ValidationMessage `json:"validationMessages,omitempty"`
}

type Document struct {
	URL        string `json:"url,omitempty"`
	FileFormat string `json:"fileFormat,omitempty"`
	B64        string `json:"b64,omitempty"`
}

type ValidationMessage struct {
	Property          string `json:"property"`
	ValidationMessage string `json:"validationMessage"`
	ValidationState   string `json:"validationState"`
}

type TrackingResponse struct {
	Shipments []TrackedShipment `json:"shipments"`
}

type TrackedShipment struct {
	ID                      string           `json:"id"`
	Service                 string           `json:"service"`
	Status                  TrackingStatus   `json:"status"`
	EstimatedTimeOfDelivery string           `json:"estimatedTimeOfDelivery,omitempty"`
	Events                  []TrackingStatus `json:"events"`
	Origin                  *Place           `json:"origin,omitempty"`
	Destination             *Place           `json:"destination,omitempty"`
	Details                 *TrackedDetails  `json:"details,omitempty"`
}

type TrackingStatus struct {
	Timestamp   string `json:"timestamp"`
	StatusCode  string `json:"statusCode,omitempty"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
	Location    *Place `json:"location,omitempty"`
}

type Place struct {
	Address Address `json:"address"`
}

type Address struct {
	AddressLocality string `json:"addressLocality"`
	CountryCode     string `json:"countryCode,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	StreetAddress   string `json:"streetAddress,omitempty"`
}

type TrackedDetails struct {
	Product    *Product           `json:"product,omitempty"`
	Weight     *Measure           `json:"weight,omitempty"`
	References []TrackedReference `json:"references,omitempty"`
}

type Product struct {
	ProductName string `json:"productName"`
}

type Measure struct {
	Value    float64 `json:"value"`
	UnitText string  `json:"unitText"`
}

type TrackedReference struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

// APIError не-2xx ответ DHL. ItemStatus - detail из items[0].sstatus, если он есть.
type APIError struct {
	StatusCode int
	Title      string
	Detail     string
	ItemStatus string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dhl api status %d: %s", e.StatusCode, e.message())
}

func (e *APIError) message() string {
	switch {
	case e.ItemStatus != "":
		return e.ItemStatus
	case e.Detail != "":
		return e.Detail
	default:
		return e.Title
	}
}
