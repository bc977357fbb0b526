package dhl

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockAPIClient эмулирует DHL без сети: номера вида DHL<hex>, ярлыки и трекинг
// отдаются только для созданных через него отправлений.
type MockAPIClient struct {
	mu     sync.Mutex
	orders map[string]OrderShipment
	now    func() time.Time
}

func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{
		orders: make(map[string]OrderShipment),
		now:    time.Now,
	}
}

func (m *MockAPIClient) CreateOrder(_ context.Context, req *OrderRequest) (*OrderResponse, error) {
	if req == nil || len(req.Shipments) == 0 {
		return nil, &APIError{StatusCode: http.StatusBadRequest, Title: "Bad Request", Detail: "no shipments in request"}
	}

	shipment := req.Shipments[0]
	shipmentNo := "DHL" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])

	m.mu.Lock()
	m.orders[shipmentNo] = shipment
	m.mu.Unlock()

	return &OrderResponse{
		Status: &Status{Title: "OK", StatusCode: http.StatusOK},
		Items: []OrderItem{{
			ShipmentNo:    shipmentNo,
			ShipmentRefNo: shipment.RefNo,
			Sstatus:       &Status{Title: "OK", StatusCode: http.StatusOK},
			Label:         &Document{URL: mockLabelURL(shipmentNo), FileFormat: defaultLabelFormat},
		}},
	}, nil
}

func (m *MockAPIClient) GetLabel(_ context.Context, shipmentNo string) (*OrderResponse, error) {
	if _, ok := m.lookup(shipmentNo); !ok {
		return nil, unknownShipment(shipmentNo)
	}

	return &OrderResponse{
		Status: &Status{Title: "OK", StatusCode: http.StatusOK},
		Items: []OrderItem{{
			ShipmentNo: shipmentNo,
			Sstatus:    &Status{Title: "OK", StatusCode: http.StatusOK},
			Label:      &Document{URL: mockLabelURL(shipmentNo), FileFormat: defaultLabelFormat},
		}},
	}, nil
}

func (m *MockAPIClient) CancelOrder(_ context.Context, shipmentNo string) (*OrderResponse, error) {
	m.mu.Lock()
	_, ok := m.orders[shipmentNo]
	delete(m.orders, shipmentNo)
	m.mu.Unlock()

	if !ok {
		return nil, unknownShipment(shipmentNo)
	}

	return &OrderResponse{
		Status: &Status{Title: "OK", StatusCode: http.StatusOK},
		Items: []OrderItem{{
			ShipmentNo: shipmentNo,
			Sstatus:    &Status{Title: "OK", StatusCode: http.StatusOK},
		}},
	}, nil
}

func (m *MockAPIClient) TrackShipment(_ context.Context, trackingNumber string) (*TrackingResponse, error) {
	shipment, ok := m.lookup(trackingNumber)
	if !ok {
		return nil, &APIError{StatusCode: http.StatusNotFound, Title: "Not Found", Detail: "No shipment with given tracking number found."}
	}

	now := m.now().UTC()
	origin := &Place{Address: Address{AddressLocality: shipment.Shipper.City, CountryCode: shipment.Shipper.Country}}
	destination := &Place{Address: Address{AddressLocality: shipment.Consignee.City, CountryCode: shipment.Consignee.Country}}
	current := TrackingStatus{
		Timestamp:   now.Format(time.RFC3339),
		StatusCode:  "transit",
		Status:      "DEPARTURE FROM ORIGIN FACILITY",
		Description: "The shipment has left the origin facility",
		Location:    origin,
	}

	return &TrackingResponse{
		Shipments: []TrackedShipment{{
			ID:                      trackingNumber,
			Service:                 "parcel-de",
			Status:                  current,
			EstimatedTimeOfDelivery: now.Add(72 * time.Hour).Format(time.RFC3339),
			Origin:                  origin,
			Destination:             destination,
			Events: []TrackingStatus{
				current,
				{
					Timestamp:   now.Add(-2 * time.Hour).Format(time.RFC3339),
					StatusCode:  "pre-transit",
					Status:      "LABEL CREATED",
					Description: "The shipment data was transmitted to DHL",
					Location:    origin,
				},
			},
			Details: &TrackedDetails{
				Product: &Product{ProductName: shipment.Product},
				Weight:  &Measure{Value: shipment.Details.Weight.Value, UnitText: shipment.Details.Weight.UOM},
				References: []TrackedReference{
					{Number: shipment.RefNo, Type: "customer-reference"},
				},
			},
		}},
	}, nil
}

func (m *MockAPIClient) lookup(shipmentNo string) (OrderShipment, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	shipment, ok := m.orders[shipmentNo]
	return shipment, ok
}

func mockLabelURL(shipmentNo string) string {
	return fmt.Sprintf("https://mock.dhl.local/labels/%s.pdf", shipmentNo)
}

func unknownShipment(shipmentNo string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Title:      "Bad Request",
		Detail:     fmt.Sprintf("%s: %s", unknownShipmentNumber, shipmentNo),
	}
}
