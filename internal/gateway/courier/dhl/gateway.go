package dhl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"orchestrator/internal/gateway/courier"
)

const Name = "dhl"

const unknownShipmentNumber = "UNKNOWN_SHIPMENT_NUMBER"

type Gateway struct {
	api           APIClient
	estimator     deliveryEstimator
	billingNumber string
	now           func() time.Time
}

type GatewayOption func(*Gateway)

func WithBillingNumber(number string) GatewayOption {
	return func(g *Gateway) {
		if number != "" {
			g.billingNumber = number
		}
	}
}

func WithGatewayClock(now func() time.Time) GatewayOption {
	return func(g *Gateway) {
		g.now = now
	}
}

func New(api APIClient, estimator deliveryEstimator, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		api:           api,
		estimator:     estimator,
		billingNumber: DefaultBillingNumber,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var _ courier.CancellableCourier = (*Gateway)(nil)

// CreateShipment ошибка валидации DHL (400) - это отказ в создании, а не сбой транспорта.
func (g *Gateway) CreateShipment(ctx context.Context, req *courier.ShipmentRequest) (*courier.ShipmentResult, error) {
	resp, err := g.api.CreateOrder(ctx, toOrderRequest(req, g.billingNumber))
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
			return &courier.ShipmentResult{
				Success:      false,
				ErrorMessage: apiErr.message(),
				RawResponse:  apiErr.Body,
			}, nil
		}
		return nil, mapAPIError(err, false)
	}

	return toShipmentResult(resp, g.estimator.EstimateDelivery(req.ShipmentType, g.now())), nil
}

func (g *Gateway) FetchLabel(ctx context.Context, externalID string) (*courier.LabelResult, error) {
	resp, err := g.api.GetLabel(ctx, externalID)
	if err != nil {
		return nil, mapAPIError(err, false)
	}

	label := toLabelResult(resp)
	if label == nil || label.URL == "" {
		return nil, courier.NewError(Name, courier.CodeLabelURLNotFound, "Label URL not found in DHL response")
	}
	return label, nil
}

func (g *Gateway) TrackShipment(ctx context.Context, externalID string) (*courier.TrackingResult, error) {
	resp, err := g.api.TrackShipment(ctx, externalID)
	if err != nil {
		return nil, mapAPIError(err, true)
	}

	result := toTrackingResult(resp)
	if result == nil {
		return nil, courier.NewError(Name, courier.CodeTrackingDataNotFound, "No tracking data in DHL response")
	}
	return result, nil
}

func (g *Gateway) CancelShipment(ctx context.Context, externalID string) (*courier.CancelResult, error) {
	resp, err := g.api.CancelOrder(ctx, externalID)
	if err != nil {
		return nil, mapAPIError(err, false)
	}

	if resp != nil && len(resp.Items) > 0 {
		if status := resp.Items[0].Sstatus; status != nil && status.StatusCode >= 400 {
			return &courier.CancelResult{Success: false, Message: itemStatusMessage(status)}, nil
		}
	}

	return &courier.CancelResult{
		Success: true,
		Message: fmt.Sprintf("Shipment %s cancelled with DHL", externalID),
	}, nil
}

// mapAPIError переводит HTTP статус DHL в каноничный код.
// Для трекинга 404 означает неизвестный трекинг номер, а не отсутствие endpoint.
func mapAPIError(err error, tracking bool) *courier.Error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return courier.Normalize(Name, err)
	}

	code := courier.CodeAPIError
	switch {
	case apiErr.StatusCode == http.StatusBadRequest:
		code = courier.CodeBadRequest
		if strings.Contains(strings.ToUpper(apiErr.message()+" "+string(apiErr.Body)), unknownShipmentNumber) {
			code = courier.CodeShipmentNotFound
		}
	case apiErr.StatusCode == http.StatusUnauthorized:
		code = courier.CodeUnauthorized
	case apiErr.StatusCode == http.StatusForbidden:
		code = courier.CodeForbidden
	case apiErr.StatusCode == http.StatusNotFound:
		code = courier.CodeCourierNotFound
		if tracking {
			code = courier.CodeShipmentNotFound
		}
	case apiErr.StatusCode >= http.StatusInternalServerError:
		code = courier.CodeServerError
	}

	return courier.NewError(Name, code, apiErr.message()).
		WithStatusCode(apiErr.StatusCode).
		WithCause(err)
}
