package webhook

import (
	"encoding/json"
	"fmt"
	"strings"

	"orchestrator/internal/entities"
)

// Провайдеры присылают идентификатор и статус под разными ключами, порядок задает приоритет.
var (
	trackingKeys = []string{"tracking_number", "trackingNumber", "shipmentId", "shipment_id", "id", "trackingId", "tracking_id"}
	statusKeys   = []string{"status", "statusCode", "status_code", "eventType", "event_type", "state", "currentStatus", "current_status"}
	stringKeys   = []string{"trackingNumber", "status", "timestamp"}
)

type payloadLocation struct {
	AddressLocality string `json:"addressLocality"`
	CountryCode     string `json:"countryCode"`
	PostalCode      string `json:"postalCode"`
}

// ParsePayload проверяет тело вебхука и достает из него событие.
// Невалидный JSON - ErrInvalidJSON, пустое тело или нет обязательных полей - ErrInvalidPayload.
func ParsePayload(courierName string, raw []byte) (*entities.WebhookEvent, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidPayload)
	}

	for _, key := range stringKeys {
		value, ok := payload[key]
		if !ok || isNull(value) {
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return nil, fmt.Errorf("%w: field %q is not a string", ErrInvalidPayload, key)
		}
	}

	trackingNumber := firstValue(payload, trackingKeys)
	if trackingNumber == "" {
		return nil, fmt.Errorf("%w: no tracking identifier found", ErrInvalidPayload)
	}

	status := firstValue(payload, statusKeys)
	if status == "" {
		return nil, fmt.Errorf("%w: no status information found", ErrInvalidPayload)
	}

	event := &entities.WebhookEvent{
		Courier:        strings.ToLower(strings.TrimSpace(courierName)),
		TrackingNumber: trackingNumber,
		Status:         strings.ToUpper(status),
	}

	if value, ok := payload["location"]; ok && !isNull(value) {
		var location payloadLocation
		if err := json.Unmarshal(value, &location); err == nil {
			event.Location = entities.StatusLocation{
				Address:    location.AddressLocality,
				PostalCode: location.PostalCode,
				Country:    location.CountryCode,
			}
		}
	}

	return event, nil
}

// firstValue строки и числа приводятся к строке, пустые значения пропускаются.
func firstValue(payload map[string]json.RawMessage, keys []string) string {
	for _, key := range keys {
		value, ok := payload[key]
		if !ok || isNull(value) {
			continue
		}

		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
			continue
		}

		var n json.Number
		if err := json.Unmarshal(value, &n); err == nil && n.String() != "" {
			return n.String()
		}
	}
	return ""
}

func isNull(value json.RawMessage) bool {
	return strings.TrimSpace(string(value)) == "null"
}
