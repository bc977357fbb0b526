package courier_status_changed

import (
	"strings"

	"orchestrator/internal/entities"
)

type statusChangedEvent struct {
	Courier        string        `json:"courier"`
	TrackingNumber string        `json:"tracking_number"`
	Status         string        `json:"status"`
	Location       eventLocation `json:"location"`
}

type eventLocation struct {
	Address    string `json:"address"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

func (e statusChangedEvent) toDomain() *entities.WebhookEvent {
	return &entities.WebhookEvent{
		Courier:        strings.ToLower(strings.TrimSpace(e.Courier)),
		TrackingNumber: strings.TrimSpace(e.TrackingNumber),
		Status:         strings.ToUpper(strings.TrimSpace(e.Status)),
		Location: entities.StatusLocation{
			Address:    e.Location.Address,
			Country:    e.Location.Country,
			PostalCode: e.Location.PostalCode,
		},
	}
}
