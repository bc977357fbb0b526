package entities

import "time"

type TrackingSource string

const (
	TrackingSourceLocal   TrackingSource = "local"
	TrackingSourceCourier TrackingSource = "courier"
)

type TrackingEvent struct {
	Timestamp   time.Time
	Status      StatusType
	RawStatus   string
	Description string
	Location    string
}

// TrackingView ответ трекинга, не зависящий от провайдера.
type TrackingView struct {
	ReferenceNumber   string
	TrackingNumber    string
	Courier           string
	CurrentStatus     StatusType
	CurrentLocation   string
	Origin            Party
	Destination       Party
	Events            []TrackingEvent
	EstimatedDelivery *time.Time
	Source            TrackingSource
}

// WebhookEvent данные, извлеченные из тела вебхука. Status уже в верхнем регистре.
type WebhookEvent struct {
	Courier        string
	TrackingNumber string
	Status         string
	Location       StatusLocation
}

type WebhookOutcome string

const (
	WebhookProcessed        WebhookOutcome = "processed"
	WebhookDuplicateIgnored WebhookOutcome = "duplicate_ignored"
	WebhookCancelledIgnored WebhookOutcome = "cancelled_ignored"
)

type WebhookResult struct {
	Outcome         WebhookOutcome
	ShipmentID      int64
	ReferenceNumber string
	StatusEntryID   int64
	MappedStatus    StatusType
}
