package shipment_request

import "time"

type ShipmentRequestDB struct {
	ID              int64
	ReferenceNumber string
	RequestBody     []byte
	Status          string
	Retries         int
	LastRetriedAt   *time.Time
	FailedReason    *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
