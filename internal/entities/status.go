package entities

import (
	"strings"
	"time"
)

type StatusType string

const (
	StatusCreated        StatusType = "created"
	StatusPickedUp       StatusType = "picked_up"
	StatusInTransit      StatusType = "in_transit"
	StatusOutForDelivery StatusType = "out_for_delivery"
	StatusDelivered      StatusType = "delivered"
	StatusException      StatusType = "exception"
	StatusCancelled      StatusType = "cancelled"
	StatusReturned       StatusType = "returned"
	StatusPending        StatusType = "pending"
	StatusProcessing     StatusType = "processing"
	StatusFailed         StatusType = "failed"
	StatusCompleted      StatusType = "completed"
	StatusUnknown        StatusType = "unknown"
)

func (s StatusType) String() string {
	return string(s)
}

// ParseStatusType нормализует регистр; все вне словаря становится unknown.
func ParseStatusType(raw string) StatusType {
	status := StatusType(strings.ToLower(strings.TrimSpace(raw)))
	switch status {
	case StatusCreated, StatusPickedUp, StatusInTransit, StatusOutForDelivery,
		StatusDelivered, StatusException, StatusCancelled, StatusReturned,
		StatusPending, StatusProcessing, StatusFailed, StatusCompleted:
		return status
	default:
		return StatusUnknown
	}
}

func (s StatusType) DisplayName() string {
	switch s {
	case StatusCreated:
		return "Shipment Created"
	case StatusPickedUp:
		return "Picked Up"
	case StatusInTransit:
		return "In Transit"
	case StatusOutForDelivery:
		return "Out for Delivery"
	case StatusDelivered:
		return "Delivered"
	case StatusException:
		return "Exception"
	case StatusCancelled:
		return "Cancelled"
	case StatusReturned:
		return "Returned"
	case StatusPending:
		return "Pending"
	case StatusProcessing:
		return "Processing"
	case StatusFailed:
		return "Failed"
	case StatusCompleted:
		return "Completed"
	case StatusUnknown:
		return "Unknown"
	default:
		return titleCase(string(s))
	}
}

// IsTerminal после cancelled автоматические изменения статуса подавляются.
func (s StatusType) IsTerminal() bool {
	return s == StatusCancelled
}

func (s StatusType) IsCancellable() bool {
	switch s {
	case StatusCompleted, StatusInTransit, StatusDelivered, StatusCancelled:
		return false
	default:
		return true
	}
}

func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

type StatusLocation struct {
	Address    string
	PostalCode string
	Country    string
}

// ShipmentStatus строка append-only журнала, текущий статус - последняя по created_at.
type ShipmentStatus struct {
	ID         int64
	ShipmentID int64
	Status     StatusType
	Location   StatusLocation
	CreatedAt  time.Time
}

type StatusSummary struct {
	ShipmentID      int64
	ReferenceNumber string
	CurrentStatus   StatusType
	TotalUpdates    int
	LastUpdated     *time.Time
	History         []ShipmentStatus
}
