package lifecycle

import "errors"

var (
	ErrBatchInProgress = errors.New("another batch run is in progress")

	ErrPartiesNotFound    = errors.New("shipper or consignee not found")
	ErrNoCourierAvailable = errors.New("no courier available")
)

// Тексты failed_reason, видимые оператору.
const (
	reasonPartiesNotFound = "Shipper or consignee not found"
	reasonNoCourier       = "No courier available for this shipment type and route"
	reasonAlreadyExists   = "Shipment already exists for this reference number"
)
