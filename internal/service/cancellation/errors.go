package cancellation

import "errors"

var (
	ErrInvalidReference     = errors.New("invalid reference number")
	ErrNoStatusFound        = errors.New("no status found for shipment")
	ErrStatusNotCancellable = errors.New("shipment status does not allow cancellation")
)
