package creation

import "errors"

var (
	ErrMissingTrackingNumber = errors.New("courier response has no tracking number")
	ErrUnsuccessfulResult    = errors.New("courier response is not successful")
)
