package selector

import "errors"

var ErrNoCourierAvailable = errors.New("no courier available for this shipment type and route")
