package status

import "errors"

var ErrInvalidReference = errors.New("invalid reference number")
