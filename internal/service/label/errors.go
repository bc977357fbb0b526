package label

import "errors"

var ErrInvalidReference = errors.New("invalid reference number")
