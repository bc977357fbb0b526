package webhook

import "errors"

var (
	ErrUnauthorized   = errors.New("invalid or missing api key")
	ErrInvalidJSON    = errors.New("invalid JSON payload")
	ErrInvalidPayload = errors.New("invalid webhook payload")
)
