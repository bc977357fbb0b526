package courier

import (
	"context"
	"errors"
	"fmt"
)

type Code string

// Закрытая таксономия ошибок адаптеров, по ней handlers выбирают HTTP статус.
const (
	CodeBadRequest               Code = "COURIER_BAD_REQUEST"
	CodeUnauthorized             Code = "COURIER_UNAUTHORIZED"
	CodeForbidden                Code = "COURIER_FORBIDDEN"
	CodeCourierNotFound          Code = "COURIER_NOT_FOUND"
	CodeServerError              Code = "COURIER_SERVER_ERROR"
	CodeShipmentNotFound         Code = "SHIPMENT_NOT_FOUND_IN_COURIER"
	CodeLabelURLNotFound         Code = "LABEL_URL_NOT_FOUND"
	CodeTrackingDataNotFound     Code = "TRACKING_DATA_NOT_FOUND"
	CodeAPIError                 Code = "COURIER_API_ERROR"
	CodeUnsupportedCourier       Code = "UNSUPPORTED_COURIER"
	CodeCancellationNotSupported Code = "CANCELLATION_NOT_SUPPORTED"
	CodeCancellationFailed       Code = "COURIER_CANCELLATION_FAILED"
	CodeCreationFailed           Code = "SHIPMENT_CREATION_FAILED"
	CodeDatabaseError            Code = "DATABASE_ERROR"
)

func (c Code) String() string {
	return string(c)
}

// Error каноничная ошибка адаптера. errors.Is сравнивает только Code.
type Error struct {
	Courier    string
	Code       Code
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error (%s): %s: %v", e.Courier, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error (%s): %s", e.Courier, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func NewError(courierName string, code Code, message string) *Error {
	return &Error{
		Courier: courierName,
		Code:    code,
		Message: message,
	}
}

func (e *Error) WithStatusCode(statusCode int) *Error {
	e.StatusCode = statusCode
	return e
}

func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// Сентинелы для errors.Is.
var (
	ErrBadRequest               = &Error{Code: CodeBadRequest}
	ErrUnauthorized             = &Error{Code: CodeUnauthorized}
	ErrForbidden                = &Error{Code: CodeForbidden}
	ErrCourierNotFound          = &Error{Code: CodeCourierNotFound}
	ErrServerError              = &Error{Code: CodeServerError}
	ErrShipmentNotFound         = &Error{Code: CodeShipmentNotFound}
	ErrLabelURLNotFound         = &Error{Code: CodeLabelURLNotFound}
	ErrTrackingDataNotFound     = &Error{Code: CodeTrackingDataNotFound}
	ErrAPIError                 = &Error{Code: CodeAPIError}
	ErrUnsupportedCourier       = &Error{Code: CodeUnsupportedCourier}
	ErrCancellationNotSupported = &Error{Code: CodeCancellationNotSupported}
	ErrCancellationFailed       = &Error{Code: CodeCancellationFailed}
	ErrCreationFailed           = &Error{Code: CodeCreationFailed}
	ErrDatabaseError            = &Error{Code: CodeDatabaseError}
)

// AsError достает *Error из цепочки.
func AsError(err error) (*Error, bool) {
	var courierErr *Error
	if errors.As(err, &courierErr) {
		return courierErr, true
	}
	return nil, false
}

// Normalize приводит любую ошибку адаптера к *Error, сохраняя исходную как Cause.
func Normalize(courierName string, err error) *Error {
	if err == nil {
		return nil
	}
	if courierErr, ok := AsError(err); ok {
		if courierErr.Courier != "" {
			return courierErr
		}
		withCourier := *courierErr
		withCourier.Courier = courierName
		return &withCourier
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewError(courierName, CodeAPIError, "courier request timed out").WithCause(err)
	}
	return NewError(courierName, CodeAPIError, "courier request failed").WithCause(err)
}
