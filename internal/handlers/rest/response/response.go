package response

import (
	"encoding/json"
	"net/http"

	"orchestrator/internal/entities"
	"orchestrator/internal/gateway/courier"
	"orchestrator/internal/generated/dto"
	"orchestrator/pkg/logger"
)

// Коды ошибок уровня API, коды курьерских ошибок берутся из courier.Code.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidReference = "INVALID_REFERENCE"
	CodeShipmentNotFound = "SHIPMENT_NOT_FOUND"
	CodeInternal         = "INTERNAL_ERROR"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

func Error(w http.ResponseWriter, log errorLogger, status int, message, errText, code string) {
	JSON(w, log, status, dto.ErrorResponse{
		Success:   false,
		Message:   message,
		Error:     errText,
		ErrorCode: code,
	})
}

// Internal текст внутренней ошибки наружу не отдается.
func Internal(w http.ResponseWriter, log errorLogger) {
	Error(w, log, http.StatusInternalServerError, "Internal server error", "internal server error", CodeInternal)
}

func ShipmentNotFound(w http.ResponseWriter, log errorLogger) {
	Error(w, log, http.StatusNotFound, "Shipment not found", entities.ErrShipmentNotFound.Error(), CodeShipmentNotFound)
}

// Courier ответ по ошибке адаптера. Возвращает false, если err не *courier.Error.
func Courier(w http.ResponseWriter, log errorLogger, err error) bool {
	courierErr, ok := courier.AsError(err)
	if !ok {
		return false
	}

	Error(w, log, CourierStatus(courierErr.Code), courierErr.Message, courierErr.Error(), courierErr.Code.String())
	return true
}

func CourierStatus(code courier.Code) int {
	switch code {
	case courier.CodeBadRequest, courier.CodeUnsupportedCourier, courier.CodeCancellationNotSupported:
		return http.StatusBadRequest
	case courier.CodeUnauthorized:
		return http.StatusUnauthorized
	case courier.CodeForbidden:
		return http.StatusForbidden
	case courier.CodeCourierNotFound, courier.CodeShipmentNotFound,
		courier.CodeLabelURLNotFound, courier.CodeTrackingDataNotFound:
		return http.StatusNotFound
	case courier.CodeDatabaseError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}
