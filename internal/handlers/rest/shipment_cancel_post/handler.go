package shipment_cancel_post

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"orchestrator/internal/entities"
	"orchestrator/internal/generated/dto"
	"orchestrator/internal/handlers/rest/response"
	"orchestrator/internal/service/cancellation"
	"orchestrator/pkg/logger"
)

const (
	codeNoStatusFound        = "NO_STATUS_FOUND"
	codeStatusNotCancellable = "STATUS_NOT_CANCELLABLE"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "shipment_cancel_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	result, err := h.service.Cancel(r.Context(), reference)
	if err != nil {
		h.writeError(w, reference, err)
		return
	}

	h.log.Info("shipment cancelled",
		logger.NewField("reference_number", result.ReferenceNumber),
		logger.NewField("courier", result.Courier),
	)

	response.JSON(w, h.log, http.StatusOK, dto.CancellationResponse{
		Success:         true,
		Message:         result.Message,
		ShipmentID:      result.ShipmentID,
		ReferenceNumber: result.ReferenceNumber,
		Courier:         result.Courier,
		StatusEntryID:   result.StatusEntryID,
	})
}

func (h *Handler) writeError(w http.ResponseWriter, reference string, err error) {
	switch {
	case errors.Is(err, cancellation.ErrInvalidReference):
		response.Error(w, h.log, http.StatusBadRequest, "Invalid reference number", err.Error(), response.CodeInvalidReference)
	case errors.Is(err, entities.ErrShipmentNotFound):
		response.ShipmentNotFound(w, h.log)
	case errors.Is(err, cancellation.ErrNoStatusFound):
		response.Error(w, h.log, http.StatusBadRequest, "No status found for shipment", err.Error(), codeNoStatusFound)
	case errors.Is(err, cancellation.ErrStatusNotCancellable):
		response.Error(w, h.log, http.StatusBadRequest, "Shipment cannot be cancelled in its current status", err.Error(), codeStatusNotCancellable)
	case response.Courier(w, h.log, err):
		h.log.With(
			logger.NewField("reference_number", reference),
			logger.NewField("error", err),
		).Warn("cancel shipment with courier")
	default:
		h.log.With(
			logger.NewField("reference_number", reference),
			logger.NewField("error", err),
		).Error("cancel shipment")
		response.Internal(w, h.log)
	}
}
