package shipment_label_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"orchestrator/internal/entities"
	"orchestrator/internal/generated/dto"
	"orchestrator/internal/handlers/rest/response"
	"orchestrator/internal/service/label"
	"orchestrator/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "shipment_label_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	labelEntity, err := h.service.GetLabel(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, label.ErrInvalidReference):
			response.Error(w, h.log, http.StatusBadRequest, "Invalid reference number", err.Error(), response.CodeInvalidReference)
		case errors.Is(err, entities.ErrShipmentNotFound):
			response.ShipmentNotFound(w, h.log)
		case response.Courier(w, h.log, err):
			h.log.With(
				logger.NewField("reference_number", reference),
				logger.NewField("error", err),
			).Warn("fetch label from courier")
		default:
			h.log.With(
				logger.NewField("reference_number", reference),
				logger.NewField("error", err),
			).Error("get shipment label")
			response.Internal(w, h.log)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ShipmentLabel{
		ID:              labelEntity.ID,
		ReferenceNumber: labelEntity.ReferenceNumber,
		URL:             labelEntity.URL,
		Format:          labelEntity.Format,
		IsActive:        labelEntity.IsActive,
		CreatedAt:       labelEntity.CreatedAt,
	})
}
