package shipment_status_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"orchestrator/internal/entities"
	"orchestrator/internal/generated/dto"
	"orchestrator/internal/handlers/rest/response"
	"orchestrator/internal/service/status"
	"orchestrator/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "shipment_status_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	summary, err := h.service.GetSummary(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, status.ErrInvalidReference):
			response.Error(w, h.log, http.StatusBadRequest, "Invalid reference number", err.Error(), response.CodeInvalidReference)
		case errors.Is(err, entities.ErrShipmentNotFound):
			response.ShipmentNotFound(w, h.log)
		default:
			h.log.With(
				logger.NewField("reference_number", reference),
				logger.NewField("error", err),
			).Error("get shipment status summary")
			response.Internal(w, h.log)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, toDTO(summary))
}

func toDTO(summary *entities.StatusSummary) dto.StatusSummaryResponse {
	history := make([]dto.StatusEntry, 0, len(summary.History))
	for _, entry := range summary.History {
		history = append(history, dto.StatusEntry{
			ID:            entry.ID,
			Status:        entry.Status.String(),
			StatusDisplay: entry.Status.DisplayName(),
			Address:       optional(entry.Location.Address),
			PostalCode:    optional(entry.Location.PostalCode),
			Country:       optional(entry.Location.Country),
			CreatedAt:     entry.CreatedAt,
		})
	}

	return dto.StatusSummaryResponse{
		Success:              true,
		ShipmentID:           summary.ShipmentID,
		ReferenceNumber:      summary.ReferenceNumber,
		CurrentStatus:        summary.CurrentStatus.String(),
		CurrentStatusDisplay: summary.CurrentStatus.DisplayName(),
		TotalUpdates:         summary.TotalUpdates,
		LastUpdated:          summary.LastUpdated,
		History:              history,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
