package shipment_track_get

import (
	"errors"
	"net/http"
	"strconv"

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
	handlerLog := log.With(logger.NewField("handler", "shipment_track_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP по умолчанию ответ из локального журнала, ?live=true идет к курьеру.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	live := false
	if raw := r.URL.Query().Get("live"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(w, h.log, http.StatusBadRequest, "live must be a boolean", err.Error(), response.CodeValidation)
			return
		}
		live = parsed
	}

	view, err := h.service.Track(r.Context(), reference, live)
	if err != nil {
		switch {
		case errors.Is(err, status.ErrInvalidReference):
			response.Error(w, h.log, http.StatusBadRequest, "Invalid reference number", err.Error(), response.CodeInvalidReference)
		case errors.Is(err, entities.ErrShipmentNotFound):
			response.ShipmentNotFound(w, h.log)
		case response.Courier(w, h.log, err):
			h.log.With(
				logger.NewField("reference_number", reference),
				logger.NewField("error", err),
			).Warn("track shipment with courier")
		default:
			h.log.With(
				logger.NewField("reference_number", reference),
				logger.NewField("error", err),
			).Error("track shipment")
			response.Internal(w, h.log)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, toDTO(view))
}

func toDTO(view *entities.TrackingView) dto.TrackingResponse {
	events := make([]dto.TrackingEvent, 0, len(view.Events))
	for _, event := range view.Events {
		events = append(events, dto.TrackingEvent{
			Timestamp:   event.Timestamp,
			Status:      event.Status.String(),
			RawStatus:   event.RawStatus,
			Description: event.Description,
			Location:    event.Location,
		})
	}

	return dto.TrackingResponse{
		Success:           true,
		ReferenceNumber:   view.ReferenceNumber,
		TrackingNumber:    view.TrackingNumber,
		Courier:           view.Courier,
		CurrentStatus:     view.CurrentStatus.String(),
		CurrentLocation:   view.CurrentLocation,
		Origin:            toParty(view.Origin),
		Destination:       toParty(view.Destination),
		Events:            events,
		EstimatedDelivery: view.EstimatedDelivery,
		Source:            string(view.Source),
	}
}

func toParty(party entities.Party) dto.TrackingParty {
	return dto.TrackingParty{
		Name:    party.Name,
		City:    party.City,
		Country: party.Country,
	}
}
