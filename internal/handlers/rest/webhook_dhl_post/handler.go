package webhook_dhl_post

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"orchestrator/internal/entities"
	"orchestrator/internal/generated/dto"
	"orchestrator/internal/handlers/rest/response"
	"orchestrator/internal/service/webhook"
	"orchestrator/pkg/logger"
)

const (
	courierName  = "dhl"
	maxBodyBytes = 1 << 20

	codeInvalidRequest = "INVALID_REQUEST"
	codeInvalidJSON    = "INVALID_JSON"
	codeInvalidPayload = "INVALID_PAYLOAD"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "webhook_dhl_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !isJSON(r.Header.Get("Content-Type")) {
		h.log.Warn("webhook rejected: unexpected content type",
			logger.NewField("content_type", r.Header.Get("Content-Type")),
		)
		h.forbidden(w)
		return
	}

	if err := h.service.Authenticate(courierName, r.Header.Get("X-API-Key"), r.Header.Get("Authorization")); err != nil {
		h.forbidden(w)
		return
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.log.Error("read webhook body", logger.NewField("error", err))
		response.Internal(w, h.log)
		return
	}

	result, err := h.service.Receive(r.Context(), courierName, raw)
	if err != nil {
		switch {
		case errors.Is(err, webhook.ErrInvalidJSON):
			response.Error(w, h.log, http.StatusBadRequest, "Invalid JSON payload", err.Error(), codeInvalidJSON)
		case errors.Is(err, webhook.ErrInvalidPayload):
			response.Error(w, h.log, http.StatusBadRequest, "Invalid payload structure", err.Error(), codeInvalidPayload)
		case errors.Is(err, entities.ErrShipmentNotFound):
			response.ShipmentNotFound(w, h.log)
		default:
			h.log.Error("process webhook", logger.NewField("error", err))
			response.Internal(w, h.log)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, toDTO(result))
}

func (h *Handler) forbidden(w http.ResponseWriter) {
	response.Error(w, h.log, http.StatusForbidden, "Invalid request or API key", webhook.ErrUnauthorized.Error(), codeInvalidRequest)
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}

func toDTO(result *entities.WebhookResult) dto.WebhookResponse {
	mapped := result.MappedStatus.String()
	resp := dto.WebhookResponse{
		Success:         true,
		Status:          string(result.Outcome),
		ShipmentID:      &result.ShipmentID,
		ReferenceNumber: &result.ReferenceNumber,
		MappedStatus:    &mapped,
	}

	switch result.Outcome {
	case entities.WebhookDuplicateIgnored:
		resp.Message = "Duplicate status ignored"
	case entities.WebhookCancelledIgnored:
		resp.Message = "Shipment already cancelled, webhook ignored"
	default:
		resp.Message = "Webhook processed successfully"
	}

	if result.StatusEntryID != 0 {
		resp.StatusEntryID = &result.StatusEntryID
	}
	if mapped == "" {
		resp.MappedStatus = nil
	}

	return resp
}
