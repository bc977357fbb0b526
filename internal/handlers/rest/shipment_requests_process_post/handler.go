package shipment_requests_process_post

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AlekSi/pointer"
	"orchestrator/internal/entities"
	"orchestrator/internal/generated/dto"
	"orchestrator/internal/handlers/rest/response"
	"orchestrator/internal/service/lifecycle"
	"orchestrator/pkg/logger"
)

const maxBatchSize = 100

type Handler struct {
	log              handlerLogger
	service          Service
	defaultBatchSize int
}

func New(log handlerLogger, service Service, defaultBatchSize int) *Handler {
	handlerLog := log.With(logger.NewField("handler", "shipment_requests_process_post"))

	return &Handler{
		log:              handlerLog,
		service:          service,
		defaultBatchSize: defaultBatchSize,
	}
}

// ServeHTTP ручной запуск батча под той же блокировкой, что и фоновая задача.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	batchSize := h.defaultBatchSize
	if raw := r.URL.Query().Get("batch_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxBatchSize {
			response.Error(w, h.log, http.StatusBadRequest,
				"batch_size must be an integer between 1 and 100", "invalid batch_size", response.CodeValidation)
			return
		}
		batchSize = parsed
	}

	summary, err := h.service.ProcessRequests(r.Context(), batchSize)
	if err != nil {
		if errors.Is(err, lifecycle.ErrBatchInProgress) {
			response.Error(w, h.log, http.StatusConflict,
				"Another batch run is in progress", err.Error(), "BATCH_IN_PROGRESS")
			return
		}

		h.log.With(
			logger.NewField("error", err),
		).Error("process shipment requests")
		response.Internal(w, h.log)
		return
	}

	response.JSON(w, h.log, http.StatusOK, toDTO(summary))
}

func toDTO(summary *entities.BatchSummary) dto.BatchSummaryResponse {
	details := make([]dto.BatchDetail, 0, len(summary.Details))
	for _, detail := range summary.Details {
		item := dto.BatchDetail{
			RequestID:       detail.RequestID,
			ReferenceNumber: detail.ReferenceNumber,
			Success:         detail.Success,
		}
		if detail.Courier != "" {
			item.Courier = pointer.To(detail.Courier)
		}
		if detail.Error != "" {
			item.Error = pointer.To(detail.Error)
		}
		details = append(details, item)
	}

	return dto.BatchSummaryResponse{
		Success:        true,
		TotalProcessed: summary.Total,
		Successful:     summary.Successful,
		Failed:         summary.Failed,
		Details:        details,
	}
}
