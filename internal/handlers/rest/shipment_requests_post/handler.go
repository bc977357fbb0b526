package shipment_requests_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"orchestrator/internal/entities"
	"orchestrator/internal/generated/dto"
	"orchestrator/internal/handlers/rest/response"
	"orchestrator/internal/service/intake"
	"orchestrator/pkg/logger"
)

const (
	messageNew               = "Shipment request created successfully"
	messageExistingShipment  = "Shipment with this reference number already exists"
	messageAlreadyProcessing = "Shipment request with this reference number is already under process"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "shipment_requests_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var requestDTO dto.ShipmentRequestCreate
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "Invalid JSON payload", err.Error(), "INVALID_JSON")
		return
	}

	result, err := h.service.CreateRequest(r.Context(), toEntity(&requestDTO))
	if err != nil {
		var validationErr *intake.ValidationError
		if errors.As(err, &validationErr) {
			response.JSON(w, h.log, http.StatusBadRequest, dto.ValidationErrorResponse{
				Success: false,
				Message: "Validation failed",
				Errors:  validationErr.Fields,
			})
			return
		}

		h.log.With(
			logger.NewField("error", err),
		).Error("create shipment request")
		response.Error(w, h.log, http.StatusInternalServerError,
			"Failed to create shipment request", "internal server error", response.CodeInternal)
		return
	}

	switch result.Outcome {
	case entities.IntakeExistingShipment:
		response.JSON(w, h.log, http.StatusOK, dto.ShipmentRequestResponse{
			Success: true,
			Message: messageExistingShipment,
			Data: dto.ShipmentRequestData{
				ID:              result.Shipment.ID,
				ReferenceNumber: result.Shipment.ReferenceNumber,
				Status:          entities.RequestCompleted.String(),
				Courier:         pointer.To(result.Shipment.CourierName),
				CreatedAt:       result.Shipment.CreatedAt,
			},
		})
	case entities.IntakeAlreadyProcessing:
		response.JSON(w, h.log, http.StatusOK, dto.ShipmentRequestResponse{
			Success: true,
			Message: messageAlreadyProcessing,
			Data:    requestData(result.Request),
		})
	default:
		response.JSON(w, h.log, http.StatusCreated, dto.ShipmentRequestResponse{
			Success: true,
			Message: messageNew,
			Data:    requestData(result.Request),
		})
	}
}

func requestData(request *entities.ShipmentRequest) dto.ShipmentRequestData {
	return dto.ShipmentRequestData{
		ID:              request.ID,
		ReferenceNumber: request.ReferenceNumber,
		Status:          request.Status.String(),
		CreatedAt:       request.CreatedAt,
		ShipperID:       pointer.To(request.Body.ShipperID),
		ConsigneeID:     pointer.To(request.Body.ConsigneeID),
	}
}

func toEntity(requestDTO *dto.ShipmentRequestCreate) *entities.ShipmentRequestCreate {
	req := &entities.ShipmentRequestCreate{
		ReferenceNumber:     requestDTO.ReferenceNumber,
		ShipmentTypeID:      requestDTO.ShipmentTypeID,
		RouteID:             requestDTO.RouteID,
		ShipperID:           requestDTO.ShipperID,
		Shipper:             toParty(requestDTO.Shipper),
		ConsigneeID:         requestDTO.ConsigneeID,
		Consignee:           toParty(requestDTO.Consignee),
		PickupDate:          pointer.Get(requestDTO.PickupDate),
		SpecialInstructions: pointer.Get(requestDTO.SpecialInstructions),
		Weight: entities.Weight{
			Value: requestDTO.Weight,
			Unit:  weightUnit(requestDTO.WeightUnit),
		},
	}

	if requestDTO.Dimensions != nil {
		req.Dimensions = &entities.Dimensions{
			Height: requestDTO.Dimensions.Height,
			Width:  requestDTO.Dimensions.Width,
			Length: requestDTO.Dimensions.Length,
			Unit:   dimensionUnit(requestDTO.DimensionUnit),
		}
	}

	for _, item := range pointer.Get(requestDTO.Items) {
		req.Items = append(req.Items, entities.RequestItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Weight:      pointer.Get(item.Weight),
		})
	}

	return req
}

func toParty(partyDTO *dto.Party) *entities.Party {
	if partyDTO == nil {
		return nil
	}

	return &entities.Party{
		Name:       partyDTO.Name,
		Address:    pointer.Get(partyDTO.Address),
		PostalCode: pointer.Get(partyDTO.PostalCode),
		City:       pointer.Get(partyDTO.City),
		Country:    pointer.Get(partyDTO.Country),
		Phone:      pointer.Get(partyDTO.Phone),
		Email:      partyDTO.Email,
	}
}

// weightUnit неизвестное значение передается как есть, его отклонит валидация сервиса.
func weightUnit(raw *string) entities.WeightUnit {
	if raw == nil {
		return entities.DefaultWeightUnit
	}
	if unit, err := entities.ParseWeightUnit(*raw); err == nil {
		return unit
	}
	return entities.WeightUnit(*raw)
}

func dimensionUnit(raw *string) entities.DimensionUnit {
	if raw == nil {
		return entities.DefaultDimensionUnit
	}
	if unit, err := entities.ParseDimensionUnit(*raw); err == nil {
		return unit
	}
	return entities.DimensionUnit(*raw)
}
