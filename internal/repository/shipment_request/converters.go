package shipment_request

import (
	"encoding/json"
	"fmt"

	"orchestrator/internal/entities"
)

func ToDomain(r *ShipmentRequestDB) (*entities.ShipmentRequest, error) {
	if r == nil {
		return nil, nil
	}

	var body entities.RequestBody
	if len(r.RequestBody) > 0 {
		if err := json.Unmarshal(r.RequestBody, &body); err != nil {
			return nil, fmt.Errorf("decode request body of request %d: %w", r.ID, err)
		}
	}

	return &entities.ShipmentRequest{
		ID:              r.ID,
		ReferenceNumber: r.ReferenceNumber,
		Body:            body,
		Status:          entities.RequestStatus(r.Status),
		Retries:         r.Retries,
		LastRetriedAt:   r.LastRetriedAt,
		FailedReason:    r.FailedReason,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}, nil
}

func ToDomainList(requestsDB []ShipmentRequestDB) ([]entities.ShipmentRequest, error) {
	if len(requestsDB) == 0 {
		return []entities.ShipmentRequest{}, nil
	}

	result := make([]entities.ShipmentRequest, len(requestsDB))
	for i, requestDB := range requestsDB {
		request, err := ToDomain(&requestDB)
		if err != nil {
			return nil, err
		}
		result[i] = *request
	}
	return result, nil
}
