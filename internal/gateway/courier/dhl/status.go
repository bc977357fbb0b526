package dhl

import (
	"strings"

	"orchestrator/internal/entities"
)

// MapWebhookStatus словарь статусов вебхука DHL, точное совпадение без учета регистра.
func MapWebhookStatus(raw string) entities.StatusType {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "OK", "SUCCESS", "PROCESSED", "DELIVERED":
		return entities.StatusDelivered
	case "IN_TRANSIT":
		return entities.StatusInTransit
	case "PENDING":
		return entities.StatusPending
	case "FAILED":
		return entities.StatusFailed
	case "CANCELLED":
		return entities.StatusCancelled
	case "ERROR", "EXCEPTION":
		return entities.StatusException
	case "RETURNED":
		return entities.StatusReturned
	case "OUT_FOR_DELIVERY":
		return entities.StatusOutForDelivery
	case "PICKED_UP":
		return entities.StatusPickedUp
	default:
		return entities.StatusUnknown
	}
}

type trackingRule struct {
	fragments []string
	status    entities.StatusType
}

// Первое совпадение выигрывает, порядок правил значим.
var trackingRules = []trackingRule{
	{fragments: []string{"LABEL CREATED"}, status: entities.StatusCreated},
	{fragments: []string{"PACKAGE RECEIVED", "PROCESSED"}, status: entities.StatusPickedUp},
	{fragments: []string{"DEPARTURE", "ARRIVAL", "TENDERED"}, status: entities.StatusInTransit},
	{fragments: []string{"OUT FOR DELIVERY"}, status: entities.StatusOutForDelivery},
	{fragments: []string{"DELIVERED"}, status: entities.StatusDelivered},
	{fragments: []string{"EXCEPTION", "PROBLEM"}, status: entities.StatusException},
	{fragments: []string{"RETURN"}, status: entities.StatusReturned},
	{fragments: []string{"CANCEL"}, status: entities.StatusCancelled},
	{fragments: []string{"EN ROUTE", "AWAITING"}, status: entities.StatusCreated},
}

// MapTrackingStatus словарь трекинга DHL - свободный текст, поэтому ищем подстроки.
func MapTrackingStatus(raw string) entities.StatusType {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), "_", " "))
	if normalized == "" {
		return entities.StatusUnknown
	}

	for _, rule := range trackingRules {
		for _, fragment := range rule.fragments {
			if strings.Contains(normalized, fragment) {
				return rule.status
			}
		}
	}
	return entities.StatusUnknown
}
