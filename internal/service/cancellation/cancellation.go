package cancellation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orchestrator/internal/entities"
	"orchestrator/internal/gateway/courier"
	"orchestrator/pkg/logger"
)

const defaultCancelMessage = "Shipment cancelled with courier"

type Cancellation struct {
	log       serviceLogger
	shipments ShipmentRepository
	statuses  StatusRepository
	couriers  CourierGateway
	txManager TxManager
}

func New(
	log serviceLogger,
	shipments ShipmentRepository,
	statuses StatusRepository,
	couriers CourierGateway,
	txManager TxManager,
) *Cancellation {
	return &Cancellation{
		log:       log.With(logger.NewField("service", "cancellation")),
		shipments: shipments,
		statuses:  statuses,
		couriers:  couriers,
		txManager: txManager,
	}
}

// Cancel проверки идут до вызова курьера, запись cancelled появляется только после его подтверждения.
// Ошибки курьера, кроме CANCELLATION_NOT_SUPPORTED и COURIER_NOT_FOUND, сводятся к COURIER_CANCELLATION_FAILED.
func (c *Cancellation) Cancel(ctx context.Context, referenceNumber string) (*entities.CancellationResult, error) {
	if strings.TrimSpace(referenceNumber) == "" {
		return nil, ErrInvalidReference
	}

	details, err := c.shipments.GetDetailsByReference(ctx, referenceNumber)
	if err != nil {
		return nil, fmt.Errorf("get shipment details: %w", err)
	}

	courierName := details.Courier.Name
	log := c.log.With(
		logger.NewField("reference_number", referenceNumber),
		logger.NewField("courier", courierName),
	)

	if !details.Courier.SupportsCancellation {
		return nil, courier.NewError(courierName, courier.CodeCancellationNotSupported,
			fmt.Sprintf("Courier %s does not support cancellation", courierName))
	}

	latest, err := c.statuses.Latest(ctx, details.Shipment.ID)
	if err != nil {
		if errors.Is(err, entities.ErrStatusNotFound) {
			return nil, ErrNoStatusFound
		}
		return nil, fmt.Errorf("get latest status: %w", err)
	}

	if !latest.Status.IsCancellable() {
		return nil, fmt.Errorf("%w: current status is %s", ErrStatusNotCancellable, latest.Status)
	}

	result, err := c.couriers.CancelShipment(ctx, courierName, details.Shipment.CourierExternalID)
	if err != nil {
		log.Warn("courier cancellation failed", logger.NewField("error", err))
		return nil, cancellationError(courierName, err)
	}

	var entry *entities.ShipmentStatus
	err = c.txManager.Do(ctx, func(ctx context.Context) error {
		entry, err = c.statuses.Append(ctx, entities.ShipmentStatus{
			ShipmentID: details.Shipment.ID,
			Status:     entities.StatusCancelled,
		})
		if err != nil {
			return fmt.Errorf("append cancelled status: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error("shipment cancelled by courier but status was not saved", logger.NewField("error", err))
		return nil, err
	}

	message := defaultCancelMessage
	if result != nil && result.Message != "" {
		message = result.Message
	}

	log.Info("shipment cancelled", logger.NewField("status_entry_id", entry.ID))

	return &entities.CancellationResult{
		ShipmentID:      details.Shipment.ID,
		ReferenceNumber: details.Shipment.ReferenceNumber,
		Courier:         courierName,
		Message:         message,
		StatusEntryID:   entry.ID,
	}, nil
}

func cancellationError(courierName string, err error) error {
	courierErr := courier.Normalize(courierName, err)
	switch courierErr.Code {
	case courier.CodeCancellationNotSupported, courier.CodeCourierNotFound, courier.CodeCancellationFailed:
		return courierErr
	default:
		return courier.NewError(courierName, courier.CodeCancellationFailed, courierErr.Message).
			WithStatusCode(courierErr.StatusCode).
			WithCause(courierErr)
	}
}
