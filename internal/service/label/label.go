package label

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orchestrator/internal/entities"
	"orchestrator/pkg/logger"
)

type Label struct {
	log       serviceLogger
	shipments ShipmentRepository
	labels    LabelRepository
	cache     LabelCache
	couriers  CourierGateway
	txManager TxManager
}

func New(
	log serviceLogger,
	shipments ShipmentRepository,
	labels LabelRepository,
	cache LabelCache,
	couriers CourierGateway,
	txManager TxManager,
) *Label {
	return &Label{
		log:       log.With(logger.NewField("service", "label")),
		shipments: shipments,
		labels:    labels,
		cache:     cache,
		couriers:  couriers,
		txManager: txManager,
	}
}

// GetLabel порядок чтения: redis, активная этикетка в БД, курьер.
// Курьер вызывается только когда активной этикетки нет, ошибки кэша не фатальны.
func (l *Label) GetLabel(ctx context.Context, referenceNumber string) (*entities.ShipmentLabel, error) {
	if strings.TrimSpace(referenceNumber) == "" {
		return nil, ErrInvalidReference
	}

	log := l.log.With(logger.NewField("reference_number", referenceNumber))

	cached, ok, err := l.cache.Get(ctx, referenceNumber)
	if err != nil {
		log.Warn("label cache read failed", logger.NewField("error", err))
	}
	if ok {
		return cached, nil
	}

	shipment, err := l.shipments.GetByReference(ctx, referenceNumber)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	label, err := l.labels.GetActive(ctx, shipment.ID)
	switch {
	case err == nil:
		label.ReferenceNumber = shipment.ReferenceNumber
		l.store(ctx, log, label)
		return label, nil
	case !errors.Is(err, entities.ErrLabelNotFound):
		return nil, fmt.Errorf("get active label: %w", err)
	}

	result, err := l.couriers.FetchLabel(ctx, shipment.CourierName, shipment.CourierExternalID)
	if err != nil {
		return nil, err
	}

	err = l.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		if err := l.labels.DeactivateForShipment(ctx, shipment.ID); err != nil {
			return fmt.Errorf("deactivate labels: %w", err)
		}

		label, err = l.labels.Create(ctx, shipment.ID, result.URL, result.Format)
		if err != nil {
			return fmt.Errorf("create label: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	label.ReferenceNumber = shipment.ReferenceNumber
	l.store(ctx, log, label)

	log.Info("label fetched from courier",
		logger.NewField("courier", shipment.CourierName),
		logger.NewField("label_id", label.ID),
	)

	return label, nil
}

func (l *Label) store(ctx context.Context, log logger.Logger, label *entities.ShipmentLabel) {
	if err := l.cache.Set(ctx, label); err != nil {
		log.Warn("label cache write failed", logger.NewField("error", err))
	}
}
