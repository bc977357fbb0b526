package webhook

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"orchestrator/internal/entities"
	"orchestrator/pkg/logger"
)

const bearerPrefix = "Bearer "

type Webhook struct {
	log       serviceLogger
	apiKey    string
	shipments ShipmentRepository
	statuses  StatusRepository
	mapper    StatusMapper
	txManager TxManager
}

func New(
	log serviceLogger,
	apiKey string,
	shipments ShipmentRepository,
	statuses StatusRepository,
	mapper StatusMapper,
	txManager TxManager,
) *Webhook {
	return &Webhook{
		log:       log.With(logger.NewField("service", "webhook")),
		apiKey:    apiKey,
		shipments: shipments,
		statuses:  statuses,
		mapper:    mapper,
		txManager: txManager,
	}
}

// Authenticate ключ берется из X-API-Key, иначе из Authorization: Bearer.
// Пустой настроенный ключ отклоняет все запросы.
func (w *Webhook) Authenticate(courierName, apiKey, authorization string) error {
	credential := apiKey
	if credential == "" {
		credential = strings.TrimPrefix(authorization, bearerPrefix)
	}

	if w.apiKey == "" || credential == "" ||
		subtle.ConstantTimeCompare([]byte(credential), []byte(w.apiKey)) != 1 {
		WebhookOutcomesTotal.WithLabelValues(courierName, outcomeUnauthorized).Inc()
		w.log.Warn("webhook rejected: invalid or missing api key",
			logger.NewField("courier", courierName),
		)
		return ErrUnauthorized
	}

	return nil
}

// Receive разбор тела и обработка одной доставки вебхука.
func (w *Webhook) Receive(ctx context.Context, courierName string, raw []byte) (*entities.WebhookResult, error) {
	event, err := ParsePayload(courierName, raw)
	if err != nil {
		WebhookOutcomesTotal.WithLabelValues(courierName, outcomeInvalid).Inc()
		w.log.Warn("webhook rejected: invalid payload",
			logger.NewField("courier", courierName),
			logger.NewField("error", err),
		)
		return nil, err
	}

	return w.Process(ctx, event)
}

// Process фильтр и затем append в одной транзакции: строка отправления блокируется,
// поэтому параллельные доставки одного статуса не создают дубликатов.
func (w *Webhook) Process(ctx context.Context, event *entities.WebhookEvent) (*entities.WebhookResult, error) {
	if event == nil || event.TrackingNumber == "" || event.Status == "" {
		return nil, ErrInvalidPayload
	}

	log := w.log.With(
		logger.NewField("courier", event.Courier),
		logger.NewField("tracking_number", event.TrackingNumber),
	)

	var result *entities.WebhookResult
	err := w.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		result, err = w.apply(ctx, event)
		return err
	})
	if err != nil {
		if errors.Is(err, entities.ErrShipmentNotFound) {
			WebhookOutcomesTotal.WithLabelValues(event.Courier, outcomeNotFound).Inc()
			log.Warn("webhook for unknown tracking number")
			return nil, err
		}

		WebhookOutcomesTotal.WithLabelValues(event.Courier, outcomeError).Inc()
		log.Error("webhook processing failed", logger.NewField("error", err))
		return nil, fmt.Errorf("process webhook: %w", err)
	}

	WebhookOutcomesTotal.WithLabelValues(event.Courier, string(result.Outcome)).Inc()
	log.Info("webhook processed",
		logger.NewField("reference_number", result.ReferenceNumber),
		logger.NewField("outcome", string(result.Outcome)),
		logger.NewField("mapped_status", result.MappedStatus.String()),
	)

	return result, nil
}

func (w *Webhook) apply(ctx context.Context, event *entities.WebhookEvent) (*entities.WebhookResult, error) {
	shipment, err := w.shipments.GetByExternalIDForUpdate(ctx, event.TrackingNumber)
	if err != nil {
		if errors.Is(err, entities.ErrShipmentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	result := &entities.WebhookResult{
		ShipmentID:      shipment.ID,
		ReferenceNumber: shipment.ReferenceNumber,
	}

	latest, err := w.statuses.Latest(ctx, shipment.ID)
	if err != nil && !errors.Is(err, entities.ErrStatusNotFound) {
		return nil, fmt.Errorf("get latest status: %w", err)
	}

	if latest != nil && latest.Status.IsTerminal() {
		result.Outcome = entities.WebhookCancelledIgnored
		return result, nil
	}

	mapped := w.mapper.MapWebhookStatus(event.Courier, event.Status)

	// сравнение только с последним статусом: повторный вход в in_transit после exception записывается
	if latest != nil && latest.Status == mapped {
		result.Outcome = entities.WebhookDuplicateIgnored
		result.StatusEntryID = latest.ID
		result.MappedStatus = mapped
		return result, nil
	}

	entry, err := w.statuses.Append(ctx, entities.ShipmentStatus{
		ShipmentID: shipment.ID,
		Status:     mapped,
		Location:   event.Location,
	})
	if err != nil {
		return nil, fmt.Errorf("append status: %w", err)
	}

	result.Outcome = entities.WebhookProcessed
	result.StatusEntryID = entry.ID
	result.MappedStatus = mapped

	return result, nil
}
