package courier_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"orchestrator/internal/entities"
	"orchestrator/internal/service/webhook"
	"orchestrator/pkg/logger"
)

type Handler struct {
	service                  Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, service Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "courier.status.changed"))

	return &Handler{
		service:                  service,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("courier.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("courier.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing true - прервать ConsumeClaim без коммита, сообщение будет прочитано повторно.
// Остальные исходы коммитятся: повтор того же события отсеет дедупликация.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("courier.status.changed: bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("courier", event.Courier),
		logger.NewField("tracking_number", event.TrackingNumber),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	result, err := h.service.Process(ctx, event.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("courier.status.changed: context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, webhook.ErrInvalidPayload):
			msgLog.Warn("courier.status.changed: event without tracking number or status")

		case errors.Is(err, entities.ErrShipmentNotFound):
			msgLog.Warn("courier.status.changed: unknown tracking number")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("courier.status.changed: failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("reference_number", result.ReferenceNumber),
		logger.NewField("outcome", string(result.Outcome)),
	).Info("courier.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
