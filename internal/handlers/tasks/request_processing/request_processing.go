package request_processing

import (
	"context"
	"errors"
	"time"

	"orchestrator/internal/service/lifecycle"
	"orchestrator/pkg/logger"
)

// RequestProcessing периодический прогон батча pending/failed заявок.
type RequestProcessing struct {
	log       taskLogger
	service   Service
	interval  time.Duration
	batchSize int
}

func NewRequestProcessing(log taskLogger, service Service, interval time.Duration, batchSize int) *RequestProcessing {
	return &RequestProcessing{
		log:       log.With(logger.NewField("task", "request_processing")),
		service:   service,
		interval:  interval,
		batchSize: batchSize,
	}
}

func (p *RequestProcessing) TTL() time.Duration {
	return p.interval
}

func (p *RequestProcessing) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	summary, err := p.service.ProcessRequests(ctxWithTimeout, p.batchSize)
	if err != nil {
		// батч держит другая реплика, это не ошибка задачи
		if errors.Is(err, lifecycle.ErrBatchInProgress) {
			p.log.Info("batch is running elsewhere, skipping")
			return nil
		}
		return err
	}

	if summary.Total > 0 {
		p.log.With(
			logger.NewField("total", summary.Total),
			logger.NewField("successful", summary.Successful),
			logger.NewField("failed", summary.Failed),
		).Info("request processing")
	}

	return nil
}

func (p *RequestProcessing) Info() string {
	return "shipment request processing"
}
