//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_processing_test
package request_processing

import (
	"context"

	"orchestrator/internal/entities"
	"orchestrator/pkg/logger"
)

type taskLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessRequests(ctx context.Context, batchSize int) (*entities.BatchSummary, error)
}
