//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_status_changed_test
package courier_status_changed

import (
	"context"

	"orchestrator/internal/entities"
	"orchestrator/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Process(ctx context.Context, event *entities.WebhookEvent) (*entities.WebhookResult, error)
}
