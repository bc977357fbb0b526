//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=webhook_dhl_post_test
package webhook_dhl_post

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
	Authenticate(courierName, apiKey, authorization string) error
	Receive(ctx context.Context, courierName string, raw []byte) (*entities.WebhookResult, error)
}
