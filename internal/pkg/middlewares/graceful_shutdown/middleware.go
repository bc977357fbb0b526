package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"orchestrator/internal/handlers/rest/response"
	"orchestrator/pkg/logger"
)

const codeShuttingDown = "SERVICE_SHUTTING_DOWN"

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

// Middleware после SIGTERM отвечает 503 на новые запросы, in-flight дорабатывают на ongoingCtx.
func Middleware(log errorLogger, isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() && ongoingCtx.Err() != nil {
				response.Error(w, log, http.StatusServiceUnavailable,
					"Service is shutting down", "service is shutting down", codeShuttingDown)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
