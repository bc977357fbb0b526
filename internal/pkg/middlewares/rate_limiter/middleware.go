package rate_limiter

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"orchestrator/internal/handlers/rest/response"
	"orchestrator/pkg/logger"
)

const codeRateLimited = "RATE_LIMITED"

// rateLimiterQPS только для заголовка X-RateLimit-Limit, сам лимит живет в rlimiter.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rlimiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			w.Header().Set("Retry-After", "1")
			response.Error(w, log, http.StatusTooManyRequests,
				"Rate limit exceeded. Try again later.", "too many requests", codeRateLimited)
		})
	}
}
