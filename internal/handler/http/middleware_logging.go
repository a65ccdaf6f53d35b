package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/procurio/purchasing-automation/internal/logger"
)

// withLogging emits exactly one structured record per dispatch: route,
// status, latency, and response size. Payloads are never logged.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}

		log.Info().
			Str("route", method+" "+route).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
