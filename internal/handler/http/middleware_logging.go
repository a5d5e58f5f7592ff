package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/rental-blocklist/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		// chi fills the pattern while routing, after next returned
		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}

		event := logger.FromRequest(r).Info()
		if lw.status >= http.StatusInternalServerError {
			event = logger.FromRequest(r).Warn()
		}

		event.
			Str("uri", r.RequestURI).
			Str("route", route).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
