package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/rental-blocklist/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// maxTraceIDLength bounds client supplied trace ids before they reach the logs.
const maxTraceIDLength = 128

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
