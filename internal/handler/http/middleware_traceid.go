package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-manifest-sync/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags every request with a trace id, reusing the caller's
// X-Trace-ID when present. The request context carries a child logger with
// the trace id and the remote address attached.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	ids := utils.NewUUIDGenerator()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = ids.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID).Str("remote_addr", r.RemoteAddr)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
