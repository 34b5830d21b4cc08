package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-gateway/internal/adapter"
	"github.com/MKhiriev/go-user-gateway/internal/utils"
	"github.com/rs/zerolog"
)

// withTraceID reuses the inbound X-Trace-ID or generates one. The id is put
// on the request context, where the upstream client picks it up, and on a
// child logger stored in the same context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(adapter.TraceIDHeader)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx = utils.WithTraceID(ctx, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(adapter.TraceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
