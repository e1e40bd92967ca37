package http

import "net/http"

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength caps client-supplied trace ids; longer values are
	// replaced by a generated one.
	maxTraceIDLength = 128
)

// withTraceID reuses the caller's X-Trace-ID or generates a UUIDv7, echoes it
// in the response and attaches a child logger carrying trace_id to the
// request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = h.ids.Generate()
		}

		l := h.logger.WithTraceID(traceID)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
