package middlewarex

import (
	"net/http"
	"regexp"

	"djtracker/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

var validTraceID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`) //nolint:gochecknoglobals

// TraceID reuses a well-formed incoming X-Trace-Id or mints a new one, and
// echoes it back.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if incoming := r.Header.Get(headerNameTraceID); validTraceID.MatchString(incoming) {
			ctx = contextx.WithTraceID(ctx, contextx.TraceID(incoming))
		}

		ctx, traceID := contextx.EnsureTraceID(ctx)

		w.Header().Set(headerNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
