package middlewarex

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"djtracker/pkg/httpx/reply"
	"djtracker/pkg/logx"
)

var errPanic = errors.New("handler panicked")

// Recovery turns a handler panic into a 500 error body carrying the trace id.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if rec == http.ErrAbortHandler { //nolint:errorlint,goerr113
				panic(rec)
			}

			logger(ctx).Error(
				"panic in handler",
				slog.Any(logx.FieldError, rec),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)

			reply.Error(ctx, w, errPanic)
		}()

		next.ServeHTTP(w, r)
	})
}
