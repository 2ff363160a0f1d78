package middlewarex_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"djtracker/pkg/contextx"
	"djtracker/pkg/errcodes"
	"djtracker/pkg/middlewarex"
	"djtracker/pkg/rest"
)

func TestTraceID(t *testing.T) {
	testCases := []struct {
		name     string
		incoming string
		kept     bool
	}{
		{name: "Incoming header is kept", incoming: "trace-from-client", kept: true},
		{name: "Missing header is generated", incoming: ""},
		{name: "Malformed header is replaced", incoming: "bad id\twith <tags>"},
		{name: "Oversized header is replaced", incoming: strings.Repeat("a", 65)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var seen contextx.TraceID

			h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				traceID, err := contextx.TraceIDFromContext(r.Context())
				rq.NoError(err)

				seen = traceID
			}))

			r := httptest.NewRequest(http.MethodGet, "/v1/events", http.NoBody)
			if tc.incoming != "" {
				r.Header.Set("X-Trace-Id", tc.incoming)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			rq.NotEmpty(seen)
			rq.Equal(seen.String(), w.Header().Get("X-Trace-Id"))

			if tc.kept {
				rq.Equal(tc.incoming, seen.String())
			} else {
				rq.NotEqual(tc.incoming, seen.String())
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.TraceID(middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	rq.Equal(http.StatusInternalServerError, w.Code)

	var body rest.Error
	rq.NoError(jsoniter.Unmarshal(w.Body.Bytes(), &body))
	rq.Equal(rest.ErrorCode(errcodes.InternalServerError), body.Code)
	rq.NotEmpty(body.SupportID)
}
