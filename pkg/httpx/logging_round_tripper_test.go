package httpx_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"djtracker/pkg/contextx"
	"djtracker/pkg/httpx"
	"djtracker/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const feedBody = `[{"title":"Weekly cup","organizer_id":"someone"}]`

// logLines decodes the JSON log records written during a round trip.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any

	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var record map[string]any
		require.NoError(t, json.Unmarshal(line, &record))

		records = append(records, record)
	}

	return records
}

func TestLoggingRoundTripper(t *testing.T) {
	feed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.csv" {
			w.WriteHeader(http.StatusNotFound)

			return
		}

		w.Write([]byte(feedBody)) //nolint:errcheck
	})

	masker := &httpx.SensitiveDataMaskerMock{MaskFunc: logx.NewSensitiveDataMasker().Mask}

	testCases := []struct {
		name     string
		path     string
		opts     []httpx.Option
		upstream string
		status   int
		check    func(rq *require.Assertions, req, resp string)
	}{
		{
			name:     "Event feed is masked",
			path:     "/events/dp",
			opts:     []httpx.Option{httpx.WithUpstream("events-api"), httpx.WithSensitiveDataMasker(masker)},
			upstream: "events-api",
			status:   http.StatusOK,
			check: func(rq *require.Assertions, req, resp string) {
				rq.Contains(req, "GET /events/dp HTTP/1.1")
				rq.Contains(resp, `"organizer_id":"[MASKED]"`)
				rq.NotContains(resp, "someone")
			},
		},
		{
			name:     "Bot token in path is masked",
			path:     "/bot123456:AAH-x_yz/sendMessage",
			opts:     []httpx.Option{httpx.WithUpstream("telegram"), httpx.WithSensitiveDataMasker(masker)},
			upstream: "telegram",
			status:   http.StatusOK,
			check: func(rq *require.Assertions, req, _ string) {
				rq.Contains(req, "/bot[MASKED]/sendMessage")
				rq.NotContains(req, "AAH-x_yz")
			},
		},
		{
			name:     "Missing export",
			path:     "/missing.csv",
			upstream: "unknown",
			status:   http.StatusNotFound,
			check: func(rq *require.Assertions, _, resp string) {
				rq.Contains(resp, "HTTP/1.1 404 Not Found")
			},
		},
		{
			name:     "Dumps are truncated",
			path:     "/events/sp",
			opts:     []httpx.Option{httpx.WithLogFieldMaxLen(10)},
			upstream: "unknown",
			status:   http.StatusOK,
			check: func(rq *require.Assertions, req, resp string) {
				rq.Equal("GET /event", req)
				rq.Equal("HTTP/1.1 2", resp)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			ts := httptest.NewServer(feed)
			defer ts.Close()

			var buf bytes.Buffer

			ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
			client := &http.Client{Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport, tc.opts...)}

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+tc.path, http.NoBody)
			rq.NoError(err)

			resp, err := client.Do(req)
			rq.NoError(err)

			defer resp.Body.Close()

			rq.Equal(tc.status, resp.StatusCode)

			records := logLines(t, &buf)
			rq.Len(records, 2)

			request, response := records[0], records[1]

			tc.check(rq, request[logx.FieldRequestBody].(string), response[logx.FieldResponseBody].(string))

			rq.Equal(tc.upstream, request[logx.FieldSource])
			rq.Equal(tc.upstream, response[logx.FieldSource])
			rq.IsType(float64(0), response[logx.FieldDurationMs])

			const xidLen = 20

			rq.Len(request[logx.FieldRequestID], xidLen)
			rq.Equal(request[logx.FieldRequestID], response[logx.FieldRequestID])

			// The dump must not consume the body handed to the caller.
			if tc.status == http.StatusOK {
				body, err := io.ReadAll(resp.Body)
				rq.NoError(err)
				rq.Equal(feedBody, string(body))
			}
		})
	}

	require.Len(t, masker.MaskCalls(), 4, "request and response of both masked cases")
}

func TestLoggingRoundTripperTransportError(t *testing.T) {
	rq := require.New(t)

	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	client := &http.Client{Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport, httpx.WithUpstream("events-api"))}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	rq.NoError(err)

	_, err = client.Do(req) //nolint:bodyclose
	rq.Error(err)

	records := logLines(t, &buf)
	rq.Len(records, 1)
	rq.Equal(logx.FieldHTTPRequest, records[0]["msg"])
}
