package probe_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"djtracker/pkg/probe"
)

func TestServer(t *testing.T) {
	errRedisDown := errors.New("redis: connection refused")

	testCases := []struct {
		name       string
		endpoint   string
		checks     map[string]probe.Check
		statusCode int
		appName    string
		appVersion string
		body       string
	}{
		{
			name:       "Health handler",
			endpoint:   "/healthz",
			statusCode: http.StatusOK,
			appName:    "djtracker",
			appVersion: "v0.0.1",
			body:       `{"name":"djtracker","version":"v0.0.1"}`,
		},
		{
			name:     "Ready handler with passing checks",
			endpoint: "/ready",
			checks: map[string]probe.Check{
				"tracker": func(context.Context) error { return nil },
			},
			statusCode: http.StatusOK,
			appName:    "djtracker",
			appVersion: "v0.0.2",
			body:       `{"name":"djtracker","version":"v0.0.2"}`,
		},
		{
			name:     "Ready handler with failing check",
			endpoint: "/ready",
			checks: map[string]probe.Check{
				"redis": func(context.Context) error { return errRedisDown },
			},
			statusCode: http.StatusServiceUnavailable,
			appName:    "djtracker",
			appVersion: "v0.0.3",
			body:       `{"name":"djtracker","version":"v0.0.3","failed":{"redis":"redis: connection refused"}}`,
		},
		{
			name:       "Invalid endpoint",
			endpoint:   "/invalid",
			statusCode: http.StatusNotFound,
			body:       "404 page not found\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			probeServer := probe.NewServer(
				":0",
				probe.Options{
					Name:    tc.appName,
					Version: tc.appVersion,
				},
				tc.checks,
			)

			srv := httptest.NewServer(probeServer.Handler())
			defer srv.Close()

			resp, err := http.Get(srv.URL + tc.endpoint) //nolint:noctx
			rq.NoError(err)

			defer resp.Body.Close()

			rq.Equal(tc.statusCode, resp.StatusCode)

			bodyBytes, err := io.ReadAll(resp.Body)
			rq.NoError(err)

			rq.Equal(tc.body, string(bodyBytes))
		})
	}
}
