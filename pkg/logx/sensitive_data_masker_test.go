package logx_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"djtracker/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Profile id",
			input:  []byte(`{"djName":"GYONIC","infinitasId":"C-2111-5360-9957"}`),
			output: []byte(`{"djName":"GYONIC","infinitasId":"[MASKED]"}`),
		},
		{
			name:   "Organizer id",
			input:  []byte(`[{"title":"cup","organizer_id":"someone"}]`),
			output: []byte(`[{"title":"cup","organizer_id":"[MASKED]"}]`),
		},
		{
			name:   "Bot token in URL",
			input:  []byte("POST /bot123456:AAH-x_yz/sendMessage HTTP/1.1"),
			output: []byte("POST /bot[MASKED]/sendMessage HTTP/1.1"),
		},
		{
			name:   "Cookie header",
			input:  []byte("GET /v1/events HTTP/1.1\r\nCookie: event-1=true\r\n"),
			output: []byte("GET /v1/events HTTP/1.1\r\nCookie: [MASKED]\r\n"),
		},
		{
			name:   "Nothing to mask",
			input:  []byte(`{"rank":"AAA","score":1800}`),
			output: []byte(`{"rank":"AAA","score":1800}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}

func TestParseLevel(t *testing.T) {
	rq := require.New(t)

	rq.Equal(slog.LevelDebug, logx.ParseLevel("debug"))
	rq.Equal(slog.LevelWarn, logx.ParseLevel("WARN"))
	rq.Equal(slog.LevelInfo, logx.ParseLevel("loud"))
}
