package tabular_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"djtracker/internal/domain/value"
	"djtracker/internal/infrastructure/tabular"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		delimiter rune
		header    []string
		rows      [][]string
	}{
		{
			name:      "TSV with BOM and bare quotes",
			input:     "﻿title\tDPA Rating\r\n\"Quoted\" Song\t12\r\n\r\nOther\t11\n",
			delimiter: '\t',
			header:    []string{"title", "DPA Rating"},
			rows:      [][]string{{"\"Quoted\" Song", "12"}, {"Other", "11"}},
		},
		{
			name:      "CSV with quoted comma",
			input:     "曲名,レベル\n\"A, B\",12\nC\n",
			delimiter: ',',
			header:    []string{"曲名", "レベル"},
			rows:      [][]string{{"A, B", "12"}, {"C"}},
		},
		{
			name:      "Empty input",
			input:     "",
			delimiter: ',',
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			table, err := tabular.Parse(strings.NewReader(tc.input), tc.delimiter)
			rq.NoError(err)
			rq.Equal(tc.header, table.Header)

			if tc.rows != nil {
				rq.Equal(tc.rows, table.Rows)
			} else {
				rq.Empty(table.Rows)
			}
		})
	}
}

func TestDelimiterFor(t *testing.T) {
	rq := require.New(t)

	rq.Equal('\t', tabular.DelimiterFor("tracker.tsv"))
	rq.Equal('\t', tabular.DelimiterFor("https://example.com/tracker.TSV?raw=1"))
	rq.Equal(',', tabular.DelimiterFor("dp_export.csv"))
}

func TestLoaderFile(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "tracker.tsv")
	rq.NoError(os.WriteFile(path, []byte("title\tDP DJ Points\nA\t1.5\n"), 0o600))

	loader := tabular.NewLoader(nil, time.Minute)
	tracker := tabular.NewTracker(loader, path)

	table, err := tracker.Table(ctx)
	rq.NoError(err)
	rq.Len(table.Rows, 1)
	rq.False(table.LastModified.IsZero())

	rq.NoError(os.WriteFile(path, []byte("title\tDP DJ Points\nA\t1.5\nB\t2\n"), 0o600))
	later := time.Now().Add(time.Minute)
	rq.NoError(os.Chtimes(path, later, later))

	table, err = tracker.Table(ctx)
	rq.NoError(err)
	rq.Len(table.Rows, 2, "modified file is re-read")

	rq.Error(tabular.NewTracker(loader, filepath.Join(t.TempDir(), "missing.tsv")).Ready(ctx))
}

func TestLoaderURL(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++

		if r.URL.Path == "/missing.csv" {
			w.WriteHeader(http.StatusNotFound)

			return
		}

		w.Header().Set("Last-Modified", "Tue, 04 Mar 2025 05:06:00 GMT")
		w.Write([]byte("レベル,曲名\n12,Song\n")) //nolint:errcheck
	}))
	defer srv.Close()

	exports := tabular.NewExports(tabular.NewLoader(srv.Client(), time.Minute), map[value.PlayMode]string{
		value.PlayModeDP: srv.URL + "/dp.csv",
		value.PlayModeSP: srv.URL + "/missing.csv",
	})

	table, err := exports.Export(ctx, value.PlayModeDP)
	rq.NoError(err)
	rq.Equal([]string{"レベル", "曲名"}, table.Header)
	rq.Equal(time.Date(2025, 3, 4, 5, 6, 0, 0, time.UTC), table.LastModified.UTC())

	_, err = exports.Export(ctx, value.PlayModeDP)
	rq.NoError(err)
	rq.Equal(1, hits, "second load is served from cache")

	_, err = exports.Export(ctx, value.PlayModeSP)
	rq.ErrorIs(err, tabular.ErrUnexpectedStatus)

	_, err = tabular.NewExports(tabular.NewLoader(nil, time.Minute), nil).Export(ctx, value.PlayModeDP)
	rq.ErrorIs(err, tabular.ErrNoExport)
}
