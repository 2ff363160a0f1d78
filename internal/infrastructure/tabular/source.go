package tabular

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
	"djtracker/pkg/contextx"
	"djtracker/pkg/logx"
	"djtracker/pkg/metrics"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

var ErrUnexpectedStatus = errors.New("unexpected status")

// Loader reads delimited tables from local paths or http(s) URLs. Parsed
// tables are cached; a file is re-read when its modification time changes.
type Loader struct {
	client *http.Client
	cache  *gocache.Cache
}

func NewLoader(client *http.Client, ttl time.Duration) *Loader {
	if client == nil {
		client = http.DefaultClient
	}

	return &Loader{
		client: client,
		cache:  gocache.New(ttl, 2*ttl), //nolint:mnd
	}
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

func (l *Loader) Load(ctx context.Context, location string) (entity.Table, error) {
	if isURL(location) {
		return l.loadURL(ctx, location)
	}

	return l.loadFile(ctx, location)
}

func (l *Loader) cached(key string) (entity.Table, bool) {
	cached, ok := l.cache.Get(key)
	metrics.CacheLookup("table", ok)

	if !ok {
		return entity.Table{}, false
	}

	return cached.(entity.Table), true //nolint:forcetypeassert
}

func (l *Loader) loadFile(ctx context.Context, location string) (entity.Table, error) {
	info, err := os.Stat(location)
	if err != nil {
		return entity.Table{}, fmt.Errorf("os.Stat: %w", err)
	}

	key := location + "@" + info.ModTime().String()
	if table, ok := l.cached(key); ok {
		return table, nil
	}

	fh, err := os.Open(location)
	if err != nil {
		return entity.Table{}, fmt.Errorf("os.Open: %w", err)
	}
	defer fh.Close()

	table, err := Parse(fh, DelimiterFor(location))
	metrics.TableLoad("file", err)

	if err != nil {
		return entity.Table{}, fmt.Errorf("Parse: %w", err)
	}

	table.LastModified = info.ModTime()

	l.cache.SetDefault(key, table)

	logger(ctx).Info(
		"table loaded",
		slog.String(logx.FieldSource, location),
		slog.Int(logx.FieldCount, len(table.Rows)),
	)

	return table, nil
}

func (l *Loader) loadURL(ctx context.Context, location string) (entity.Table, error) {
	if table, ok := l.cached(location); ok {
		return table, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, http.NoBody)
	if err != nil {
		return entity.Table{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return entity.Table{}, fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.TableLoad("url", ErrUnexpectedStatus)

		return entity.Table{}, fmt.Errorf("%s: %w: %d", location, ErrUnexpectedStatus, resp.StatusCode)
	}

	table, err := Parse(resp.Body, DelimiterFor(location))
	metrics.TableLoad("url", err)

	if err != nil {
		return entity.Table{}, fmt.Errorf("Parse: %w", err)
	}

	if lm, err := http.ParseTime(resp.Header.Get("Last-Modified")); err == nil {
		table.LastModified = lm
	}

	l.cache.SetDefault(location, table)

	logger(ctx).Info(
		"table downloaded",
		slog.String(logx.FieldSource, location),
		slog.Int(logx.FieldCount, len(table.Rows)),
	)

	return table, nil
}

// Tracker is the score tracker table source.
type Tracker struct {
	loader   *Loader
	location string
}

func NewTracker(loader *Loader, location string) Tracker {
	return Tracker{loader: loader, location: location}
}

func (t Tracker) Table(ctx context.Context) (entity.Table, error) {
	table, err := t.loader.Load(ctx, t.location)
	if err != nil {
		return entity.Table{}, fmt.Errorf("loader.Load: %w", err)
	}

	return table, nil
}

// Ready checks that the tracker can be read.
func (t Tracker) Ready(ctx context.Context) error {
	_, err := t.Table(ctx)

	return err
}

var ErrNoExport = errors.New("no export configured")

// Exports resolves the export location per play mode.
type Exports struct {
	loader    *Loader
	locations map[value.PlayMode]string
}

func NewExports(loader *Loader, locations map[value.PlayMode]string) Exports {
	return Exports{loader: loader, locations: locations}
}

func (e Exports) Export(ctx context.Context, mode value.PlayMode) (entity.Table, error) {
	location := e.locations[mode]
	if location == "" {
		return entity.Table{}, fmt.Errorf("%s: %w", mode, ErrNoExport)
	}

	table, err := e.loader.Load(ctx, location)
	if err != nil {
		return entity.Table{}, fmt.Errorf("loader.Load: %w", err)
	}

	return table, nil
}
