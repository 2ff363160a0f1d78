package eventapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
	"djtracker/pkg/contextx"
	"djtracker/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrNoEndpoint       = errors.New("no endpoint configured")
)

// Client fetches the events feed. Each play mode has its own endpoint.
type Client struct {
	client    *http.Client
	endpoints map[value.PlayMode]string
}

func NewClient(client *http.Client, endpoints map[value.PlayMode]string) *Client {
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		client:    client,
		endpoints: endpoints,
	}
}

func (c *Client) Events(ctx context.Context, mode value.PlayMode) ([]entity.Event, error) {
	endpoint := c.endpoints[mode]
	if endpoint == "" {
		return nil, fmt.Errorf("%s: %w", mode, ErrNoEndpoint)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var schemas []eventSchema
	if err = json.NewDecoder(resp.Body).Decode(&schemas); err != nil {
		return nil, fmt.Errorf("json.Decode: %w", err)
	}

	logger(ctx).Debug(
		"events fetched",
		slog.String(logx.FieldMode, mode.String()),
		slog.Int(logx.FieldCount, len(schemas)),
	)

	return lo.Map(schemas, func(s eventSchema, _ int) entity.Event {
		return s.toDomain()
	}), nil
}
