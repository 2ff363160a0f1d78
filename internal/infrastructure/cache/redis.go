package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
	"djtracker/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Redis shares event feeds between replicas.
type Redis struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedis(client redis.UniversalClient, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		ttl:    ttl,
	}
}

func (r *Redis) Get(ctx context.Context, mode value.PlayMode) ([]entity.Event, bool, error) {
	raw, err := r.client.Get(ctx, key(mode)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheLookup("redis", false)

		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("client.Get: %w", err)
	}

	var events []entity.Event
	if err = json.Unmarshal(raw, &events); err != nil {
		return nil, false, fmt.Errorf("json.Unmarshal: %w", err)
	}

	metrics.CacheLookup("redis", true)

	return events, true, nil
}

func (r *Redis) Set(ctx context.Context, mode value.PlayMode, events []entity.Event) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err = r.client.Set(ctx, key(mode), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}
