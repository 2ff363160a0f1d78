package cache

import (
	"context"
	"slices"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
	"djtracker/pkg/metrics"
)

const keyPrefix = "djtracker:events:"

func key(mode value.PlayMode) string {
	return keyPrefix + mode.String()
}

// Memory keeps event feeds in process memory.
type Memory struct {
	cache *gocache.Cache
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{cache: gocache.New(ttl, 2*ttl)} //nolint:mnd
}

func (m *Memory) Get(_ context.Context, mode value.PlayMode) ([]entity.Event, bool, error) {
	cached, ok := m.cache.Get(key(mode))
	metrics.CacheLookup("memory", ok)

	if !ok {
		return nil, false, nil
	}

	return slices.Clone(cached.([]entity.Event)), true, nil //nolint:forcetypeassert
}

func (m *Memory) Set(_ context.Context, mode value.PlayMode, events []entity.Event) error {
	m.cache.SetDefault(key(mode), slices.Clone(events))

	return nil
}
