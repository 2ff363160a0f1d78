package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
	"djtracker/internal/infrastructure/cache"
)

func TestMemory(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	m := cache.NewMemory(time.Minute)

	_, ok, err := m.Get(ctx, value.PlayModeDP)
	rq.NoError(err)
	rq.False(ok)

	events := []entity.Event{{No: "1", Title: "Cup"}}
	rq.NoError(m.Set(ctx, value.PlayModeDP, events))

	events[0].Title = "mutated"

	got, ok, err := m.Get(ctx, value.PlayModeDP)
	rq.NoError(err)
	rq.True(ok)
	rq.Equal("Cup", got[0].Title)

	_, ok, err = m.Get(ctx, value.PlayModeSP)
	rq.NoError(err)
	rq.False(ok, "modes are cached separately")
}

func TestMemoryExpires(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	m := cache.NewMemory(10 * time.Millisecond)
	rq.NoError(m.Set(ctx, value.PlayModeSP, []entity.Event{{No: "1"}}))

	rq.Eventually(func() bool {
		_, ok, _ := m.Get(ctx, value.PlayModeSP)

		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestRedisUnreachable(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	r := cache.NewRedis(client, time.Minute)

	_, ok, err := r.Get(ctx, value.PlayModeDP)
	rq.Error(err)
	rq.False(ok)

	rq.Error(r.Set(ctx, value.PlayModeDP, []entity.Event{{No: "1"}}))
}
