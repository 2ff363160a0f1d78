package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"djtracker/internal/domain"
	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
	"djtracker/pkg/contextx"
	"djtracker/pkg/errcodes"
	"djtracker/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type feed interface {
	Events(ctx context.Context, mode value.PlayMode) ([]entity.Event, error)
}

type cache interface {
	Get(ctx context.Context, mode value.PlayMode) ([]entity.Event, bool, error)
	Set(ctx context.Context, mode value.PlayMode, events []entity.Event) error
}

type Service struct {
	feed     feed
	cache    cache
	location *time.Location
	now      func() time.Time
}

func NewService(feed feed, cache cache, location *time.Location) *Service {
	if location == nil {
		location = time.Local
	}

	return &Service{
		feed:     feed,
		cache:    cache,
		location: location,
		now:      time.Now,
	}
}

// WithClock replaces the wall clock used for the "new" flag.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now

	return s
}

// Events returns the feed for the mode, served from cache when possible.
// Cache failures are logged and fall through to the feed.
func (s *Service) Events(ctx context.Context, mode value.PlayMode) ([]entity.Event, error) {
	events, ok, err := s.cache.Get(ctx, mode)
	if err != nil {
		logger(ctx).Warn("cache.Get", slog.String(logx.FieldMode, mode.String()), logx.Error(err))
	}

	if ok {
		return events, nil
	}

	return s.Refresh(ctx, mode)
}

// Refresh fetches the feed and replaces the cached copy.
func (s *Service) Refresh(ctx context.Context, mode value.PlayMode) ([]entity.Event, error) {
	events, err := s.feed.Events(ctx, mode)
	if err != nil {
		return nil, domain.WrapError(
			fmt.Errorf("feed.Events: %w", err),
			errcodes.EventFeedUnavailable,
			"event feed unavailable",
		)
	}

	if err = s.cache.Set(ctx, mode, events); err != nil {
		logger(ctx).Warn("cache.Set", slog.String(logx.FieldMode, mode.String()), logx.Error(err))
	}

	logger(ctx).Info(
		"event feed refreshed",
		slog.String(logx.FieldMode, mode.String()),
		slog.Int(logx.FieldCount, len(events)),
	)

	return events, nil
}

// Listing groups the mode's events into buckets. checked reports the
// per-anchor checkbox state and may be nil.
func (s *Service) Listing(
	ctx context.Context,
	mode value.PlayMode,
	checked func(anchor string) bool,
) ([]entity.EventGroup, error) {
	events, err := s.Events(ctx, mode)
	if err != nil {
		return nil, err
	}

	return Group(events, s.now(), s.location, checked), nil
}

// Urgent returns the running events that end within UrgentThresholdDays.
func (s *Service) Urgent(ctx context.Context, mode value.PlayMode) ([]entity.Event, error) {
	events, err := s.Refresh(ctx, mode)
	if err != nil {
		return nil, err
	}

	var urgent []entity.Event

	for _, e := range SortByRemain(events) {
		if !e.IsEnded() && !e.IsNotStarted() && IsUrgent(e) {
			urgent = append(urgent, e)
		}
	}

	return urgent, nil
}

func (s *Service) Slideshow(
	ctx context.Context,
	mode value.PlayMode,
	animation string,
	intervalMs int,
) (entity.Slideshow, error) {
	events, err := s.Events(ctx, mode)
	if err != nil {
		return entity.Slideshow{}, err
	}

	return NewSlideshow(events, animation, intervalMs), nil
}

// Location is the zone event dates are rendered in.
func (s *Service) Location() *time.Location {
	return s.location
}
