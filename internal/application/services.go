package application

import (
	"context"
	"net/http"

	"djtracker/internal/config"
	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/service/event"
	"djtracker/internal/domain/service/export"
	"djtracker/internal/domain/service/score"
	"djtracker/internal/domain/value"
	"djtracker/internal/infrastructure/cache"
	"djtracker/internal/infrastructure/eventapi"
	"djtracker/internal/infrastructure/profile"
	"djtracker/internal/infrastructure/tabular"
	"djtracker/pkg/application/connectors"
	"djtracker/pkg/httpx"
	"djtracker/pkg/logx"
)

type eventCache interface {
	Get(ctx context.Context, mode value.PlayMode) ([]entity.Event, bool, error)
	Set(ctx context.Context, mode value.PlayMode, events []entity.Event) error
}

// Services are the domain services shared by the server, the bot and the CLI.
type Services struct {
	Tracker tabular.Tracker
	Scores  *score.Service
	Events  *event.Service
	Exports *export.Service
}

// NewServices wires the sources. A nil redisConn keeps the event cache in
// process memory.
func NewServices(ctx context.Context, cfg config.Config, redisConn *connectors.Redis) Services {
	loader := tabular.NewLoader(upstreamClient(cfg, "tabular"), cfg.Tracker.CacheTTL)
	tracker := tabular.NewTracker(loader, cfg.Tracker.Location)

	var feedCache eventCache

	if redisConn != nil {
		feedCache = cache.NewRedis(redisConn.Client(ctx), cfg.Events.CacheTTL)
	} else {
		feedCache = cache.NewMemory(cfg.Events.CacheTTL)
	}

	return Services{
		Tracker: tracker,
		Scores:  score.NewService(tracker, profile.NewFile(cfg.App.ProfilePath)),
		Events: event.NewService(
			eventapi.NewClient(upstreamClient(cfg, "events-api"), cfg.Events.Endpoints()),
			feedCache,
			cfg.App.Location(),
		),
		Exports: export.NewService(tabular.NewExports(loader, cfg.Exports.Locations())),
	}
}

func upstreamClient(cfg config.Config, upstream string) *http.Client {
	return &http.Client{ //nolint:exhaustruct
		Timeout: cfg.HTTP.UpstreamTimeout,
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(cfg.App.LogFieldMaxLen),
			httpx.WithUpstream(upstream),
		),
	}
}
