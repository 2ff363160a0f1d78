package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	"golang.org/x/sync/errgroup"

	"djtracker/internal/config"
	"djtracker/internal/domain/entity"
	"djtracker/internal/infrastructure/notifier"
	"djtracker/internal/server"
	"djtracker/internal/transport/bot"
	"djtracker/internal/transport/bot/handler"
	"djtracker/internal/worker"
	"djtracker/pkg/application/connectors"
	"djtracker/pkg/application/modules"
	"djtracker/pkg/contextx"
	"djtracker/pkg/logx"
	"djtracker/pkg/probe"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const alertBuffer = 16

// Run serves the HTTP API and the optional watcher and bot until ctx is
// cancelled or a module fails.
func Run(ctx context.Context, cfg config.Config) error {
	var redisConn *connectors.Redis

	if cfg.Redis.Enabled() {
		redisConn = &connectors.Redis{
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}
		defer redisConn.Close(context.WithoutCancel(ctx))
	}

	services := NewServices(ctx, cfg, redisConn)

	g, ctx := errgroup.WithContext(ctx)

	srv := server.NewServer(
		server.NewScoreServer(services.Scores),
		server.NewEventServer(services.Events),
		server.NewExportServer(services.Exports),
	)

	modules.HTTPServer{
		Address:           cfg.HTTP.ListenAddress,
		Handler:           srv.Handler(logx.NewSensitiveDataMasker(), cfg.App.LogFieldMaxLen),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g)

	checks := map[string]probe.Check{
		"tracker": services.Tracker.Ready,
	}
	if redisConn != nil {
		checks["redis"] = redisConn.Ping
	}

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		Checks:        checks,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress:     cfg.HTTP.MetricsListenAddress,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}.Run(ctx, g)

	var tgBot *telego.Bot

	if cfg.Bot.Enabled() {
		b, err := telego.NewBot(cfg.Bot.Token)
		if err != nil {
			return fmt.Errorf("telego.NewBot: %w", err)
		}

		tgBot = b

		commandBot, err := bot.New(ctx, tgBot, handler.New(services.Events), cfg.Bot.AllowedChats...)
		if err != nil {
			return fmt.Errorf("bot.New: %w", err)
		}

		g.Go(func() error {
			return commandBot.Run(ctx)
		})
	}

	if cfg.Watcher.Enabled {
		runWatcher(ctx, g, cfg, services, redisConn, tgBot)
	}

	logger(ctx).Info(
		"application started",
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// runWatcher schedules the event watcher through asynq when Redis is
// configured and as an in-process ticker otherwise. Alerts go to the bot
// chat, or to the log when no chat is configured.
func runWatcher(
	ctx context.Context,
	g *errgroup.Group,
	cfg config.Config,
	services Services,
	redisConn *connectors.Redis,
	tgBot *telego.Bot,
) {
	alerts := make(chan entity.UrgentEvent, alertBuffer)

	watcher := worker.NewEventWatcher(services.Events, alerts, cfg.Watcher.PlayModes()...).
		WithInterval(cfg.Watcher.Interval)

	if tgBot != nil && cfg.Bot.ChatID != 0 {
		alertBot := notifier.NewTelegramBot(tgBot, cfg.Bot.ChatID, cfg.App.Location())

		g.Go(func() error {
			return ignoreCanceled(alertBot.Run(ctx, alerts))
		})
	} else {
		g.Go(func() error {
			return ignoreCanceled(logAlerts(ctx, alerts))
		})
	}

	if redisConn == nil {
		g.Go(func() error {
			return ignoreCanceled(watcher.Run(ctx))
		})

		return
	}

	asynqServer := modules.AsynqServer{
		RedisUsername: cfg.Redis.Username,
		RedisPassword: cfg.Redis.Password,
		RedisAddress:  cfg.Redis.Address,
		RedisDB:       cfg.Redis.DatabaseNumber,
	}

	asynqServer.Run(ctx, g, modules.AsynqQueues{cfg.Watcher.Queue: 1}, modules.AsynqHandler{
		Pattern: worker.TaskRefreshEvents,
		Handle:  watcher.HandleRefreshTask,
	})

	asynqServer.RunScheduler(ctx, g, modules.AsynqPeriodic{
		Spec:     "@every " + cfg.Watcher.Interval.String(),
		TaskType: worker.TaskRefreshEvents,
		Queue:    cfg.Watcher.Queue,
	})
}

func logAlerts(ctx context.Context, alerts <-chan entity.UrgentEvent) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case alert := <-alerts:
			logger(ctx).Warn(
				"urgent event",
				slog.String(logx.FieldMode, alert.Mode.String()),
				slog.String(logx.FieldEventID, alert.Event.No),
				slog.String("title", alert.Event.Title),
			)
		}
	}
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
