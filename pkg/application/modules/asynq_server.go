package modules

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"
)

type AsynqQueues map[string]int

type AsynqHandler struct {
	Pattern string
	Handle  func(context.Context, *asynq.Task) error
}

// AsynqPeriodic enqueues TaskType on the cron spec (e.g. "@every 5m").
type AsynqPeriodic struct {
	Spec     string
	TaskType string
	Queue    string
}

type AsynqServer struct {
	RedisUsername string
	RedisPassword string
	RedisAddress  string
	RedisDB       int
}

func (s AsynqServer) redisConnection() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     s.RedisAddress,
		Username: s.RedisUsername,
		Password: s.RedisPassword,
		DB:       s.RedisDB,
	}
}

func (s AsynqServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	queues AsynqQueues,
	handlers ...AsynqHandler,
) {
	g.Go(func() error {
		worker := asynq.NewServer(s.redisConnection(), asynq.Config{
			BaseContext: func() context.Context { return ctx },
			Queues:      queues,
		})

		mux := asynq.NewServeMux()

		for _, h := range handlers {
			mux.HandleFunc(h.Pattern, h.Handle)
		}

		if err := worker.Start(mux); err != nil {
			return fmt.Errorf("asynqServer.Start: %w", err)
		}

		logger(ctx).Info("asynq server started", slog.String("redis-address", s.RedisAddress), slog.Int("redis-db", s.RedisDB))

		<-ctx.Done()

		worker.Shutdown()

		logger(ctx).Info("asynq server stopped", slog.String("redis-address", s.RedisAddress), slog.Int("redis-db", s.RedisDB))

		return nil
	})
}

// RunScheduler registers periodic tasks and keeps the scheduler alive until
// ctx is cancelled.
func (s AsynqServer) RunScheduler(
	ctx context.Context,
	g *errgroup.Group,
	periodic ...AsynqPeriodic,
) {
	g.Go(func() error {
		scheduler := asynq.NewScheduler(s.redisConnection(), nil)

		for _, p := range periodic {
			entryID, err := scheduler.Register(p.Spec, asynq.NewTask(p.TaskType, nil), asynq.Queue(p.Queue))
			if err != nil {
				return fmt.Errorf("scheduler.Register: %w", err)
			}

			logger(ctx).Info(
				"asynq periodic task registered",
				slog.String("entry", entryID),
				slog.String("task", p.TaskType),
				slog.String("spec", p.Spec),
			)
		}

		if err := scheduler.Start(); err != nil {
			return fmt.Errorf("scheduler.Start: %w", err)
		}

		<-ctx.Done()

		scheduler.Shutdown()

		logger(ctx).Info("asynq scheduler stopped")

		return nil
	})
}
