package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/hibiken/asynq"
	gocache "github.com/patrickmn/go-cache"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
	"djtracker/pkg/logx"
	"djtracker/pkg/metrics"
)

var ErrAlreadyRunning = errors.New("watcher is already running")

const (
	defaultInterval = 15 * time.Minute
	alertMemory     = 24 * time.Hour
)

type urgentSource interface {
	Urgent(ctx context.Context, mode value.PlayMode) ([]entity.Event, error)
}

// EventWatcher refreshes the event feeds and pushes every urgent event once
// per alertMemory window.
type EventWatcher struct {
	events   urgentSource
	alerts   chan<- entity.UrgentEvent
	modes    []value.PlayMode
	interval time.Duration
	sent     *gocache.Cache

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewEventWatcher(
	events urgentSource,
	alerts chan<- entity.UrgentEvent,
	modes ...value.PlayMode,
) *EventWatcher {
	if len(modes) == 0 {
		modes = value.PlayModes()
	}

	return &EventWatcher{
		events:   events,
		alerts:   alerts,
		modes:    modes,
		interval: defaultInterval,
		sent:     gocache.New(alertMemory, time.Hour),
	}
}

func (w *EventWatcher) WithInterval(interval time.Duration) *EventWatcher {
	if interval > 0 {
		w.interval = interval
	}

	return w
}

// Start runs the watcher in the background until Stop or ctx cancellation.
func (w *EventWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return ErrAlreadyRunning
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("event watcher stopped", logx.Error(err))
		}
	}()

	return nil
}

func (w *EventWatcher) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()

		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *EventWatcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.isRunning
}

// Run scans immediately and then on every tick.
func (w *EventWatcher) Run(ctx context.Context) error {
	logger(ctx).Info("event watcher started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if err := w.Scan(ctx); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			logger(ctx).Info("event watcher stopped")

			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// HandleRefreshTask is the asynq handler for TaskRefreshEvents.
func (w *EventWatcher) HandleRefreshTask(ctx context.Context, _ *asynq.Task) error {
	return w.Scan(ctx)
}

// Scan refreshes every mode and forwards new urgent events. Feed failures
// are logged per mode; only cancellation is returned.
func (w *EventWatcher) Scan(ctx context.Context) error {
	var alerted int

	for _, mode := range w.modes {
		urgent, err := w.events.Urgent(ctx, mode)
		if err != nil {
			logger(ctx).Error("events.Urgent", slog.String(logx.FieldMode, mode.String()), logx.Error(err))

			continue
		}

		for _, e := range urgent {
			key := alertKey(mode, e)
			if _, seen := w.sent.Get(key); seen {
				continue
			}

			select {
			case w.alerts <- entity.UrgentEvent{Mode: mode, Event: e}:
				w.sent.SetDefault(key, struct{}{})
				metrics.EventAlert(mode.String())
				alerted++
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	if alerted > 0 {
		logger(ctx).Info("urgent events alerted", slog.Int(logx.FieldCount, alerted))
	}

	return nil
}

func alertKey(mode value.PlayMode, e entity.Event) string {
	id := e.No
	if id == "" {
		id = e.Title
	}

	return mode.String() + ":" + id
}
