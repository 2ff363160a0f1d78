package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"djtracker/internal/transport/bot/handler"
	"djtracker/pkg/contextx"
	"djtracker/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const longPollingTimeout = 60

// Bot serves the chat commands over long polling.
type Bot struct {
	botHandler *th.BotHandler
}

// New starts long polling and registers the command routes. allowedChats
// restricts who may talk to the bot; empty allows everyone.
func New(
	ctx context.Context,
	bot *telego.Bot,
	commandHandler *handler.Handler,
	allowedChats ...int64,
) (*Bot, error) {
	updates, err := bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: longPollingTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(bot, updates)
	if err != nil {
		return nil, fmt.Errorf("th.NewBotHandler: %w", err)
	}

	commandHandler.RegisterRoutes(botHandler, allowedChats...)

	return &Bot{
		botHandler: botHandler,
	}, nil
}

// Run handles updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	go func() {
		if err := b.botHandler.Start(); err != nil {
			logger(ctx).Error("botHandler.Start", logx.Error(err))
		}
	}()

	logger(ctx).Info("telegram bot started")

	<-ctx.Done()

	if err := b.botHandler.Stop(); err != nil {
		logger(ctx).Error("botHandler.Stop", logx.Error(err))
	}

	logger(ctx).Info("telegram bot stopped")

	return nil
}
