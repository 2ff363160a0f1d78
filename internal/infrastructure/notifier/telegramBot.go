package notifier

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/service/event"
	"djtracker/pkg/logx"
)

type sender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

type TelegramBot struct {
	bot      sender
	chatID   int64
	location *time.Location
}

func NewTelegramBot(bot sender, chatID int64, location *time.Location) *TelegramBot {
	if location == nil {
		location = time.Local
	}

	return &TelegramBot{
		bot:      bot,
		chatID:   chatID,
		location: location,
	}
}

// Run sends every alert from the channel until it is closed or ctx is done.
func (b *TelegramBot) Run(ctx context.Context, alerts <-chan entity.UrgentEvent) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case alert, ok := <-alerts:
			if !ok {
				return nil
			}

			if err := b.SendAlert(ctx, alert); err != nil {
				logger(ctx).Error("failed to send alert", logx.Error(err))
			}
		}
	}
}

func (b *TelegramBot) SendAlert(ctx context.Context, alert entity.UrgentEvent) error {
	msg := tu.Message(
		tu.ID(b.chatID),
		AlertText(alert, b.location),
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}

// AlertText renders the HTML message body for an urgent event.
func AlertText(alert entity.UrgentEvent, location *time.Location) string {
	e := alert.Event

	var sb strings.Builder

	fmt.Fprintf(&sb, "⏳ <b>%s</b> [%s]\n", html.EscapeString(e.Title), alert.Mode)
	fmt.Fprintf(&sb, "%s\n", html.EscapeString(event.RemainLabel(e)))

	if end := event.FormatDateTime(e.EndDate, location); end != "" {
		fmt.Fprintf(&sb, "🏁 Ends %s\n", html.EscapeString(end))
	}

	if e.InformationURL != "" {
		fmt.Fprintf(&sb, "\n🔗 <a href=\"%s\">Details</a>", html.EscapeString(e.InformationURL))
	}

	return strings.TrimRight(sb.String(), "\n")
}
