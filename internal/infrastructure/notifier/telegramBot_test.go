package notifier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mymmrac/telego"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
	"djtracker/internal/infrastructure/notifier"
)

type fakeSender struct {
	sent []*telego.SendMessageParams
	err  error
}

func (f *fakeSender) SendMessage(_ context.Context, params *telego.SendMessageParams) (*telego.Message, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.sent = append(f.sent, params)

	return &telego.Message{}, nil
}

func urgent() entity.UrgentEvent {
	return entity.UrgentEvent{
		Mode: value.PlayModeDP,
		Event: entity.Event{
			Title:          "Spring <Cup>",
			EndDate:        "2025-03-10T12:00:00Z",
			InformationURL: "https://example.com/cup?a=1&b=2",
			DateRemain:     lo.ToPtr(1.5),
		},
	}
}

func TestAlertText(t *testing.T) {
	rq := require.New(t)

	text := notifier.AlertText(urgent(), time.UTC)

	rq.Equal(
		"⏳ <b>Spring &lt;Cup&gt;</b> [DP]\n"+
			"1 day left\n"+
			"🏁 Ends 2025/03/10(Mon) 12:00\n"+
			"\n🔗 <a href=\"https://example.com/cup?a=1&amp;b=2\">Details</a>",
		text,
	)
}

func TestTelegramBotRun(t *testing.T) {
	rq := require.New(t)

	sender := &fakeSender{}
	bot := notifier.NewTelegramBot(sender, 42, time.UTC)

	alerts := make(chan entity.UrgentEvent, 2)
	alerts <- urgent()
	alerts <- urgent()
	close(alerts)

	rq.NoError(bot.Run(context.Background(), alerts))
	rq.Len(sender.sent, 2)
	rq.Equal(int64(42), sender.sent[0].ChatID.ID)
	rq.Equal(telego.ModeHTML, sender.sent[0].ParseMode)

	sender.err = errors.New("telegram down")
	rq.Error(bot.SendAlert(context.Background(), urgent()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rq.ErrorIs(bot.Run(ctx, make(chan entity.UrgentEvent)), context.Canceled)
}
