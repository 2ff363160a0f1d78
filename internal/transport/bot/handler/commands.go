package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"djtracker/internal/domain/service/rank"
	"djtracker/internal/domain/value"
	"djtracker/internal/transport/bot/view"
	"djtracker/pkg/contextx"
	"djtracker/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

var ErrUsage = errors.New("usage")

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

// OnEvents lists the running events. Usage: /events [SP|DP]
func (h *Handler) OnEvents(ctx *th.Context, msg telego.Message) error {
	mode := value.PlayModeDP

	if args := strings.Fields(msg.Text); len(args) > 1 {
		parsed, err := value.ParsePlayMode(args[1])
		if err != nil {
			return h.sendHTML(ctx, msg.Chat.ID, view.EventsUsage)
		}

		mode = parsed
	}

	groups, err := h.events.Listing(ctx, mode, nil)
	if err != nil {
		logger(ctx).Error("events.Listing", logx.Error(err))

		return h.sendHTML(ctx, msg.Chat.ID, view.EventsUnavailable)
	}

	_, err = ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:      telego.ChatID{ID: msg.Chat.ID},
		Text:        view.Events(mode, groups),
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: modeKeyboard(mode),
	})
	if err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}

// OnRank evaluates a score. Usage: /rank <letter> <score> <notes>
func (h *Handler) OnRank(ctx *th.Context, msg telego.Message) error {
	letter, score, notes, err := ParseRankArgs(msg.Text)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, view.RankUsage)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Rank(rank.Evaluate(letter, score, notes)))
}

// OnLamp decodes a clear lamp code. Usage: /lamp <code>
func (h *Handler) OnLamp(ctx *th.Context, msg telego.Message) error {
	args := strings.Fields(msg.Text)
	if len(args) < 2 { //nolint:mnd
		return h.sendHTML(ctx, msg.Chat.ID, view.LampUsage)
	}

	code := strings.Join(args[1:], "")

	return h.sendHTML(ctx, msg.Chat.ID, view.Lamp(value.NormalizeLampCode(code), value.DecodeLamp(code)))
}

// ParseRankArgs reads "/rank <letter> <score> <notes>".
func ParseRankArgs(text string) (letter string, score, notes int, err error) {
	args := strings.Fields(text)
	if len(args) != 4 { //nolint:mnd
		return "", 0, 0, ErrUsage
	}

	if score, err = strconv.Atoi(args[2]); err != nil || score < 0 {
		return "", 0, 0, fmt.Errorf("score: %w", ErrUsage)
	}

	if notes, err = strconv.Atoi(args[3]); err != nil || notes < 0 {
		return "", 0, 0, fmt.Errorf("notes: %w", ErrUsage)
	}

	return strings.ToUpper(args[1]), score, notes, nil
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})
	if err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}
