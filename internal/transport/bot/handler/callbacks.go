package handler

import (
	"fmt"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"djtracker/internal/domain/value"
	"djtracker/internal/transport/bot/view"
	"djtracker/pkg/logx"
)

const modeCallbackPrefix = "events:"

// OnEventsCallback redraws the listing for the mode in "events:<MODE>".
func (h *Handler) OnEventsCallback(ctx *th.Context, query telego.CallbackQuery) error {
	mode, err := ParseModeCallback(query.Data)
	if err != nil {
		_ = ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).WithText(view.EventsUsage))

		return nil
	}

	groups, err := h.events.Listing(ctx, mode, nil)
	if err != nil {
		logger(ctx).Error("events.Listing", logx.Error(err))

		_ = ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).
			WithText(view.EventsUnavailable).WithShowAlert())

		return nil
	}

	if query.Message != nil {
		_, err = ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
			ChatID:      tu.ID(query.Message.GetChat().ID),
			MessageID:   query.Message.GetMessageID(),
			Text:        view.Events(mode, groups),
			ParseMode:   telego.ModeHTML,
			ReplyMarkup: modeKeyboard(mode),
		})
		// Telegram rejects an edit that leaves the text unchanged.
		if err != nil {
			logger(ctx).Debug("bot.EditMessageText", logx.Error(err))
		}
	}

	_ = ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))

	return nil
}

// ParseModeCallback reads the play mode out of "events:<MODE>".
func ParseModeCallback(data string) (value.PlayMode, error) {
	raw, ok := strings.CutPrefix(data, modeCallbackPrefix)
	if !ok {
		return "", fmt.Errorf("callback %q: %w", data, ErrUsage)
	}

	mode, err := value.ParsePlayMode(raw)
	if err != nil {
		return "", fmt.Errorf("value.ParsePlayMode: %w", err)
	}

	return mode, nil
}

// modeKeyboard offers every play mode, the current one marked.
func modeKeyboard(current value.PlayMode) *telego.InlineKeyboardMarkup {
	buttons := make([]telego.InlineKeyboardButton, 0, len(value.PlayModes()))

	for _, mode := range value.PlayModes() {
		label := mode.String()
		if mode == current {
			label = "• " + label + " •"
		}

		buttons = append(buttons, tu.InlineKeyboardButton(label).
			WithCallbackData(modeCallbackPrefix+mode.String()))
	}

	return tu.InlineKeyboard(tu.InlineKeyboardRow(buttons...))
}
