package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"djtracker/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, allowedChats ...int64) {
	group := bh.Group(th.AnyMessage())

	if len(allowedChats) > 0 {
		group.Use(middleware.AllowedChats(allowedChats...))
	}

	group.HandleMessage(h.OnStart, th.CommandEqual("start"))
	group.HandleMessage(h.OnStart, th.CommandEqual("help"))
	group.HandleMessage(h.OnEvents, th.CommandEqual("events"))
	group.HandleMessage(h.OnRank, th.CommandEqual("rank"))
	group.HandleMessage(h.OnLamp, th.CommandEqual("lamp"))

	callbacks := bh.Group(th.AnyCallbackQuery())

	if len(allowedChats) > 0 {
		callbacks.Use(middleware.AllowedChats(allowedChats...))
	}

	callbacks.HandleCallbackQuery(h.OnEventsCallback, th.CallbackDataPrefix(modeCallbackPrefix))
}
