package handler

import (
	"context"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
)

type eventService interface {
	Listing(ctx context.Context, mode value.PlayMode, checked func(anchor string) bool) ([]entity.EventGroup, error)
}

type Handler struct {
	events eventService
}

func New(events eventService) *Handler {
	return &Handler{
		events: events,
	}
}
