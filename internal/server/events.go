package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
	"djtracker/pkg/errcodes"
	"djtracker/pkg/httpx/reply"
	"djtracker/pkg/httpx/req"
	"djtracker/pkg/rest"
)

type eventService interface {
	Listing(ctx context.Context, mode value.PlayMode, checked func(anchor string) bool) ([]entity.EventGroup, error)
	Slideshow(ctx context.Context, mode value.PlayMode, animation string, intervalMs int) (entity.Slideshow, error)
}

type EventServer struct {
	eventService eventService
}

func NewEventServer(eventService eventService) EventServer {
	return EventServer{
		eventService: eventService,
	}
}

func (s EventServer) getV1Events(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	mode, err := playMode(r, "type", errcodes.InvalidPlayType)
	if err != nil {
		return err
	}

	groups, err := s.eventService.Listing(ctx, mode, checkedCookies(r))
	if err != nil {
		return fmt.Errorf("eventService.Listing: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Events{
		Type: mode.String(),
		Groups: lo.Map(groups, func(g entity.EventGroup, _ int) rest.EventGroup {
			return newRESTEventGroup(g)
		}),
	})

	return nil
}

// putV1EventCheck stores the checkbox state in a cookie; nothing is kept
// server-side.
func (s EventServer) putV1EventCheck(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	anchor, err := eventID(chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	var request rest.CheckRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	http.SetCookie(w, checkCookie(anchor, *request.Checked))

	reply.JSON(ctx, w, http.StatusOK, rest.Check{
		Anchor:  anchor,
		Checked: *request.Checked,
	})

	return nil
}

func (s EventServer) getV1Slideshow(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	mode, err := playMode(r, "type", errcodes.InvalidPlayType)
	if err != nil {
		return err
	}

	interval, err := intervalMs(r)
	if err != nil {
		return err
	}

	slideshow, err := s.eventService.Slideshow(ctx, mode, r.URL.Query().Get("animation"), interval)
	if err != nil {
		return fmt.Errorf("eventService.Slideshow: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSlideshow(slideshow))

	return nil
}
