package event

import (
	"strings"

	"djtracker/internal/domain/entity"
)

const (
	DefaultAnimation  = "fade"
	DefaultIntervalMs = 5000
	noImageMarker     = "no_image"
)

// Banners collects trimmed banner URLs, skipping blanks and placeholders.
func Banners(events []entity.Event) []string {
	var banners []string

	for _, e := range events {
		u := strings.TrimSpace(e.BannerURL)
		if u == "" || strings.Contains(strings.ToLower(u), noImageMarker) {
			continue
		}

		banners = append(banners, u)
	}

	return banners
}

func NewSlideshow(events []entity.Event, animation string, intervalMs int) entity.Slideshow {
	if animation == "" {
		animation = DefaultAnimation
	}

	if intervalMs <= 0 {
		intervalMs = DefaultIntervalMs
	}

	return entity.Slideshow{
		Animation:  animation,
		IntervalMs: intervalMs,
		Banners:    Banners(events),
	}
}

// Playlist cycles through banners. Not safe for concurrent use.
type Playlist struct {
	banners []string
	next    int
}

func NewPlaylist(banners []string) *Playlist {
	return &Playlist{banners: banners}
}

func (p *Playlist) Len() int {
	return len(p.banners)
}

// Next returns the next banner that load accepts, skipping failures. ok is
// false when the playlist is empty or every banner failed in this round.
func (p *Playlist) Next(load func(url string) error) (url string, ok bool) {
	for range p.banners {
		candidate := p.banners[p.next]
		p.next = (p.next + 1) % len(p.banners)

		if load == nil || load(candidate) == nil {
			return candidate, true
		}
	}

	return "", false
}
