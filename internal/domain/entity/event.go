package entity

import (
	"time"

	"djtracker/internal/domain/value"
)

type Event struct {
	No             string
	Title          string
	OrganizerName  string
	OrganizerID    string
	Hashtag        string
	EventType      string
	Songs          []string
	StartDate      string
	EndDate        string
	Timezone       string
	BannerURL      string
	InformationURL string
	// DateRemain is nil when the feed value is missing or not numeric.
	DateRemain *float64
	// Status is nil when the feed omits it. false means not started yet.
	Status *bool
	Update time.Time
}

// IsEnded reports a negative remain value.
func (e Event) IsEnded() bool {
	return e.DateRemain != nil && *e.DateRemain < 0
}

// IsNotStarted reports an explicit false status.
func (e Event) IsNotStarted() bool {
	return e.Status != nil && !*e.Status
}

type DetailLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Link  string `json:"link,omitempty"`
}

// EventView is an event positioned in the listing with its derived fields.
type EventView struct {
	Anchor  string            `json:"anchor"`
	No      string            `json:"no"`
	Title   string            `json:"title"`
	Remain  string            `json:"remain"`
	Urgent  bool              `json:"urgent"`
	New     bool              `json:"new"`
	Checked bool              `json:"checked"`
	Banner  string            `json:"bannerUrl,omitempty"`
	Info    string            `json:"informationUrl,omitempty"`
	By      string            `json:"organizer,omitempty"`
	Bucket  value.EventBucket `json:"bucket"`
	Details []DetailLine      `json:"details"`
}

type EventGroup struct {
	Bucket value.EventBucket `json:"bucket"`
	Title  string            `json:"title"`
	Muted  bool              `json:"muted"`
	Events []EventView       `json:"events"`
}

type Slideshow struct {
	Animation  string   `json:"animation"`
	IntervalMs int      `json:"intervalMs"`
	Banners    []string `json:"banners"`
}

// UrgentEvent is an alert about a running event close to its end.
type UrgentEvent struct {
	Mode  value.PlayMode
	Event Event
}
