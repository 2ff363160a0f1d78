package eventapi

import (
	"math"
	"strconv"
	"strings"
	"time"

	"djtracker/internal/domain/entity"
)

// eventSchema mirrors one feed entry. The feed is spreadsheet-backed, so
// several fields arrive as numbers, strings or booleans depending on the row.
type eventSchema struct {
	EventNo        any    `json:"event_no"`
	Title          string `json:"title"`
	OrganizerName  string `json:"organizer_name"`
	OrganizerID    string `json:"organizer_id"`
	Hashtag        string `json:"hashtag"`
	EventType      string `json:"event_type"`
	Songs          any    `json:"songs"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Timezone       string `json:"timezone"`
	BannerURL      string `json:"banner_url"`
	InformationURL string `json:"information_url"`
	DateRemain     any    `json:"date_remain"`
	Status         any    `json:"status"`
	Update         string `json:"update"`
}

//nolint:gochecknoglobals
var updateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

func (s eventSchema) toDomain() entity.Event {
	return entity.Event{
		No:             text(s.EventNo),
		Title:          strings.TrimSpace(s.Title),
		OrganizerName:  strings.TrimSpace(s.OrganizerName),
		OrganizerID:    strings.TrimSpace(s.OrganizerID),
		Hashtag:        strings.TrimSpace(s.Hashtag),
		EventType:      strings.TrimSpace(s.EventType),
		Songs:          songs(s.Songs),
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		Timezone:       strings.TrimSpace(s.Timezone),
		BannerURL:      strings.TrimSpace(s.BannerURL),
		InformationURL: strings.TrimSpace(s.InformationURL),
		DateRemain:     remain(s.DateRemain),
		Status:         status(s.Status),
		Update:         update(s.Update),
	}
}

func text(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func songs(v any) []string {
	var out []string

	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if s := text(item); s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, s := range strings.Split(t, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}

	return out
}

func remain(v any) *float64 {
	var f float64

	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}

		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	return &f
}

// status maps bool false and the exact string "false" to false and every
// other present value to true. A missing or empty status stays nil.
func status(v any) *bool {
	var b bool
	switch t := v.(type) {
	case bool:
		b = t
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		b = t != "false"
	case float64:
		b = true
	default:
		return nil
	}
	return &b
}

func update(s string) time.Time {
	s = strings.TrimSpace(s)

	for _, layout := range updateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}
