package event

import (
	"net/url"
	"strings"
	"time"

	"djtracker/internal/domain/entity"
)

const (
	labelDuration  = "⏰ Event Duration"
	labelOrganizer = "👤 Organized by"
	labelHashtag   = "🏷️ Hashtag"
	labelEventType = "🎯 Event Type"
	labelSongs     = "🎵 Songs"

	displayLayout = "2006/01/02(Mon) 15:04"
)

var inputLayouts = []string{ //nolint:gochecknoglobals
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	time.DateOnly,
	"2006/01/02",
}

// Details lists the non-empty detail lines of an event.
func Details(e entity.Event, location *time.Location) []entity.DetailLine {
	var lines []entity.DetailLine

	if e.StartDate != "" && e.EndDate != "" {
		lines = append(lines, entity.DetailLine{
			Label: labelDuration,
			Value: FormatDateTime(e.StartDate, location) + " - " + FormatDateTime(e.EndDate, location) +
				" (" + e.Timezone + ")",
		})
	}

	if e.OrganizerName != "" {
		lines = append(lines, entity.DetailLine{
			Label: labelOrganizer,
			Value: e.OrganizerName,
			Link:  "https://x.com/" + url.PathEscape(e.OrganizerID),
		})
	}

	if tag := strings.TrimPrefix(e.Hashtag, "#"); tag != "" {
		lines = append(lines, entity.DetailLine{
			Label: labelHashtag,
			Value: "#" + tag,
			Link:  "https://x.com/hashtag/" + url.PathEscape(tag),
		})
	}

	if e.EventType != "" {
		lines = append(lines, entity.DetailLine{Label: labelEventType, Value: e.EventType})
	}

	if songs := strings.Join(e.Songs, ", "); songs != "" {
		lines = append(lines, entity.DetailLine{Label: labelSongs, Value: songs})
	}

	return lines
}

// FormatDateTime renders s as "yyyy/mm/dd(Ddd) hh:mm" in location. Input
// that does not parse is returned unchanged.
func FormatDateTime(s string, location *time.Location) string {
	if s == "" {
		return ""
	}

	if location == nil {
		location = time.Local
	}

	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, s, location); err == nil {
			return t.In(location).Format(displayLayout)
		}
	}

	return s
}
