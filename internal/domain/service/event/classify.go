package event

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"time"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
)

const (
	UrgentThresholdDays   = 3
	NewEventThresholdDays = 7
	withinWeekDays        = 7
)

// Classify puts an event into exactly one bucket. A not-started status wins
// over the remain value, and a missing remain value counts as over a week.
func Classify(e entity.Event) value.EventBucket {
	switch {
	case e.IsNotStarted():
		return value.BucketUpcoming
	case e.DateRemain == nil:
		return value.BucketOverWeek
	case *e.DateRemain < 0:
		return value.BucketEnded
	case *e.DateRemain <= withinWeekDays:
		return value.BucketWithinWeek
	default:
		return value.BucketOverWeek
	}
}

// SortByRemain returns a copy ordered by ascending remain value. Events
// without one go last and equal keys keep feed order.
func SortByRemain(events []entity.Event) []entity.Event {
	sorted := slices.Clone(events)

	slices.SortStableFunc(sorted, func(a, b entity.Event) int {
		return cmp.Compare(remainKey(a), remainKey(b))
	})

	return sorted
}

func remainKey(e entity.Event) float64 {
	if e.DateRemain == nil {
		return math.Inf(1)
	}

	return *e.DateRemain
}

func Anchor(i int) string {
	return "event-" + strconv.Itoa(i)
}

// Group sorts the events, anchors them by position and emits non-empty
// buckets in priority order.
func Group(
	events []entity.Event,
	now time.Time,
	location *time.Location,
	checked func(anchor string) bool,
) []entity.EventGroup {
	byBucket := make(map[value.EventBucket][]entity.EventView)

	for i, e := range SortByRemain(events) {
		view := NewView(e, Anchor(i), now, location)
		if checked != nil {
			view.Checked = checked(view.Anchor)
		}

		byBucket[view.Bucket] = append(byBucket[view.Bucket], view)
	}

	groups := make([]entity.EventGroup, 0, len(byBucket))

	for _, bucket := range value.EventBuckets() {
		views := byBucket[bucket]
		if len(views) == 0 {
			continue
		}

		groups = append(groups, entity.EventGroup{
			Bucket: bucket,
			Title:  bucket.Title(),
			Muted:  bucket.Muted(),
			Events: views,
		})
	}

	return groups
}

// NewView derives the display fields. Ended events are never flagged urgent
// or new.
func NewView(e entity.Event, anchor string, now time.Time, location *time.Location) entity.EventView {
	view := entity.EventView{
		Anchor:  anchor,
		No:      e.No,
		Title:   cmp.Or(e.Title, "No Title"),
		Remain:  RemainLabel(e),
		Banner:  e.BannerURL,
		Info:    e.InformationURL,
		By:      e.OrganizerName,
		Bucket:  Classify(e),
		Details: Details(e, location),
	}

	if !e.IsEnded() {
		view.Urgent = IsUrgent(e)
		view.New = IsNew(e, now)
	}

	return view
}

func IsUrgent(e entity.Event) bool {
	return e.DateRemain != nil && *e.DateRemain < UrgentThresholdDays
}

// IsNew reports an update within NewEventThresholdDays of now.
func IsNew(e entity.Event, now time.Time) bool {
	if e.Update.IsZero() {
		return false
	}

	return now.Sub(e.Update) <= NewEventThresholdDays*24*time.Hour
}

func RemainLabel(e entity.Event) string {
	if e.IsNotStarted() {
		return "Upcoming"
	}

	if e.DateRemain == nil {
		return ""
	}

	days := int(math.Floor(*e.DateRemain))

	switch {
	case days == 1:
		return "1 day left"
	case days > 0:
		return strconv.Itoa(days) + " days left"
	case days == 0:
		return "Ends today"
	default:
		return "Ended"
	}
}
