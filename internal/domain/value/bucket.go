package value

type EventBucket string

const (
	BucketEnded      EventBucket = "ended"
	BucketWithinWeek EventBucket = "withinWeek"
	BucketOverWeek   EventBucket = "overWeek"
	BucketUpcoming   EventBucket = "upcoming"
)

var bucketTitles = map[EventBucket]string{ //nolint:gochecknoglobals
	BucketEnded:      "✅ Ended",
	BucketWithinWeek: "⏳ Within 1 Week",
	BucketOverWeek:   "📅 Over 1 Week",
	BucketUpcoming:   "🚀 Upcoming",
}

// EventBuckets returns the buckets in render priority order.
func EventBuckets() []EventBucket {
	return []EventBucket{BucketEnded, BucketWithinWeek, BucketOverWeek, BucketUpcoming}
}

func (b EventBucket) Title() string {
	return bucketTitles[b]
}

// Muted buckets are rendered on a gray background.
func (b EventBucket) Muted() bool {
	return b == BucketEnded || b == BucketUpcoming
}
