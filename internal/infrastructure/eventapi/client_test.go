package eventapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"djtracker/internal/domain/service/event"
	"djtracker/internal/domain/value"
	"djtracker/internal/infrastructure/eventapi"
)

const feed = `[
  {
    "event_no": 12,
    "title": " Spring Cup ",
    "organizer_name": "Organizer",
    "organizer_id": "org_id",
    "hashtag": "#cup",
    "songs": ["A", "", "B"],
    "date_remain": 2.5,
    "status": true,
    "update": "2025-03-01T10:00:00.000Z"
  },
  {
    "event_no": "13",
    "title": "Summer Cup",
    "songs": "C, D",
    "date_remain": "-1",
    "status": "TRUE"
  },
  {
    "title": "Autumn Cup",
    "date_remain": "",
    "status": "false",
    "update": "not a date"
  },
  {
    "title": "Winter Cup",
    "status": 0
  }
]`

func TestClientEvents(t *testing.T) {
	rq := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dp" {
			w.WriteHeader(http.StatusBadGateway)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(feed)) //nolint:errcheck
	}))
	defer srv.Close()

	client := eventapi.NewClient(srv.Client(), map[value.PlayMode]string{
		value.PlayModeDP: srv.URL + "/dp",
		value.PlayModeSP: srv.URL + "/sp",
	})

	events, err := client.Events(context.Background(), value.PlayModeDP)
	rq.NoError(err)
	rq.Len(events, 4)

	rq.Equal("12", events[0].No)
	rq.Equal("Spring Cup", events[0].Title)
	rq.Equal([]string{"A", "B"}, events[0].Songs)
	rq.InDelta(2.5, *events[0].DateRemain, 1e-9)
	rq.True(*events[0].Status)
	rq.Equal(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), events[0].Update.UTC())

	rq.Equal("13", events[1].No)
	rq.Equal([]string{"C", "D"}, events[1].Songs)
	rq.InDelta(-1.0, *events[1].DateRemain, 1e-9)
	rq.True(*events[1].Status)

	rq.Nil(events[2].DateRemain)
	rq.False(*events[2].Status)
	rq.True(events[2].Update.IsZero())

	rq.True(*events[3].Status)

	_, err = client.Events(context.Background(), value.PlayModeSP)
	rq.ErrorIs(err, eventapi.ErrUnexpectedStatus)

	_, err = eventapi.NewClient(nil, nil).Events(context.Background(), value.PlayModeSP)
	rq.ErrorIs(err, eventapi.ErrNoEndpoint)
}

func TestClientEventsStatusClassification(t *testing.T) {
	tests := []struct {
		name   string
		status string
		bucket value.EventBucket
		label  string
	}{
		{name: "number zero", status: `0`, bucket: value.BucketWithinWeek, label: "5 days left"},
		{name: "string zero", status: `"0"`, bucket: value.BucketWithinWeek, label: "5 days left"},
		{name: "upper case false", status: `"FALSE"`, bucket: value.BucketWithinWeek, label: "5 days left"},
		{name: "title case false", status: `"False"`, bucket: value.BucketWithinWeek, label: "5 days left"},
		{name: "empty string", status: `""`, bucket: value.BucketWithinWeek, label: "5 days left"},
		{name: "bool false", status: `false`, bucket: value.BucketUpcoming, label: "Upcoming"},
		{name: "string false", status: `"false"`, bucket: value.BucketUpcoming, label: "Upcoming"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rq := require.New(t)

			body := `[{"title": "Cup", "date_remain": 5, "status": ` + tt.status + `}]`
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(body)) //nolint:errcheck
			}))
			defer srv.Close()

			client := eventapi.NewClient(srv.Client(), map[value.PlayMode]string{value.PlayModeDP: srv.URL})

			events, err := client.Events(context.Background(), value.PlayModeDP)
			rq.NoError(err)
			rq.Len(events, 1)
			rq.Equal(tt.bucket, event.Classify(events[0]))
			rq.Equal(tt.label, event.RemainLabel(events[0]))
		})
	}
}
