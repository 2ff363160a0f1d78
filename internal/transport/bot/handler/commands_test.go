package handler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"djtracker/internal/domain/value"
	"djtracker/internal/transport/bot/handler"
)

func TestParseRankArgs(t *testing.T) {
	testCases := []struct {
		name   string
		text   string
		letter string
		score  int
		notes  int
		err    bool
	}{
		{name: "Valid", text: "/rank aa 1600 1000", letter: "AA", score: 1600, notes: 1000},
		{name: "Missing notes", text: "/rank AA 1600", err: true},
		{name: "Negative score", text: "/rank AA -1 1000", err: true},
		{name: "Bad notes", text: "/rank AA 1600 many", err: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			letter, score, notes, err := handler.ParseRankArgs(tc.text)
			if tc.err {
				rq.ErrorIs(err, handler.ErrUsage)

				return
			}

			rq.NoError(err)
			rq.Equal(tc.letter, letter)
			rq.Equal(tc.score, score)
			rq.Equal(tc.notes, notes)
		})
	}
}

func TestParseModeCallback(t *testing.T) {
	rq := require.New(t)

	mode, err := handler.ParseModeCallback("events:SP")
	rq.NoError(err)
	rq.Equal(value.PlayModeSP, mode)

	mode, err = handler.ParseModeCallback("events:dp")
	rq.NoError(err)
	rq.Equal(value.PlayModeDP, mode)

	_, err = handler.ParseModeCallback("catalog_page:2")
	rq.ErrorIs(err, handler.ErrUsage)

	_, err = handler.ParseModeCallback("events:XP")
	rq.ErrorIs(err, value.ErrInvalidPlayMode)
}
