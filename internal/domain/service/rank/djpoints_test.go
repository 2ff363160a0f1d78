package rank_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"djtracker/internal/domain/service/rank"
	"djtracker/internal/domain/value"
)

func TestEstimateDJPoints(t *testing.T) {
	testCases := []struct {
		name   string
		score  int
		lamp   string
		rank   string
		want   float64
		wantOK bool
	}{
		{name: "Full combo AAA", score: 1500, lamp: "FULLCOMBO", rank: "AAA", want: 22.5, wantOK: true},
		{name: "Hard B", score: 1234, lamp: "HARD", rank: "B", want: 14.808, wantOK: true},
		{name: "Assist gets no clear bonus", score: 1000, lamp: "ASSIST", rank: "A", want: 11, wantOK: true},
		{name: "No score", score: 0, lamp: "CLEAR", rank: "AA", want: 0, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got, ok := rank.EstimateDJPoints(tc.score, tc.lamp, tc.rank)
			rq.Equal(tc.wantOK, ok)
			rq.InDelta(tc.want, got, 1e-9)
		})
	}
}

func TestEffectiveDJPoints(t *testing.T) {
	rq := require.New(t)

	rq.InDelta(3.25, *rank.EffectiveDJPoints(lo.ToPtr(3.25), 2000, "FULLCOMBO", "AAA"), 1e-9)
	rq.InDelta(22.5, *rank.EffectiveDJPoints(nil, 1500, "FULLCOMBO", "AAA"), 1e-9)
	rq.Nil(rank.EffectiveDJPoints(nil, 0, "FULLCOMBO", "AAA"))
}

func TestDJPointsMatch(t *testing.T) {
	testCases := []struct {
		name      string
		chart     value.ChartCode
		effective *float64
		modeTotal *float64
		want      bool
	}{
		{name: "Equal after rounding", chart: value.ChartDPA, effective: lo.ToPtr(22.5), modeTotal: lo.ToPtr(22.5004), want: true},
		{name: "Different", chart: value.ChartDPA, effective: lo.ToPtr(22.5), modeTotal: lo.ToPtr(22.51), want: false},
		{name: "Chart not evaluable", chart: "DPB", effective: lo.ToPtr(22.5), modeTotal: lo.ToPtr(22.5), want: false},
		{name: "Missing effective", chart: value.ChartSPN, effective: nil, modeTotal: lo.ToPtr(1.0), want: false},
		{name: "Missing total", chart: value.ChartSPN, effective: lo.ToPtr(1.0), modeTotal: nil, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.New(t).Equal(tc.want, rank.DJPointsMatch(tc.chart, tc.effective, tc.modeTotal))
		})
	}
}

func TestBonuses(t *testing.T) {
	rq := require.New(t)

	rq.Equal(30, rank.ClearBonus("FULLCOMBO"))
	rq.Equal(0, rank.ClearBonus("FC"))
	rq.Equal(15, rank.LevelBonus("AA"))
	rq.Equal(0, rank.LevelBonus("B"))
}
