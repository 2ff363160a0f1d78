package score_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"djtracker/internal/domain"
	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/service/score"
	"djtracker/internal/domain/value"
	"djtracker/pkg/errcodes"
)

func trackerTable() entity.Table {
	return entity.Table{
		Header: []string{
			"title",
			"DPA Rating", "DPA Lamp", "DPA Letter", "DPA EX Score", "DPA Miss Count", "DPA Note Count", "DPA DJ Points",
			"DPH Rating", "DPH Lamp", "DPH Letter", "DPH EX Score", "DPH Miss Count", "DPH Note Count", "DPH DJ Points",
			"DP DJ Points", "SP DJ Points",
		},
		Rows: [][]string{
			{"Alpha", "12", "FC", "AAA", "1800", "0", "1000", "", "10", "HC", "AA", "1600", "5", "1000", "", "27", "100.5"},
			{"beta", "12", "NP", "", "0", "-", "1500", "", "", "", "", "", "", "", "", "", ""},
			{"", "12", "FC", "AAA", "2000", "0", "1000", "", "", "", "", "", "", "", "", "", ""},
			{"Gamma", "0", "FC", "AAA", "2000", "0", "1000", "", "12", "EC", "A", "1400", "20", "1000", "15.5", "x", "49.6"},
		},
		LastModified: time.Date(2025, 3, 4, 5, 6, 0, 0, time.UTC),
	}
}

func TestBuildRows(t *testing.T) {
	rq := require.New(t)

	rows := score.BuildRows(trackerTable(), value.PlayModeDP)

	want := []entity.ScoreRow{
		{
			Level: "☆12", Title: "Alpha", Chart: value.ChartDPA, ChartLabel: "ANOTHER", ScoreText: "1800",
			RankEvaluation:  entity.RankEvaluation{Rank: "AAA", RatePercent: "90.00%", Detail: "(AAA + 23)"},
			Lamp:            value.LampInfo{Label: "FULLCOMBO", Ordinal: 7},
			MissCount:       lo.ToPtr(0),
			DJPoints:        lo.ToPtr(27.0),
			DJPointsMatched: true,
		},
		{
			Level: "☆10", Title: "Alpha", Chart: value.ChartDPH, ChartLabel: "HYPER", ScoreText: "1600",
			RankEvaluation: entity.RankEvaluation{Rank: "AA", RatePercent: "80.00%", Detail: "(AA + 45)"},
			Lamp:           value.LampInfo{Label: "HARD", Ordinal: 5},
			MissCount:      lo.ToPtr(5),
			DJPoints:       lo.ToPtr(21.6),
		},
		{
			Level: "☆12", Title: "beta", Chart: value.ChartDPA, ChartLabel: "ANOTHER",
			Lamp: value.LampInfo{Label: "", Ordinal: 0},
		},
		{
			Level: "☆12", Title: "Gamma", Chart: value.ChartDPH, ChartLabel: "HYPER", ScoreText: "1400",
			RankEvaluation: entity.RankEvaluation{Rank: "A", RatePercent: "70.00%", Detail: "(A + 67)"},
			Lamp:           value.LampInfo{Label: "EASY", Ordinal: 3},
			MissCount:      lo.ToPtr(20),
			DJPoints:       lo.ToPtr(15.5),
		},
	}

	rq.Empty(cmp.Diff(want, rows))
}

func TestFilterAndSort(t *testing.T) {
	rows := score.BuildRows(trackerTable(), value.PlayModeDP)

	testCases := []struct {
		name   string
		level  string
		column score.SortColumn
		order  score.SortOrder
		want   []string
	}{
		{name: "Default title ascending", level: "12", want: []string{"Alpha", "beta", "Gamma"}},
		{name: "Title descending", level: "12", column: score.SortTitle, order: score.OrderDesc, want: []string{"Gamma", "beta", "Alpha"}},
		{name: "Lamp ascending", level: "12", column: score.SortLamp, order: score.OrderAsc, want: []string{"beta", "Gamma", "Alpha"}},
		{name: "Rate descending", level: "12", column: score.SortRate, order: score.OrderDesc, want: []string{"Alpha", "Gamma", "beta"}},
		{name: "All levels by level", level: "", column: score.SortLevel, order: score.OrderAsc, want: []string{"Alpha", "Alpha", "beta", "Gamma"}},
		{name: "Level without rows", level: "11", want: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			filtered := score.FilterLevel(append([]entity.ScoreRow(nil), rows...), tc.level)
			rq.NoError(score.SortRows(filtered, tc.column, tc.order))

			rq.Equal(tc.want, lo.Map(filtered, func(r entity.ScoreRow, _ int) string { return r.Title }))
		})
	}
}

func TestParseSort(t *testing.T) {
	rq := require.New(t)

	column, err := score.ParseSortColumn("")
	rq.NoError(err)
	rq.Equal(score.SortTitle, column)

	_, err = score.ParseSortColumn("bpm")
	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.InvalidSortColumn, code)

	order, err := score.ParseSortOrder("DESC")
	rq.NoError(err)
	rq.Equal(score.OrderDesc, order)

	_, err = score.ParseSortOrder("up")
	rq.Error(err)
}

func TestSummarize(t *testing.T) {
	rq := require.New(t)

	summary := score.Summarize(score.BuildRows(trackerTable(), value.PlayModeDP))

	rq.Len(summary.Levels, 2)
	rq.Equal("10", summary.Levels[0].Level)
	rq.Equal("12", summary.Levels[1].Level)

	rq.Equal(1, summary.Levels[0].Ranks["AA"])
	rq.Equal(1, summary.Levels[0].Lamps["HARD"])
	rq.Equal(1, summary.Levels[1].Ranks["F"], "row without rank counts as F")
	rq.Equal(1, summary.Levels[1].Lamps["NP"], "row without lamp counts as NP")
	rq.Equal(3, summary.Levels[1].RankTotal)

	rq.Equal(map[string]int{"AAA": 1, "AA": 1, "A": 1, "B": 0, "C": 0, "D": 0, "E": 0, "F": 1}, summary.RankTotals)
	rq.Equal(4, summary.GrandTotal)
	rq.Equal([]string{"AAA", "AA", "A", "B", "C", "D", "E", "F"}, summary.RankOrder)
}

func TestTotalDJPoints(t *testing.T) {
	rq := require.New(t)

	table := trackerTable()

	rq.Equal(27, score.TotalDJPoints(table, value.PlayModeDP))
	rq.Equal(150, score.TotalDJPoints(table, value.PlayModeSP))
}

type trackerFunc func(ctx context.Context) (entity.Table, error)

func (f trackerFunc) Table(ctx context.Context) (entity.Table, error) { return f(ctx) }

type profileFunc func(ctx context.Context) (entity.Profile, error)

func (f profileFunc) Profile(ctx context.Context) (entity.Profile, error) { return f(ctx) }

func TestService(t *testing.T) {
	ctx := context.Background()
	profile := entity.Profile{DJName: "GYONIC", InfinitasID: "C-0000-0000-0000", SPClass: "皆伝", DPClass: "中伝"}

	svc := score.NewService(
		trackerFunc(func(context.Context) (entity.Table, error) { return trackerTable(), nil }),
		profileFunc(func(context.Context) (entity.Profile, error) { return profile, nil }),
	)

	t.Run("Rows", func(t *testing.T) {
		rq := require.New(t)

		rows, err := svc.Rows(ctx, score.Query{Mode: value.PlayModeDP, Level: score.DefaultLevel})
		rq.NoError(err)
		rq.Len(rows, 3)
	})

	t.Run("DogTag", func(t *testing.T) {
		rq := require.New(t)

		tag, err := svc.DogTag(ctx)
		rq.NoError(err)
		rq.Equal(150, tag.SPPoints)
		rq.Equal(27, tag.DPPoints)
		rq.Equal(177, tag.TotalPoints)

		lines := score.DogTagLines(tag)
		rq.Equal("GYONIC", lines[0])
		rq.Equal("SP皆伝 / DP中伝 , DJ Points: 177 (SP: 150 / DP: 27)", lines[2])
	})

	t.Run("Tracker failure", func(t *testing.T) {
		rq := require.New(t)

		broken := score.NewService(
			trackerFunc(func(context.Context) (entity.Table, error) { return entity.Table{}, errors.New("open tracker.tsv: no such file") }),
			profileFunc(func(context.Context) (entity.Profile, error) { return profile, nil }),
		)

		_, err := broken.Stats(ctx, value.PlayModeSP)
		code, ok := domain.GetCode(err)
		rq.True(ok)
		rq.Equal(errcodes.TrackerUnreadable, code)
	})
}

func TestDogTagLinesGroupsThousands(t *testing.T) {
	rq := require.New(t)

	lines := score.DogTagLines(entity.DogTag{SPPoints: 12000, DPPoints: 3456, TotalPoints: 15456})

	rq.Equal("N/A", lines[0])
	rq.Equal("SP- / DP- , DJ Points: 15,456 (SP: 12,000 / DP: 3,456)", lines[2])
	rq.Equal("Last-Modified: N/A", lines[3])
}
