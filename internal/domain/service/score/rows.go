package score

import (
	"math"
	"strconv"
	"strings"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/service/rank"
	"djtracker/internal/domain/value"
)

const (
	columnTitle = "title"
	levelPrefix = "☆"
)

type chartColumns struct {
	rating, lamp, letter, score, miss, notes, djPoints int
}

func resolveChart(table entity.Table, chart value.ChartCode) chartColumns {
	c := chart.String() + " "

	return chartColumns{
		rating:   table.Column(c + "Rating"),
		lamp:     table.Column(c + "Lamp"),
		letter:   table.Column(c + "Letter"),
		score:    table.Column(c + "EX Score"),
		miss:     table.Column(c + "Miss Count"),
		notes:    table.Column(c + "Note Count"),
		djPoints: table.Column(c + "DJ Points"),
	}
}

// Records extracts every rated chart of the mode, line by line in chart
// display order.
func Records(table entity.Table, mode value.PlayMode) []entity.ScoreRecord {
	titleIdx := table.Column(columnTitle)
	modeTotalIdx := table.Column(mode.String() + " DJ Points")
	charts := mode.Charts()

	columns := make([]chartColumns, len(charts))
	for i, chart := range charts {
		columns[i] = resolveChart(table, chart)
	}

	var records []entity.ScoreRecord

	for _, line := range table.Rows {
		title := entity.CellAt(line, titleIdx)
		if title == "" {
			continue
		}

		for i, chart := range charts {
			col := columns[i]
			ratingRaw := entity.CellAt(line, col.rating)

			rating, err := strconv.ParseFloat(ratingRaw, 64)
			if err != nil || rating <= 0 {
				continue
			}

			records = append(records, entity.ScoreRecord{
				Title:        title,
				Chart:        chart,
				Score:        parseInt(entity.CellAt(line, col.score)),
				NoteCount:    parseInt(entity.CellAt(line, col.notes)),
				LampCode:     entity.CellAt(line, col.lamp),
				RankLetter:   entity.CellAt(line, col.letter),
				Rating:       ratingRaw,
				MissCount:    parseMiss(entity.CellAt(line, col.miss)),
				DJPoints:     parseFloat(entity.CellAt(line, col.djPoints)),
				ModeDJPoints: parseFloat(entity.CellAt(line, modeTotalIdx)),
			})
		}
	}

	return records
}

// NewRow derives the display fields of a record. Score, rank and rate stay
// empty for unplayed charts.
func NewRow(r entity.ScoreRecord) entity.ScoreRow {
	lamp := value.DecodeLamp(r.LampCode)

	row := entity.ScoreRow{
		Title:      r.Title,
		Chart:      r.Chart,
		ChartLabel: r.Chart.Label(),
		Lamp:       lamp,
		MissCount:  r.MissCount,
	}

	if r.Rating != "" {
		row.Level = levelPrefix + r.Rating
	}

	if r.Score > 0 {
		row.RankEvaluation = rank.Evaluate(r.RankLetter, r.Score, r.NoteCount)
		row.ScoreText = strconv.Itoa(r.Score)
	}

	row.DJPoints = rank.EffectiveDJPoints(r.DJPoints, r.Score, lamp.Label, r.RankLetter)
	row.DJPointsMatched = rank.DJPointsMatch(r.Chart, row.DJPoints, r.ModeDJPoints)

	return row
}

func BuildRows(table entity.Table, mode value.PlayMode) []entity.ScoreRow {
	records := Records(table, mode)
	rows := make([]entity.ScoreRow, 0, len(records))

	for _, r := range records {
		rows = append(rows, NewRow(r))
	}

	return rows
}

// LevelOf strips the star prefix from a row level.
func LevelOf(row entity.ScoreRow) string {
	return strings.TrimPrefix(row.Level, levelPrefix)
}

// FilterLevel keeps rows of the given level. An empty level keeps all rows.
func FilterLevel(rows []entity.ScoreRow, level string) []entity.ScoreRow {
	if level == "" {
		return rows
	}

	out := make([]entity.ScoreRow, 0, len(rows))

	for _, row := range rows {
		if LevelOf(row) == level {
			out = append(out, row)
		}
	}

	return out
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return v
}

func parseFloat(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

// parseMiss treats "-" and blanks as absent.
func parseMiss(s string) *int {
	if s == "" || s == "-" {
		return nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}

	return &v
}
