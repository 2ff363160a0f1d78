package entity

import "djtracker/internal/domain/value"

// ScoreRecord is one chart of one tracker line.
type ScoreRecord struct {
	Title      string
	Chart      value.ChartCode
	Score      int
	NoteCount  int
	LampCode   string
	RankLetter string
	Rating     string
	MissCount  *int
	DJPoints   *float64
	// ModeDJPoints is the line-level "<MODE> DJ Points" value.
	ModeDJPoints *float64
}

type RankEvaluation struct {
	Rank        string `json:"rank"`
	RatePercent string `json:"ratePercent"`
	Detail      string `json:"detail"`
}

// ScoreRow is a ScoreRecord with every display field derived.
type ScoreRow struct {
	Level      string          `json:"level"`
	Title      string          `json:"title"`
	Chart      value.ChartCode `json:"chart"`
	ChartLabel string          `json:"chartLabel"`
	ScoreText  string          `json:"score"`
	RankEvaluation
	Lamp            value.LampInfo `json:"lamp"`
	MissCount       *int           `json:"missCount,omitempty"`
	DJPoints        *float64       `json:"djPoints,omitempty"`
	DJPointsMatched bool           `json:"djPointsMatched"`
}

// LevelStats counts one level's rows by rank and by lamp.
type LevelStats struct {
	Level     string         `json:"level"`
	Ranks     map[string]int `json:"ranks"`
	Lamps     map[string]int `json:"lamps"`
	RankTotal int            `json:"rankTotal"`
	LampTotal int            `json:"lampTotal"`
}

type Summary struct {
	RankOrder  []string       `json:"rankOrder"`
	LampOrder  []string       `json:"lampOrder"`
	Levels     []LevelStats   `json:"levels"`
	RankTotals map[string]int `json:"rankTotals"`
	LampTotals map[string]int `json:"lampTotals"`
	GrandTotal int            `json:"grandTotal"`
}
