package rank

import (
	"math"

	"djtracker/internal/domain/value"
)

// ClearBonus takes the decoded lamp label, not the raw code.
func ClearBonus(lampLabel string) int {
	switch lampLabel {
	case value.LampFullCombo:
		return 30
	case value.LampExHard:
		return 25
	case value.LampHard:
		return 20
	case value.LampClear:
		return 15
	case value.LampEasy:
		return 10
	default:
		return 0
	}
}

func LevelBonus(rankLetter string) int {
	switch rankLetter {
	case value.RankAAA:
		return 20
	case value.RankAA:
		return 15
	case value.RankA:
		return 10
	default:
		return 0
	}
}

// EstimateDJPoints approximates a chart's DJ points. ok is false when there
// is no score to estimate from.
func EstimateDJPoints(score int, lampLabel, rankLetter string) (points float64, ok bool) {
	if score <= 0 {
		return 0, false
	}

	bonus := 100 + ClearBonus(lampLabel) + LevelBonus(rankLetter)

	return Round3(float64(score*bonus) / 10000), true
}

// EffectiveDJPoints prefers the stated chart value and falls back to the
// estimate. nil means neither is available.
func EffectiveDJPoints(stated *float64, score int, lampLabel, rankLetter string) *float64 {
	if stated != nil {
		return stated
	}

	if points, ok := EstimateDJPoints(score, lampLabel, rankLetter); ok {
		return &points
	}

	return nil
}

// DJPointsMatch flags a chart whose effective points equal the line's mode
// total once both are rounded to three decimals.
func DJPointsMatch(chart value.ChartCode, effective, modeTotal *float64) bool {
	if !chart.IsEvaluable() || effective == nil || modeTotal == nil {
		return false
	}

	return Round3(*effective) == Round3(*modeTotal)
}

func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
