// Package rank evaluates EX scores against the rank table and estimates DJ
// points. Every function is total: malformed input degrades to neutral output.
package rank

import (
	"fmt"
	"math"
	"strconv"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
)

// Evaluate reports the rank as given, the score rate and the distance to the
// nearest rank boundary, e.g. "(AAA - 12)" or "(AA + 3)".
func Evaluate(rankLetter string, score, noteCount int) entity.RankEvaluation {
	if noteCount <= 0 || rankLetter == "" {
		return entity.RankEvaluation{Rank: "", RatePercent: "0.00%", Detail: "(F + 0)"}
	}

	maxScore := noteCount * 2
	ratePercent := RatePercent(score, noteCount)

	idx := value.RankIndex(rankLetter)
	if idx == -1 {
		return entity.RankEvaluation{
			Rank:        rankLetter,
			RatePercent: ratePercent,
			Detail:      fmt.Sprintf("(%s ±0)", rankLetter),
		}
	}

	thresholds := value.RankThresholds()

	currFloor := int(math.Floor(float64(maxScore) * thresholds[idx].Rate))
	diff := score - currFloor
	label := rankLetter

	if idx > 0 {
		nextCeil := int(math.Ceil(float64(maxScore) * thresholds[idx-1].Rate))
		diffToNext := nextCeil - score

		if abs(diffToNext) < abs(diff) {
			label = thresholds[idx-1].Label
			diff = -diffToNext
		}
	}

	return entity.RankEvaluation{
		Rank:        rankLetter,
		RatePercent: ratePercent,
		Detail:      fmt.Sprintf("(%s %s)", label, formatDelta(diff)),
	}
}

// RatePercent is score / (2 × noteCount) as a percentage with two decimals.
func RatePercent(score, noteCount int) string {
	if noteCount <= 0 {
		return "0.00%"
	}

	rate := float64(score) / float64(noteCount*2)
	// Ties round up: 12.125 shows as 12.13.
	rounded := math.Floor(rate*100*100+0.5) / 100

	return strconv.FormatFloat(rounded, 'f', 2, 64) + "%"
}

func formatDelta(diff int) string {
	switch {
	case diff == 0:
		return "+ 0"
	case diff > 0:
		return "+ " + strconv.Itoa(diff)
	default:
		return "- " + strconv.Itoa(-diff)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
