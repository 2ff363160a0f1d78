package score

import (
	"cmp"
	"slices"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
)

// Summarize counts rows per level by rank and by lamp. Rows without a rank
// count as F and rows without a lamp as NP. Only the fixed keys are counted.
func Summarize(rows []entity.ScoreRow) entity.Summary {
	rankOrder := value.RankOrder()
	lampOrder := value.LampOrder()

	byLevel := make(map[string]*entity.LevelStats)

	for _, row := range rows {
		level := LevelOf(row)
		if level == "" {
			continue
		}

		stats, ok := byLevel[level]
		if !ok {
			stats = &entity.LevelStats{
				Level: level,
				Ranks: zeroCounts(rankOrder),
				Lamps: zeroCounts(lampOrder),
			}
			byLevel[level] = stats
		}

		rankKey := cmp.Or(row.Rank, value.RankF)
		if _, known := stats.Ranks[rankKey]; known {
			stats.Ranks[rankKey]++
			stats.RankTotal++
		}

		lampKey := cmp.Or(row.Lamp.Label, value.LampNoPlay)
		if _, known := stats.Lamps[lampKey]; known {
			stats.Lamps[lampKey]++
			stats.LampTotal++
		}
	}

	summary := entity.Summary{
		RankOrder:  rankOrder,
		LampOrder:  lampOrder,
		Levels:     make([]entity.LevelStats, 0, len(byLevel)),
		RankTotals: zeroCounts(rankOrder),
		LampTotals: zeroCounts(lampOrder),
	}

	for _, stats := range byLevel {
		summary.Levels = append(summary.Levels, *stats)

		for k, v := range stats.Ranks {
			summary.RankTotals[k] += v
		}

		for k, v := range stats.Lamps {
			summary.LampTotals[k] += v
		}

		summary.GrandTotal += stats.RankTotal
	}

	slices.SortFunc(summary.Levels, func(a, b entity.LevelStats) int {
		return cmp.Or(
			cmp.Compare(parseInt(a.Level), parseInt(b.Level)),
			cmp.Compare(a.Level, b.Level),
		)
	})

	return summary
}

func zeroCounts(keys []string) map[string]int {
	m := make(map[string]int, len(keys))
	for _, k := range keys {
		m[k] = 0
	}

	return m
}
