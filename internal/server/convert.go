package server

import (
	"github.com/samber/lo"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
	"djtracker/pkg/rest"
)

func newRESTScoreRow(row entity.ScoreRow) rest.ScoreRow {
	return rest.ScoreRow{
		Level:           row.Level,
		Title:           row.Title,
		Chart:           row.Chart.String(),
		ChartLabel:      row.ChartLabel,
		Score:           row.ScoreText,
		Rank:            row.Rank,
		Rate:            row.RatePercent,
		Detail:          row.Detail,
		Lamp:            newRESTLamp("", row.Lamp),
		MissCount:       row.MissCount,
		DJPoints:        row.DJPoints,
		DJPointsMatched: row.DJPointsMatched,
	}
}

func newRESTLamp(code string, lamp value.LampInfo) rest.Lamp {
	return rest.Lamp{
		Code:    code,
		Label:   lamp.Label,
		Ordinal: lamp.Ordinal,
	}
}

func newRESTStats(mode value.PlayMode, summary entity.Summary) rest.Stats {
	return rest.Stats{
		Mode:      mode.String(),
		RankOrder: summary.RankOrder,
		LampOrder: summary.LampOrder,
		Levels: lo.Map(summary.Levels, func(l entity.LevelStats, _ int) rest.LevelStats {
			return rest.LevelStats{
				Level:     l.Level,
				Ranks:     l.Ranks,
				Lamps:     l.Lamps,
				RankTotal: l.RankTotal,
				LampTotal: l.LampTotal,
			}
		}),
		RankTotals: summary.RankTotals,
		LampTotals: summary.LampTotals,
		GrandTotal: summary.GrandTotal,
	}
}

func newRESTProfile(tag entity.DogTag, lines []string) rest.Profile {
	profile := rest.Profile{
		DJName:      tag.DJName,
		InfinitasID: tag.InfinitasID,
		SPClass:     tag.SPClass,
		DPClass:     tag.DPClass,
		Area:        tag.Area,
		SPPoints:    tag.SPPoints,
		DPPoints:    tag.DPPoints,
		TotalPoints: tag.TotalPoints,
		Lines:       lines,
	}

	if !tag.LastModified.IsZero() {
		profile.LastModified = lo.ToPtr(tag.LastModified)
	}

	return profile
}

func newRESTRankEvaluation(e entity.RankEvaluation) rest.RankEvaluation {
	return rest.RankEvaluation{
		Rank:   e.Rank,
		Rate:   e.RatePercent,
		Detail: e.Detail,
	}
}

func newRESTEventGroup(g entity.EventGroup) rest.EventGroup {
	return rest.EventGroup{
		Bucket: string(g.Bucket),
		Title:  g.Title,
		Muted:  g.Muted,
		Events: lo.Map(g.Events, func(v entity.EventView, _ int) rest.Event {
			return newRESTEvent(v)
		}),
	}
}

func newRESTEvent(v entity.EventView) rest.Event {
	return rest.Event{
		Anchor:         v.Anchor,
		No:             v.No,
		Title:          v.Title,
		Remain:         v.Remain,
		Urgent:         v.Urgent,
		New:            v.New,
		Checked:        v.Checked,
		BannerURL:      v.Banner,
		InformationURL: v.Info,
		Organizer:      v.By,
		Details: lo.Map(v.Details, func(d entity.DetailLine, _ int) rest.DetailLine {
			return rest.DetailLine{Label: d.Label, Value: d.Value, Link: d.Link}
		}),
	}
}

func newRESTSlideshow(s entity.Slideshow) rest.Slideshow {
	return rest.Slideshow{
		Animation:  s.Animation,
		IntervalMs: s.IntervalMs,
		Banners:    s.Banners,
	}
}

func newRESTExport(mode value.PlayMode, t entity.ExportTable) rest.Export {
	footer := make(map[string][]rest.Count, len(t.Footer))
	for column, counts := range t.Footer {
		footer[column] = lo.Map(counts, func(c entity.Count, _ int) rest.Count {
			return rest.Count{Value: c.Value, Count: c.Count}
		})
	}

	return rest.Export{
		Type:    mode.String(),
		Columns: t.Columns,
		Rows: lo.Map(t.Rows, func(row entity.ExportRow, _ int) rest.ExportRow {
			return rest.ExportRow{Class: row.Class, Values: row.Values}
		}),
		Footer:   footer,
		Dropdown: t.Dropdown,
	}
}
