package score

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/service/rank"
	"djtracker/internal/domain/value"
)

const lastModifiedLayout = "2006/01/02 15:04"

// TotalDJPoints sums the parseable "<MODE> DJ Points" cells.
func TotalDJPoints(table entity.Table, mode value.PlayMode) int {
	idx := table.Column(mode.String() + " DJ Points")

	var sum float64

	for _, line := range table.Rows {
		v, err := strconv.ParseFloat(entity.CellAt(line, idx), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}

		sum += v
	}

	return int(math.Round(rank.Round3(sum)))
}

func NewDogTag(profile entity.Profile, table entity.Table) entity.DogTag {
	sp := TotalDJPoints(table, value.PlayModeSP)
	dp := TotalDJPoints(table, value.PlayModeDP)

	return entity.DogTag{
		Profile:      profile,
		SPPoints:     sp,
		DPPoints:     dp,
		TotalPoints:  sp + dp,
		LastModified: table.LastModified,
	}
}

// DogTagLines renders the tag the way the score page header shows it.
func DogTagLines(tag entity.DogTag) []string {
	p := message.NewPrinter(language.English)

	lastModified := "N/A"
	if !tag.LastModified.IsZero() {
		lastModified = tag.LastModified.Local().Format(lastModifiedLayout)
	}

	return []string{
		orNA(tag.DJName),
		p.Sprintf("(INFINITAS ID: %s)", orNA(tag.InfinitasID)),
		p.Sprintf(
			"SP%s / DP%s , DJ Points: %d (SP: %d / DP: %d)",
			orDash(tag.SPClass), orDash(tag.DPClass), tag.TotalPoints, tag.SPPoints, tag.DPPoints,
		),
		"Last-Modified: " + lastModified,
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}

	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
