package value

// RankThreshold is a rank boundary expressed as a fraction of the max score.
type RankThreshold struct {
	Label string
	Rate  float64
}

const (
	RankMAX = "MAX"
	RankAAA = "AAA"
	RankAA  = "AA"
	RankA   = "A"
	RankB   = "B"
	RankC   = "C"
	RankD   = "D"
	RankE   = "E"
	RankF   = "F"
)

// Descending by rate. MAX is the only rank without a higher neighbour.
var rankThresholds = [...]RankThreshold{ //nolint:gochecknoglobals
	{Label: RankMAX, Rate: 1.0},
	{Label: RankAAA, Rate: 0.88888},
	{Label: RankAA, Rate: 0.77777},
	{Label: RankA, Rate: 0.66666},
	{Label: RankB, Rate: 0.55555},
	{Label: RankC, Rate: 0.44444},
	{Label: RankD, Rate: 0.33333},
	{Label: RankE, Rate: 0.22222},
	{Label: RankF, Rate: 0.0},
}

var rankOrder = [...]string{RankAAA, RankAA, RankA, RankB, RankC, RankD, RankE, RankF} //nolint:gochecknoglobals

// RankThresholds returns a copy of the threshold table.
func RankThresholds() []RankThreshold {
	out := make([]RankThreshold, len(rankThresholds))
	copy(out, rankThresholds[:])

	return out
}

// RankIndex returns the position of label in the threshold table, or -1.
func RankIndex(label string) int {
	for i, t := range rankThresholds {
		if t.Label == label {
			return i
		}
	}

	return -1
}

// RankOrder is the display order used by the level statistics.
func RankOrder() []string {
	out := make([]string, len(rankOrder))
	copy(out, rankOrder[:])

	return out
}
