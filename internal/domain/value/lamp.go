package value

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// LampInfo is the decoded clear lamp. Ordinal only drives sorting.
type LampInfo struct {
	Label   string `json:"label"`
	Ordinal int    `json:"ordinal"`
}

const (
	LampFullCombo = "FULLCOMBO"
	LampExHard    = "EX-HARD"
	LampHard      = "HARD"
	LampClear     = "CLEAR"
	LampEasy      = "EASY"
	LampAssist    = "ASSIST"
	LampFailed    = "FAILED"
	LampNoPlay    = "NP"
)

var lamps = map[string]LampInfo{ //nolint:gochecknoglobals
	"FC": {Label: LampFullCombo, Ordinal: 7},
	"EX": {Label: LampExHard, Ordinal: 6},
	"HC": {Label: LampHard, Ordinal: 5},
	"NC": {Label: LampClear, Ordinal: 4},
	"EC": {Label: LampEasy, Ordinal: 3},
	"AC": {Label: LampAssist, Ordinal: 2},
	"F":  {Label: LampFailed, Ordinal: 1},
	"NP": {Label: "", Ordinal: 0},
}

var lampOrder = [...]string{ //nolint:gochecknoglobals
	LampFullCombo, LampExHard, LampHard, LampClear, LampEasy, LampAssist, LampFailed, LampNoPlay,
}

// NormalizeLampCode drops every whitespace rune (the ideographic space
// included), folds full-width letters and upper-cases the rest.
func NormalizeLampCode(code string) string {
	folded := width.Fold.String(code)

	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, folded))
}

// DecodeLamp maps a lamp code to its label and ordinal. Unknown codes decode
// to the zero LampInfo.
func DecodeLamp(code string) LampInfo {
	return lamps[NormalizeLampCode(code)]
}

func LampLabel(code string) string {
	return DecodeLamp(code).Label
}

// LampOrder is the display order used by the level statistics. No-play rows
// are counted under LampNoPlay.
func LampOrder() []string {
	out := make([]string, len(lampOrder))
	copy(out, lampOrder[:])

	return out
}
