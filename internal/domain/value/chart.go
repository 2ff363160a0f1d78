package value

import (
	"errors"
	"fmt"
	"strings"
)

type ChartCode string

const (
	ChartSPB ChartCode = "SPB"
	ChartSPN ChartCode = "SPN"
	ChartSPH ChartCode = "SPH"
	ChartSPA ChartCode = "SPA"
	ChartSPL ChartCode = "SPL"
	ChartDPN ChartCode = "DPN"
	ChartDPH ChartCode = "DPH"
	ChartDPA ChartCode = "DPA"
	ChartDPL ChartCode = "DPL"
)

var chartLabels = map[ChartCode]string{ //nolint:gochecknoglobals
	ChartSPB: "BEGINNER",
	ChartSPN: "NORMAL",
	ChartSPH: "HYPER",
	ChartSPA: "ANOTHER",
	ChartSPL: "LEGGENDARIA",
	ChartDPN: "NORMAL",
	ChartDPH: "HYPER",
	ChartDPA: "ANOTHER",
	ChartDPL: "LEGGENDARIA",
}

func (c ChartCode) String() string {
	return string(c)
}

// Label is the difficulty name shown next to the title. Unknown codes are
// shown as-is.
func (c ChartCode) Label() string {
	if label, ok := chartLabels[c]; ok {
		return label
	}

	return string(c)
}

// IsEvaluable reports whether DJ points may be compared for the chart.
func (c ChartCode) IsEvaluable() bool {
	_, ok := chartLabels[c]

	return ok
}

type PlayMode string

const (
	PlayModeSP PlayMode = "SP"
	PlayModeDP PlayMode = "DP"
)

var modeCharts = map[PlayMode][]ChartCode{ //nolint:gochecknoglobals
	PlayModeSP: {ChartSPL, ChartSPA, ChartSPH, ChartSPN, ChartSPB},
	PlayModeDP: {ChartDPL, ChartDPA, ChartDPH, ChartDPN},
}

var ErrInvalidPlayMode = errors.New("invalid play mode")

// ParsePlayMode accepts "sp"/"SP"/"dp"/"DP".
func ParsePlayMode(s string) (PlayMode, error) {
	mode := PlayMode(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := modeCharts[mode]; !ok {
		return "", fmt.Errorf("%q: %w", s, ErrInvalidPlayMode)
	}

	return mode, nil
}

func (m PlayMode) String() string {
	return string(m)
}

// Charts lists the mode's charts in display order.
func (m PlayMode) Charts() []ChartCode {
	charts := modeCharts[m]
	out := make([]ChartCode, len(charts))
	copy(out, charts)

	return out
}

func PlayModes() []PlayMode {
	return []PlayMode{PlayModeSP, PlayModeDP}
}
