package config

import (
	"time"

	"djtracker/internal/domain/value"
)

type Events struct {
	SPURL    string        `env:"EVENTS_SP_URL"`
	DPURL    string        `env:"EVENTS_DP_URL"`
	CacheTTL time.Duration `env:"EVENTS_CACHE_TTL" envDefault:"5m"`
}

// Endpoints maps each play mode to its configured feed URL.
func (e Events) Endpoints() map[value.PlayMode]string {
	return modeMap(e.SPURL, e.DPURL)
}

type Exports struct {
	SPLocation string `env:"EXPORTS_SP_LOCATION"`
	DPLocation string `env:"EXPORTS_DP_LOCATION"`
}

func (e Exports) Locations() map[value.PlayMode]string {
	return modeMap(e.SPLocation, e.DPLocation)
}

type Watcher struct {
	Enabled  bool          `env:"WATCHER_ENABLED"  envDefault:"false"`
	Interval time.Duration `env:"WATCHER_INTERVAL" envDefault:"15m"`
	Modes    []string      `env:"WATCHER_MODES"    envDefault:"SP,DP" envSeparator:","`
	Queue    string        `env:"WATCHER_QUEUE"    envDefault:"default"`
}

// PlayModes parses Modes, skipping unknown names.
func (w Watcher) PlayModes() []value.PlayMode {
	var modes []value.PlayMode

	for _, m := range w.Modes {
		if mode, err := value.ParsePlayMode(m); err == nil {
			modes = append(modes, mode)
		}
	}

	return modes
}

func modeMap(sp, dp string) map[value.PlayMode]string {
	m := make(map[value.PlayMode]string, 2) //nolint:mnd

	if sp != "" {
		m[value.PlayModeSP] = sp
	}

	if dp != "" {
		m[value.PlayModeDP] = dp
	}

	return m
}
