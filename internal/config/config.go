package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App     App
	HTTP    HTTP
	Tracker Tracker
	Events  Events
	Exports Exports
	Redis   Redis
	Bot     Bot
	Watcher Watcher
}

type App struct {
	Name           string `env:"APP_NAME"              envDefault:"djtracker"`
	Version        string `env:"APP_VERSION"           envDefault:"dev"`
	LogLevel       string `env:"LOG_LEVEL"             envDefault:"info"`
	LogNoColor     bool   `env:"LOG_NO_COLOR"`
	LogFieldMaxLen int    `env:"LOG_FIELD_MAX_LEN"     envDefault:"2048"`
	Timezone       string `env:"APP_TIMEZONE"          envDefault:"Asia/Tokyo"`
	ProfilePath    string `env:"PROFILE_PATH"          envDefault:"profile.yaml"`
}

// Location resolves Timezone, falling back to UTC.
func (a App) Location() *time.Location {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

type HTTP struct {
	ListenAddress        string        `env:"HTTP_LISTEN_ADDRESS"         envDefault:":8080"`
	ProbeListenAddress   string        `env:"PROBE_LISTEN_ADDRESS"        envDefault:":8081"`
	MetricsListenAddress string        `env:"METRICS_LISTEN_ADDRESS"      envDefault:":9090"`
	ReadHeaderTimeout    time.Duration `env:"HTTP_READ_HEADER_TIMEOUT"    envDefault:"5s"`
	ShutdownTimeout      time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT"       envDefault:"10s"`
	UpstreamTimeout      time.Duration `env:"HTTP_UPSTREAM_TIMEOUT"       envDefault:"15s"`
}

type Tracker struct {
	Location string        `env:"TRACKER_LOCATION"  envDefault:"tracker.tsv"`
	CacheTTL time.Duration `env:"TRACKER_CACHE_TTL" envDefault:"1m"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
