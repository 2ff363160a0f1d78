package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "djtracker"

const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultOK    = "ok"
	resultError = "error"
)

//nolint:gochecknoglobals
var (
	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Cache lookups by cache kind and result.",
	}, []string{"cache", "result"})

	tableLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "table_loads_total",
		Help:      "Tracker and export table loads that missed the cache, by source kind.",
	}, []string{"source", "result"})

	eventAlerts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_alerts_total",
		Help:      "Urgent event alerts handed to the notifier.",
	}, []string{"mode"})
)

func CacheLookup(cache string, hit bool) {
	result := resultMiss
	if hit {
		result = resultHit
	}

	cacheLookups.WithLabelValues(cache, result).Inc()
}

// TableLoad counts a parsed table read from a "file" or "url" source.
func TableLoad(source string, err error) {
	result := resultOK
	if err != nil {
		result = resultError
	}

	tableLoads.WithLabelValues(source, result).Inc()
}

func EventAlert(mode string) {
	eventAlerts.WithLabelValues(mode).Inc()
}
