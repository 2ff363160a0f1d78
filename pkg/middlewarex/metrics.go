package middlewarex

import (
	"cmp"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/zenazn/goji/web/mutil"
)

var requestDuration = promauto.NewHistogramVec( //nolint:gochecknoglobals
	prometheus.HistogramOpts{
		Name:    "djtracker_http_request_duration_seconds",
		Help:    "Duration of HTTP requests served by the API.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)

// Metrics records request latency labelled by the matched chi route pattern,
// so path parameters do not blow up label cardinality.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := mutil.WrapWriter(w)

		next.ServeHTTP(lw, r)

		requestDuration.
			WithLabelValues(r.Method, routePattern(r), strconv.Itoa(cmp.Or(lw.Status(), http.StatusOK))).
			Observe(time.Since(start).Seconds())
	})
}
