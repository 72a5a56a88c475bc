package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/finboard/finboard/internal/observability"
)

// Metrics records request counts and durations. The route label uses the
// matched pattern when available so identifiers do not explode cardinality.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}

			observability.HTTPRequestsTotal.
				WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
			observability.HTTPRequestDuration.
				WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
