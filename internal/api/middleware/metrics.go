package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/notekeeper/notes-api/internal/platform/metrics"
)

// RequestMetrics observes request counts and durations.
func RequestMetrics(instr *metrics.Instrumentation) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func(begin time.Time) {
				instr.HistRequestDuration.Observe(time.Since(begin).Seconds())
			}(time.Now())

			resp := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(resp, r)

			instr.CounterRequests.With(prometheus.Labels{
				"method": r.Method,
				"status": strconv.Itoa(resp.statusCode),
			}).Inc()
		})
	}
}

// statusRecorder remembers the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.statusCode = statusCode
}
