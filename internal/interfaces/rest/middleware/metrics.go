package middleware

import (
	"net/http"
	"time"
)

type RequestRecorder interface {
	RequestStarted()
	RequestFinished()
	RecordHTTPRequest(method, path string, status int, duration time.Duration)
}

// Metrics records every request under its route pattern so path parameters
// such as gift card codes do not end up as label values.
func Metrics(recorder RequestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder.RequestStarted()
			defer recorder.RequestFinished()

			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			recorder.RecordHTTPRequest(r.Method, route, rec.status, time.Since(start))
		})
	}
}
