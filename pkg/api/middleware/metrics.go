package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// MetricsRecorder receives one observation per request
type MetricsRecorder interface {
	RecordHTTPRequest(method, route, status string, duration time.Duration, size int)
	IncHTTPRequestsInFlight()
	DecHTTPRequestsInFlight()
}

// RouteTemplate labels a request by its matched mux route, such as
// /airports/{code}, so airport codes never become label values.
func RouteTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unmatched"
	}
	tmpl, err := route.GetPathTemplate()
	if err != nil {
		return "unmatched"
	}
	return tmpl
}

// Metrics records request count, latency, response size and in-flight
// requests. routeOf picks the route label; nil uses RouteTemplate.
func Metrics(recorder MetricsRecorder, routeOf func(*http.Request) string) func(http.Handler) http.Handler {
	if routeOf == nil {
		routeOf = RouteTemplate
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if recorder == nil {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			recorder.IncHTTPRequestsInFlight()
			defer recorder.DecHTTPRequestsInFlight()

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			recorder.RecordHTTPRequest(r.Method, routeOf(r), strconv.Itoa(rec.statusCode), time.Since(start), rec.bytesWritten)
		})
	}
}
