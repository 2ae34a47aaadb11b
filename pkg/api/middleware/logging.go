package middleware

import (
	"net/http"
	"time"

	"github.com/dd0wney/cluso-routerank/pkg/logging"
)

// Logging logs one line per request with its status, size and latency.
// Server errors log at error level, client errors at warn, the rest at debug
// so health probes and scrapes stay quiet at the default level.
func Logging(logger logging.Logger, getRequestID func(*http.Request) string) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			fields := []logging.Field{
				logging.String("method", r.Method),
				logging.String("path", r.URL.Path),
				logging.Int("status", rec.statusCode),
				logging.Int("bytes", rec.bytesWritten),
				logging.Latency(time.Since(start)),
			}
			if getRequestID != nil {
				if id := getRequestID(r); id != "" {
					fields = append(fields, logging.String("request_id", id))
				}
			}

			switch {
			case rec.statusCode >= http.StatusInternalServerError:
				logger.Error("request failed", fields...)
			case rec.statusCode >= http.StatusBadRequest:
				logger.Warn("request rejected", fields...)
			default:
				logger.Debug("request served", fields...)
			}
		})
	}
}
