package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type LoggingMiddleware struct {
	logs *zap.SugaredLogger
}

func NewLoggingMiddleware(logger *zap.SugaredLogger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logs: logger,
	}
}

func (m *LoggingMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		m.logs.Infow("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"remote_addr", r.RemoteAddr,
			"request_id", RequestIDFrom(r.Context()))
	})
}
