package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const unmatchedRoute = "unmatched"

type MetricsMiddleware struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

// NewMetricsMiddleware registers the request collectors with reg.
func NewMetricsMiddleware(reg prometheus.Registerer) *MetricsMiddleware {
	m := &MetricsMiddleware{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "exercise_tracker",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		Latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "exercise_tracker",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(m.Requests, m.Latency)
	return m
}

// Metrics must receive the same *http.Request the ServeMux sees: the mux sets
// r.Pattern on it, which is how the route label is resolved. Wrappers in
// between must not replace the request.
func (m *MetricsMiddleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}

		m.Requests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		m.Latency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
