package middleware_test

import (
	"exercisetracker/internal/http/handler/middleware"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		w   *httptest.ResponseRecorder
		req *http.Request
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	})

	Describe("RequestID", func() {
		var (
			seen    string
			handler http.Handler
		)

		BeforeEach(func() {
			seen = ""
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = middleware.RequestIDFrom(r.Context())
			})
			handler = middleware.NewRequestIDMiddleware().RequestID(next)
		})

		JustBeforeEach(func() {
			handler.ServeHTTP(w, req)
		})

		When("the client sends no request id", func() {
			It("should generate one", func() {
				_, err := uuid.Parse(seen)
				Expect(err).NotTo(HaveOccurred())
				Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))
			})
		})

		When("the client sends a request id", func() {
			BeforeEach(func() {
				req.Header.Set(middleware.RequestIDHeader, "req-42")
			})

			It("should reuse it", func() {
				Expect(seen).To(Equal("req-42"))
				Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("req-42"))
			})
		})
	})

	Describe("Logging", func() {
		It("should pass the response through untouched", func() {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
				_, _ = w.Write([]byte("tea"))
			})

			middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(next).ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTeapot))
			Expect(w.Body.String()).To(Equal("tea"))
		})
	})

	Describe("Metrics", func() {
		var (
			metrics *middleware.MetricsMiddleware
			handler http.Handler
		)

		BeforeEach(func() {
			metrics = middleware.NewMetricsMiddleware(prometheus.NewRegistry())

			mux := http.NewServeMux()
			mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			mux.HandleFunc("GET /api/users/{id}/logs", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			})
			handler = metrics.Metrics(mux)
		})

		It("should count requests by route pattern and status", func() {
			handler.ServeHTTP(w, req)
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/users/abc/logs", nil))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/users/def/logs", nil))

			Expect(testutil.ToFloat64(metrics.Requests.WithLabelValues("GET", "GET /api/users", "200"))).To(Equal(1.0))
			Expect(testutil.ToFloat64(metrics.Requests.WithLabelValues("GET", "GET /api/users/{id}/logs", "404"))).To(Equal(2.0))
			Expect(testutil.CollectAndCount(metrics.Latency)).To(Equal(2))
		})

		It("should label unknown paths as unmatched", func() {
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(testutil.ToFloat64(metrics.Requests.WithLabelValues("GET", "unmatched", "404"))).To(Equal(1.0))
		})
	})

	Describe("CORS", func() {
		var handler http.Handler

		BeforeEach(func() {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler = middleware.NewCORSMiddleware("*").CORS(next)
		})

		It("should set the allowed origin", func() {
			handler.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
		})

		It("should answer preflight requests itself", func() {
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/users", nil))

			Expect(w.Code).To(Equal(http.StatusNoContent))
		})
	})
})
