package cmd

import (
	"context"
	"errors"
	"exercisetracker/internal/http/handler/middleware"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("withMiddleware", func() {
	var (
		metrics *middleware.MetricsMiddleware
		logs    *observer.ObservedLogs
		hdlr    http.Handler
	)

	BeforeEach(func() {
		var core zapcore.Core
		core, logs = observer.New(zapcore.InfoLevel)
		metrics = middleware.NewMetricsMiddleware(prometheus.NewRegistry())

		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})
		hdlr = withMiddleware(mux, zap.New(core).Sugar(), metrics, "*")
	})

	When("a handler panics", func() {
		var w *httptest.ResponseRecorder

		BeforeEach(func() {
			w = httptest.NewRecorder()
			hdlr.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))
		})

		It("should answer 500", func() {
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})

		It("should count the failure under its route", func() {
			Expect(testutil.ToFloat64(metrics.Requests.WithLabelValues("GET", "GET /api/users", "500"))).To(Equal(1.0))
		})

		It("should write an access log entry with the 500 status", func() {
			entries := logs.FilterMessage("request handled").All()
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].ContextMap()).To(HaveKeyWithValue("status", int64(http.StatusInternalServerError)))
		})
	})
})

var _ = Describe("migrateStore", func() {
	var (
		logs       *observer.ObservedLogs
		logger     *zap.SugaredLogger
		closed     int
		migrateErr error
		closeErr   error
		handle     storeHandle
	)

	BeforeEach(func() {
		var core zapcore.Core
		core, logs = observer.New(zapcore.InfoLevel)
		logger = zap.New(core).Sugar()

		closed = 0
		migrateErr = nil
		closeErr = nil
	})

	JustBeforeEach(func() {
		handle = storeHandle{
			migrate: func(ctx context.Context) error { return migrateErr },
			close: func() error {
				closed++
				return closeErr
			},
		}
	})

	It("should migrate and close the store", func() {
		Expect(migrateStore(context.Background(), logger, handle)).To(Succeed())
		Expect(closed).To(Equal(1))
		Expect(logs.FilterMessage("store migrated").Len()).To(Equal(1))
	})

	When("migrating fails", func() {
		BeforeEach(func() {
			migrateErr = errors.New("no permission")
		})

		It("should return the error and still close the store", func() {
			Expect(migrateStore(context.Background(), logger, handle)).To(MatchError(migrateErr))
			Expect(closed).To(Equal(1))
		})
	})

	When("closing fails", func() {
		BeforeEach(func() {
			closeErr = errors.New("connection reset")
		})

		It("should log the close error", func() {
			Expect(migrateStore(context.Background(), logger, handle)).To(Succeed())

			entries := logs.FilterMessage("failed to close store").All()
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].ContextMap()).To(HaveKeyWithValue("error", "connection reset"))
		})
	})
})
