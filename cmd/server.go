package cmd

import (
	"context"
	"errors"
	"exercisetracker/internal/config"
	"exercisetracker/internal/core"
	"exercisetracker/internal/http/handler"
	"exercisetracker/internal/http/handler/middleware"
	"exercisetracker/internal/http/payload"
	"exercisetracker/internal/http/server"
	"exercisetracker/pkg/log"
	"exercisetracker/web"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Start()
	},
}

func Start() error {
	cfg, err := config.NewApp(envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create config: %s\n", err)
		return err
	}

	logger := log.NewZapLogger("exercise-tracker", log.ParseLevel(cfg.LogLevel))
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// store
	handle, err := openStore(ctx, cfg)
	if err != nil {
		logger.Errorw("failed to connect to store", "error", err, "backend", cfg.Backend())
		return err
	}
	defer func() {
		if err := handle.close(); err != nil {
			logger.Errorw("failed to close store", "error", err)
		}
	}()

	if err := handle.migrate(ctx); err != nil {
		logger.Errorw("failed to migrate store", "error", err, "backend", cfg.Backend())
		return err
	}

	// tracker
	tracker := core.NewTracker(logger, handle.repo)

	// handler
	exerciseHdlr := handler.NewExerciseHandler(
		logger,
		payload.Decoder{},
		tracker)

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc(handler.ListUsers, exerciseHdlr.HandleListUsers)
	mux.HandleFunc(handler.CreateUser, exerciseHdlr.HandleCreateUser)
	mux.HandleFunc(handler.AddExercise, exerciseHdlr.HandleAddExercise)
	mux.HandleFunc(handler.GetLog, exerciseHdlr.HandleGetLog)
	mux.HandleFunc(handler.Health, exerciseHdlr.HandleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /", web.Handler())

	metrics := middleware.NewMetricsMiddleware(prometheus.DefaultRegisterer)
	hdlr := withMiddleware(mux, logger, metrics, cfg.CORSAllowedOrigin)

	srv := server.NewHTTP(logger, hdlr, cfg.Port, cfg.ShutdownTimeout)
	return run(srv)
}

// withMiddleware wraps the mux so that a recovered panic still reaches the
// access log and the request metrics as a 500.
func withMiddleware(mux http.Handler, logger *zap.SugaredLogger, metrics *middleware.MetricsMiddleware, corsOrigin string) http.Handler {
	hdlr := chimiddleware.Recoverer(mux)
	hdlr = metrics.Metrics(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	hdlr = middleware.NewCORSMiddleware(corsOrigin).CORS(hdlr)
	return chimiddleware.RealIP(hdlr)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		return sdErr
	}

	return err
}
