package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HTTPServer struct {
	logs            *zap.SugaredLogger
	server          *http.Server
	shutdownTimeout time.Duration
}

func NewHTTP(logger *zap.SugaredLogger, handler http.Handler, port string, shutdownTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		logs: logger,
		server: &http.Server{
			Addr:              net.JoinHostPort("", port),
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// Run starts listening in the background. The returned channel receives the
// listener error, http.ErrServerClosed after a clean Shutdown.
func (s *HTTPServer) Run() <-chan error {
	errChan := make(chan error, 1)

	go func() {
		s.logs.Infow("http server started", "addr", s.server.Addr)
		errChan <- s.server.ListenAndServe()
	}()

	return errChan
}

func (s *HTTPServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.logs.Infow("shutting down http server", "timeout", s.shutdownTimeout)
	if err := s.server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
