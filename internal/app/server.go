package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/spool-service/config"
	"github.com/rs/zerolog/log"
)

const (
	minWriteTimeout = 15 * time.Second
	// writeTimeoutSlack leaves room to write the 504 body after the
	// request timeout fires.
	writeTimeoutSlack = 5 * time.Second
)

// ShutdownHook releases a resource once the listener has drained.
type ShutdownHook func(ctx context.Context) error

// Server wraps http.Server with graceful shutdown capabilities.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	hooks           []ShutdownHook
}

// NewServer creates a Server listening on cfg.Port. The write timeout always
// exceeds the longest request deadline.
func NewServer(handler http.Handler, cfg config.ServerConfig) *Server {
	writeTimeout := minWriteTimeout
	for _, d := range []time.Duration{cfg.RequestTimeout, cfg.SummaryTimeout} {
		if t := d + writeTimeoutSlack; t > writeTimeout {
			writeTimeout = t
		}
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    1 << 20, // 1MB
		},
		shutdownTimeout: 10 * time.Second,
	}
}

// OnShutdown registers hooks run in order after the listener stops.
func (s *Server) OnShutdown(hooks ...ShutdownHook) {
	s.hooks = append(s.hooks, hooks...)
}

// Run starts the server and blocks until ctx is done, SIGINT or SIGTERM
// arrives, or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("Server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return errors.Join(err, s.runHooks())
	case <-ctx.Done():
		log.Info().Msg("Shutdown requested, draining connections")
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the listener and then runs the shutdown hooks.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return errors.Join(err, s.runHooks())
	}

	if err := s.runHooks(); err != nil {
		return err
	}
	log.Info().Msg("Server stopped gracefully")
	return nil
}

func (s *Server) runHooks() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	var errs []error
	for _, hook := range s.hooks {
		if err := hook(ctx); err != nil {
			log.Error().Err(err).Msg("Shutdown hook failed")
			errs = append(errs, err)
		}
	}
	s.hooks = nil
	return errors.Join(errs...)
}
