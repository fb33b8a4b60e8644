// Package server provides the HTTP server for the Ganymede benchmark API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"mercator-hq/ganymede/pkg/catalog"
	"mercator-hq/ganymede/pkg/config"
	"mercator-hq/ganymede/pkg/server/handlers"
	"mercator-hq/ganymede/pkg/server/middleware"
)

// Server is the HTTP server exposing the benchmark API.
type Server struct {
	config       *config.ServerConfig
	catalog      *catalog.Catalog
	runner       handlers.Runner
	metrics      http.Handler
	metricsPath  string
	httpServer   *http.Server
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// NewServer creates a new benchmark API server. metrics may be nil, in which
// case no metrics endpoint is mounted.
func NewServer(cfg *config.ServerConfig, cat *catalog.Catalog, runner handlers.Runner, metrics http.Handler, metricsPath string) *Server {
	return &Server{
		config:       cfg,
		catalog:      cat,
		runner:       runner,
		metrics:      metrics,
		metricsPath:  metricsPath,
		shutdownChan: make(chan struct{}),
	}
}

// Handler returns the fully wired HTTP handler, including the middleware
// chain. Useful for serving the API through httptest.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	handler := s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:           s.config.ListenAddress,
		Handler:        handler,
		ReadTimeout:    s.config.ReadTimeout,
		WriteTimeout:   s.config.WriteTimeout,
		IdleTimeout:    s.config.IdleTimeout,
		MaxHeaderBytes: s.config.MaxHeaderBytes,
	}

	if s.config.TLS.Enabled {
		if err := s.checkTLSFiles(); err != nil {
			return fmt.Errorf("failed to configure TLS: %w", err)
		}
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			"address", s.config.ListenAddress,
			"tls_enabled", s.config.TLS.Enabled,
		)

		var err error
		if s.config.TLS.Enabled {
			err = s.httpServer.ListenAndServeTLS(s.config.TLS.CertFile, s.config.TLS.KeyFile)
		} else {
			err = s.httpServer.ListenAndServe()
		}

		if err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-ctx.Done():
		slog.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		slog.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		slog.Info("shutdown requested")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server. In-flight benchmark runs are
// given up to the configured shutdown timeout to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		slog.Info("initiating graceful shutdown", "timeout", s.config.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		slog.Info("server stopped")
	})

	return shutdownErr
}

// Stop requests a shutdown without waiting for a signal. It is primarily
// useful in tests.
func (s *Server) Stop() {
	select {
	case <-s.shutdownChan:
	default:
		close(s.shutdownChan)
	}
}

// setupRoutes configures HTTP routes and the middleware chain.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/api/models", handlers.NewModelsHandler(s.catalog))
	mux.Handle("/api/benchmark", handlers.NewBenchmarkHandler(s.runner))
	mux.Handle("/health", handlers.NewHealthHandler())

	if s.metrics != nil && s.metricsPath != "" {
		mux.Handle(s.metricsPath, s.metrics)
	}

	if s.config.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.config.StaticDir)))
	}

	var handler http.Handler = mux

	handler = middleware.TimeoutMiddleware(s.config.RequestTimeout)(handler)
	handler = middleware.CORSMiddleware(s.corsConfig())(handler)
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.RecoveryMiddleware(handler)

	return handler
}

// corsConfig converts the configuration CORS section to middleware settings.
func (s *Server) corsConfig() *middleware.CORSConfig {
	return &middleware.CORSConfig{
		Enabled:        s.config.CORS.Enabled,
		AllowedOrigins: s.config.CORS.AllowedOrigins,
		AllowedMethods: s.config.CORS.AllowedMethods,
		AllowedHeaders: s.config.CORS.AllowedHeaders,
		MaxAge:         s.config.CORS.MaxAge,
	}
}

// checkTLSFiles verifies that the configured certificate and key exist.
func (s *Server) checkTLSFiles() error {
	if s.config.TLS.CertFile == "" {
		return fmt.Errorf("TLS cert file not specified")
	}
	if s.config.TLS.KeyFile == "" {
		return fmt.Errorf("TLS key file not specified")
	}
	if _, err := os.Stat(s.config.TLS.CertFile); os.IsNotExist(err) {
		return fmt.Errorf("TLS cert file not found: %s", s.config.TLS.CertFile)
	}
	if _, err := os.Stat(s.config.TLS.KeyFile); os.IsNotExist(err) {
		return fmt.Errorf("TLS key file not found: %s", s.config.TLS.KeyFile)
	}
	return nil
}
