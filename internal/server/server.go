package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/hadithlab/rawi/internal/api"
	"github.com/hadithlab/rawi/internal/config"
	"github.com/hadithlab/rawi/internal/home"
	"github.com/hadithlab/rawi/internal/refine"
	"github.com/hadithlab/rawi/internal/runner"
	"github.com/hadithlab/rawi/internal/server/endpoints"
	"github.com/hadithlab/rawi/internal/svcctx"
)

// Server is the main Rawi HTTP server. Extraction is deterministic and
// file-backed, so the server holds no state beyond its services: every
// request reads and writes the collection directories under the home dir.
type Server struct {
	httpServer *http.Server
	configMgr  *config.Manager
	homeDir    *home.Dir
	logger     *slog.Logger

	// services holds all core services for context enrichment
	services *svcctx.Services

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1)
	Host string
	// Port is the port to listen on (default: 8080)
	Port string
	// Home is the rawi home directory
	Home *home.Dir
	// ConfigManager provides configuration with hot-reload support
	ConfigManager *config.Manager
	// Logger is the structured logger to use
	Logger *slog.Logger
	// SwaggerSpecPath overrides the OpenAPI spec location
	SwaggerSpecPath string
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Home == nil {
		return nil, errors.New("home directory is required")
	}
	if cfg.ConfigManager == nil {
		return nil, errors.New("config manager is required")
	}

	s := &Server{
		configMgr: cfg.ConfigManager,
		homeDir:   cfg.Home,
		logger:    cfg.Logger,
	}

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All(endpoints.Config{SwaggerSpecPath: cfg.SwaggerSpecPath}) {
		s.endpointRegistry.Register(ep)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux)

	s.httpServer = &http.Server{
		Addr:        net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:     s.withServices(mux),
		ReadTimeout: 30 * time.Second,
		// Extraction runs synchronously inside the request; a whole
		// collection can take minutes.
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Start starts the server. It blocks until the context is cancelled or an
// error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	if err := s.homeDir.EnsureExists(); err != nil {
		s.setNotRunning()
		return fmt.Errorf("failed to create home directory: %w", err)
	}

	refiner, err := refine.FromConfig(s.configMgr.Get(), s.logger)
	if err != nil {
		s.setNotRunning()
		return fmt.Errorf("failed to configure refiner: %w", err)
	}

	s.services = &svcctx.Services{
		Logger:        s.logger,
		Home:          s.homeDir,
		ConfigManager: s.configMgr,
		Runner:        runner.New(s.homeDir, s.configMgr, s.logger),
		Refiner:       refiner,
	}

	// Pick up profile and refine changes without a restart.
	s.configMgr.OnChange(func(c *config.Config) {
		s.logger.Info("config reloaded", "collections", len(c.Collections))
	})
	s.configMgr.WatchConfig()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			s.setNotRunning()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// withServices wraps a handler so every request context carries the
// service set.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := svcctx.WithServices(r.Context(), s.services)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// shutdown performs graceful shutdown of the HTTP server.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
