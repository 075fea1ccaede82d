package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/berkcan/schedbuilder/internal/bootstrap"
	"github.com/berkcan/schedbuilder/internal/config"
)

// Server holds the state for the HTTP server.
type Server struct {
	config      *config.Config
	router      *gin.Engine
	deps        *bootstrap.Dependencies
	logger      zerolog.Logger
	http        *http.Server
	stopRefresh chan struct{}
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	catalogueRepo, err := bootstrap.SetupCatalogue(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup catalogue: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, catalogueRepo, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)

	s := &Server{
		config:      cfg,
		router:      router,
		deps:        deps,
		logger:      lgr,
		stopRefresh: make(chan struct{}),
	}

	return s, nil
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting server...")

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	s.startCatalogueRefresh()

	// Channel to listen for errors starting the server
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	// Channel to listen for OS signals
	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive either a server error or an OS signal
	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// startCatalogueRefresh reloads the catalogue file on the configured
// interval. The scrape job rewrites the file out of process; this ticker is
// how the running service picks the new data up without a restart.
func (s *Server) startCatalogueRefresh() {
	if s.config.Catalogue.RefreshInterval == "" {
		s.logger.Info().Msg("Periodic catalogue refresh disabled")
		return
	}

	interval, err := time.ParseDuration(s.config.Catalogue.RefreshInterval)
	if err != nil {
		// Config validation rejects bad intervals; this is unreachable in practice.
		s.logger.Warn().Err(err).Msg("Invalid refresh interval, periodic refresh disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.deps.CatalogueService.Refresh(); err != nil {
					// Keep serving the previous snapshot on failure.
					s.logger.Error().Err(err).Msg("Periodic catalogue refresh failed")
				}
			case <-s.stopRefresh:
				return
			}
		}
	}()

	s.logger.Info().Dur("interval", interval).Msg("Periodic catalogue refresh enabled")
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	close(s.stopRefresh)

	shutdownError := false

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownError = true
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	if shutdownError {
		return errors.New("server shutdown completed with errors")
	}
	return nil
}
