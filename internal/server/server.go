package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xaenox/sentimeter/internal/analyzer"
	"github.com/xaenox/sentimeter/internal/metrics"
	"go.uber.org/zap"
)

type Config struct {
	Addr            string
	Mode            string
	ShutdownTimeout time.Duration
}

type Server struct {
	cfg      Config
	service  *analyzer.Service
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	logger   *zap.Logger
	router   *gin.Engine
}

// New builds the HTTP server. m and gatherer may be nil, in which case no
// metrics are recorded or exposed.
func New(cfg Config, service *analyzer.Service, m *metrics.Metrics, gatherer prometheus.Gatherer, logger *zap.Logger) *Server {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	s := &Server{
		cfg:      cfg,
		service:  service,
		metrics:  m,
		gatherer: gatherer,
		logger:   logger,
	}
	s.router = s.setupRoutes()
	return s
}

// Handler returns the underlying router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting Sentiment Analysis API", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down Sentiment Analysis API")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("Sentiment Analysis API exited")
	return nil
}
