// Package httpapi exposes the expert panel over a small JSON REST surface:
// health and discovery endpoints plus the analyze and consult operations.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/studiominds/expertpanel/internal/config"
	"github.com/studiominds/expertpanel/internal/orchestrator"
)

// Server hosts the REST API for one orchestrator.
type Server struct {
	orch    *orchestrator.Orchestrator
	cfg     *config.ServerConfig
	logger  *zap.Logger
	limiter *clientLimiter
	http    *http.Server
}

// NewServer builds a Server over the given orchestrator and config.
func NewServer(orch *orchestrator.Orchestrator, cfg *config.ServerConfig, logger *zap.Logger) *Server {
	cfg = cfg.WithDefaults()
	return &Server{
		orch:    orch,
		cfg:     cfg,
		logger:  logger,
		limiter: newClientLimiter(rate.Limit(cfg.RateRPS), cfg.RateBurst),
	}
}

// Handler builds the route table with the middleware chain applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/info", s.handleInfo)
	mux.HandleFunc("GET /api/experts", s.handleExperts)
	mux.HandleFunc("GET /api/docs", s.handleDocs)
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/consult/{expertCommand}", s.handleConsult)
	mux.HandleFunc("/", s.handleNotFound)

	var h http.Handler = mux
	h = s.rateLimit(h)
	h = s.logRequests(h)
	h = s.recoverPanics(h)
	if len(s.cfg.AllowedOrigins) > 0 {
		h = s.cors(h)
	}
	return h
}

// Start begins serving in a background goroutine and returns immediately.
func (s *Server) Start(ctx context.Context) error {
	s.http = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("http server starting",
		zap.String("addr", s.cfg.Addr),
		zap.Int("experts", len(s.orch.AvailableExperts())))

	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http server stopped", zap.Error(err))
		}
	}()

	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
