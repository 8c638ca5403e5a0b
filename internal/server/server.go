package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/honeycarbs/career-hunter/internal/config"
	"github.com/honeycarbs/career-hunter/pkg/logging"
)

// Server wraps the REST API and the MCP endpoint behind one HTTP listener
type Server struct {
	logger *logging.Logger

	srv     *http.Server
	started atomic.Bool
}

// NewServer mounts api routes and the MCP handler on a single mux
func NewServer(cfg config.Config, api *Handler, mcpHandler http.Handler, logger *logging.Logger) *Server {
	mux := http.NewServeMux()
	api.RegisterRoutes(mux)
	mux.Handle("/mcp/stream", mcpHandler)

	var handler http.Handler = mux
	handler = cors(cfg.CORSOrigins, handler)
	handler = requestLog(logger, handler)
	handler = otelhttp.NewHandler(handler, "career-hunter")

	httpSrv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		logger: logger,
		srv:    httpSrv,
	}
}

// Handler exposes the fully wrapped handler
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Info("HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}
