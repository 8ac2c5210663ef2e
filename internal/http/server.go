// Package http arma el handler final del servicio y maneja el ciclo de vida
// del listener.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/dropDatabas3/folio/internal/observability/logger"
)

// Server envuelve http.Server con arranque y apagado prolijos.
type Server struct {
	srv *http.Server
}

func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Start bloquea hasta que el listener cierre. ErrServerClosed no es error.
func (s *Server) Start() error {
	logger.L().Info("http server listening", logger.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drena conexiones en curso hasta que el contexto expire.
func (s *Server) Shutdown(ctx context.Context) error {
	logger.L().Info("http server shutting down")
	return s.srv.Shutdown(ctx)
}
