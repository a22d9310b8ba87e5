package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/zarclabs/zarc-auth/internal/logging"
	"github.com/zarclabs/zarc-auth/internal/server/config"
	"github.com/zarclabs/zarc-auth/internal/server/users"
)

// Server runs the HTTP endpoint and stops gracefully when its context is
// cancelled.
type Server struct {
	address        string
	frontendOrigin string
	logger         logging.Logger
	handler        *Handler
}

func NewServer(cfg *config.Config, l logging.Logger, us *users.Service) *Server {
	return &Server{
		address:        cfg.EndpointAddr,
		frontendOrigin: cfg.FrontendOrigin,
		logger:         l.With("module", "http_server"),
		handler:        NewHandler(l, us),
	}
}

func (s *Server) Run(ctx context.Context) error {

	mux := http.NewServeMux()
	s.handler.Register(mux)

	srv := &http.Server{
		Addr:              s.address,
		Handler:           corsMiddleware(s.frontendOrigin, mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
