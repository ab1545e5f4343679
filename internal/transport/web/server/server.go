package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jbeshir/star-reviews/internal/domain"
	"golang.org/x/crypto/acme/autocert"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	TLSDisabled       bool
	TLSDisabledPort   int
	AutocertHostnames []string
	Router            http.Handler
}

func (s *Server) Run(ctx context.Context) error {
	var listener net.Listener
	if s.TLSDisabled {
		var err error
		listener, err = net.Listen("tcp", fmt.Sprintf(":%d", s.TLSDisabledPort))
		if err != nil {
			return fmt.Errorf("listening on port %d: %w", s.TLSDisabledPort, err)
		}
	} else {
		listener = autocert.NewListener(s.AutocertHostnames...)
	}

	srv := &http.Server{
		Handler: s.Router,
		BaseContext: func(net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger := domain.LoggerFromContext(ctx)
			logger.WarnContext(ctx, "unclean HTTP server shutdown", "error", err)
		}
	}()

	domain.LoggerFromContext(ctx).InfoContext(ctx, "serving HTTP", "address", listener.Addr().String())
	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
