// Package panelservice boots the public panel tier: the authenticated gateway
// that forwards validated commands to the control tier.
package panelservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/voxctl/voxctl/internal/config"
	"github.com/voxctl/voxctl/internal/logger"
	"github.com/voxctl/voxctl/internal/panel"
)

// Run starts the panel-tier HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("vox-panel")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}
	if err := cfg.ValidatePanel(); err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		return err
	}

	log.Info().
		Int("port", cfg.PanelPort).
		Str("control_url", cfg.ControlURL).
		Int("forward_timeout_seconds", cfg.ForwardTimeoutSeconds).
		Msg("Panel tier starting")

	ctx, stop := newServerContext()
	defer stop()

	fwd := panel.NewForwarder(cfg.ControlURL, cfg.ControlKey,
		time.Duration(cfg.ForwardTimeoutSeconds)*time.Second)
	router := panel.NewRouter(panel.NewHandler(fwd, log), cfg.PanelAPIKey)

	server := newHTTPServer(ctx, cfg.PanelPort, router)
	errCh := serveHTTP(server, log, cfg.PanelPort)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

func newHTTPServer(ctx context.Context, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, port int) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", port).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
