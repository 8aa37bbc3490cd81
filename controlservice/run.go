// Package controlservice boots the private control tier: the HTTP surface
// that executes commands against live session state.
package controlservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/voxctl/voxctl/internal/ai"
	"github.com/voxctl/voxctl/internal/config"
	"github.com/voxctl/voxctl/internal/control"
	"github.com/voxctl/voxctl/internal/health"
	"github.com/voxctl/voxctl/internal/logger"
	"github.com/voxctl/voxctl/internal/media"
	"github.com/voxctl/voxctl/internal/memory"
	"github.com/voxctl/voxctl/internal/persona"
	"github.com/voxctl/voxctl/internal/services"
	"github.com/voxctl/voxctl/internal/session"
	"github.com/voxctl/voxctl/internal/speech"
)

// Run starts the control-tier HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("vox-control")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}
	if err := cfg.ValidateControl(); err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		return err
	}

	log.Info().
		Str("runtime", cfg.Runtime).
		Str("host", cfg.ControlHost).
		Int("port", cfg.ControlPort).
		Str("sounds_dir", cfg.SoundsDir).
		Bool("ai_configured", cfg.AIAPIKey != "").
		Msg("Control tier starting")

	// Cancellable root context bound to SIGINT/SIGTERM.
	ctx, stop := newServerContext()
	defer stop()

	rt := newRuntime(cfg, log)

	// Watch the session runtime; readiness is surfaced through /ctl/ping.
	checker := health.NewChecker("session-runtime", rt, log,
		time.Duration(cfg.HealthProbeTimeoutSeconds)*time.Second)
	go checker.Start(ctx, time.Duration(cfg.HealthIntervalSeconds)*time.Second)

	handler := buildHandler(cfg, rt, checker.IsHealthy, log)
	router := control.NewRouter(handler, cfg.ControlKey)

	server := newHTTPServer(ctx, cfg.ControlHost, cfg.ControlPort, router)
	errCh := serveHTTP(server, log, cfg.ControlPort)

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

// newRuntime selects the session runtime. Only the in-memory dev runtime is
// wired today; config.ResolveDefaults already rejected anything else.
func newRuntime(cfg *config.Config, log zerolog.Logger) *session.DevRuntime {
	rt := session.NewDevRuntime(log)
	rt.AddGuild(session.Guild{ID: 1, Name: "dev-guild"})
	rt.AddChannel(session.Channel{ID: 100, GuildID: 1, Kind: session.TextChannel, Name: "general", CanSend: true})
	rt.AddChannel(session.Channel{ID: 200, GuildID: 1, Kind: session.VoiceChannel, Name: "voice"})
	return rt
}

// buildHandler wires the services layer onto the runtime.
func buildHandler(cfg *config.Config, rt session.Runtime, ready func() bool, log zerolog.Logger) *control.Handler {
	reg := session.NewRegistry()
	voices := speech.NewVoiceState(cfg.DefaultVoice)
	personas := persona.NewState(cfg.DefaultPersona)
	completer, synth := newAIAdapters(cfg)

	voice := services.NewVoiceService(rt, reg)
	msg := services.NewMessageService(rt)
	playback := services.NewPlaybackService(rt, reg, voice,
		media.NewYtdlpResolver(cfg.YtdlpPath), cfg.SoundsDir, log)
	sp := services.NewSpeechService(reg, voice, msg, completer, synth, voices, cfg.ScratchDir, log)

	return control.NewHandler(rt, control.Services{
		Message:  msg,
		Voice:    voice,
		Playback: playback,
		Speech:   sp,
		Memory:   services.NewMemoryService(memory.NewStore()),
		Settings: services.NewSettingsService(personas, voices),
	}, ready, log)
}

// newAIAdapters returns the OpenAI-compatible adapters when an API key is
// configured, no-op adapters otherwise.
func newAIAdapters(cfg *config.Config) (ai.Completer, speech.Synthesizer) {
	if cfg.AIAPIKey == "" {
		return ai.Noop{}, speech.Noop{}
	}
	return ai.NewOpenAIChat(cfg.AIBaseURL, cfg.AIAPIKey, cfg.CompletionModel),
		speech.NewOpenAITTS(cfg.AIBaseURL, cfg.AIAPIKey, cfg.SpeechModel)
}

func newHTTPServer(ctx context.Context, host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", host, port),
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
