package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"intake/config"
	"intake/infras/kafka"
	"intake/infras/otel"
	consultationService "intake/internal/domains/consultation/service"
	"intake/shared/constant"
	"intake/transport/http/middleware"
	"intake/transport/http/response"
	"intake/transport/http/router"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config        *config.Config
	Router        router.Router
	AppMiddleware middleware.AppMiddleware

	otel         otel.Otel
	events       kafka.Client
	consultation consultationService.Consultation

	state   atomic.Int32
	once    sync.Once
	mux     *chi.Mux
	server  *http.Server
	stopped chan struct{}
}

func New(
	cfg *config.Config,
	r router.Router,
	appMiddleware middleware.AppMiddleware,
	otel otel.Otel,
	events kafka.Client,
	consultation consultationService.Consultation,
) *HTTP {
	return &HTTP{
		Config:        cfg,
		Router:        r,
		AppMiddleware: appMiddleware,
		otel:          otel,
		events:        events,
		consultation:  consultation,
		stopped:       make(chan struct{}),
	}
}

// State reports where the server is in its shutdown sequence.
func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) Serve() {
	h.setup()
	h.setupGracefulShutdown()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-h.stopped
}

// ServeHTTP serves a single request, for serverless entry points.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()
	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.setupRoutes()
		h.state.Store(int32(ServerStateReady))
	})
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(chiMiddleware.Recoverer)
	h.mux.Use(h.AppMiddleware.RequestID)

	if corsConfig := h.Config.App.CORS; corsConfig.Enable {
		h.mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsConfig.AllowedOrigins,
			AllowedMethods:   corsConfig.AllowedMethods,
			AllowedHeaders:   corsConfig.AllowedHeaders,
			ExposedHeaders:   []string{constant.RequestHeaderRequestID},
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAgeSeconds,
		}))
	}

	h.mux.Get("/health", h.health)

	h.mux.Group(func(r chi.Router) {
		r.Use(h.AppMiddleware.Tracing)
		r.Use(h.AppMiddleware.RateLimit)

		h.Router.SetupRoutes(r)
	})
}

func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	switch h.State() {
	case ServerStateReady:
		response.WithMessage(w, http.StatusOK, "OK")
	case ServerStateInGracePeriod, ServerStateInCleanupPeriod:
		response.WithPreparingShutdown(w)
	default:
		response.WithUnhealthy(w)
	}
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer close(h.stopped)

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		shutdownConfig.GracePeriodSeconds = 0
	} else {
		log.Info().Msg("Received SIGTERM.")
	}

	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.state.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	cleanupTimeout := max(time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	h.cleanup(ctx)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// cleanup stops accepting requests, then drains background work before
// closing clients it depends on.
func (h *HTTP) cleanup(ctx context.Context) {
	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shut down HTTP server")
		}
	}

	if err := h.consultation.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to drain intake events")
	}

	if err := h.events.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close kafka writers")
	}

	if err := h.otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}
}
