package http

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"reserva/config"
	appMiddleware "reserva/transport/http/middleware"
	"reserva/transport/http/router"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware appMiddleware.AppMiddleware
	State      ServerState
	mux        *chi.Mux
}

func New(cfg *config.Config, r router.Router, mw appMiddleware.AppMiddleware) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: mw,
	}
}

func (h *HTTP) Serve() {
	h.setup()

	server := &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go h.respondToSigterm(server, shutdownDone)

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-shutdownDone
}

// Adaptor exposes the configured handler for serverless runtimes that accept
// an http.HandlerFunc instead of running a listener.
func (h *HTTP) Adaptor() http.HandlerFunc {
	h.setup()

	return h.mux.ServeHTTP
}

func (h *HTTP) setup() {
	h.mux = chi.NewRouter()

	h.mux.Use(chiMiddleware.Recoverer)
	h.mux.Use(h.Middleware.Tracing)
	h.mux.Use(h.Middleware.CORS)
	h.mux.Use(h.Middleware.RateLimit)

	h.Router.SetupRoutes(h.mux)

	h.State = ServerStateReady
}

func (h *HTTP) respondToSigterm(server *http.Server, done chan struct{}) {
	defer close(done)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	<-sigCh

	if h.Config.Server.Env == "development" {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		if err := server.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close HTTP server")
		}

		return
	}

	gracePeriod := h.Config.Server.Shutdown.GracePeriodSeconds

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", gracePeriod).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(gracePeriod)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown did not complete, forcing close")

		if err := server.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close HTTP server")
		}

		return
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
