package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"buslink/config"
	"buslink/infras/otel"
	"buslink/infras/postgres"
	"buslink/shared/constant"
	"buslink/transport/http/middleware"
	"buslink/transport/http/response"
	"buslink/transport/http/router"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

// HTTP owns the server lifecycle: middleware setup, route mounting, and
// graceful shutdown on SIGINT/SIGTERM.
type HTTP struct {
	Config  *config.Config
	DB      *postgres.Connection
	Router  router.Router
	Limiter *middleware.RateLimiter
	Otel    otel.Otel

	mux *chi.Mux
}

func ProvideHTTP(cfg *config.Config, db *postgres.Connection, rtr router.Router, limiter *middleware.RateLimiter, ot otel.Otel) *HTTP {
	return &HTTP{
		Config:  cfg,
		DB:      db,
		Router:  rtr,
		Limiter: limiter,
		Otel:    ot,
	}
}

// SetupAndServe blocks until the server shuts down.
func (h *HTTP) SetupAndServe() {
	h.mux = chi.NewRouter()

	h.setupMiddleware()
	h.setupRoutes()

	h.serve()
}

func (h *HTTP) setupMiddleware() {
	h.mux.Use(chiMiddleware.Recoverer)
	h.mux.Use(middleware.RequestLogger)
	h.mux.Use(middleware.Tracing(h.Otel))

	if h.Config.App.CORS.Enable {
		h.mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	h.mux.Use(h.Limiter.Limit)
}

func (h *HTTP) setupRoutes() {
	h.mux.Get("/health", h.HealthCheck)

	h.Router.SetupRoutes(h.mux)
}

func (h *HTTP) serve() {
	addr := fmt.Sprintf("%s:%s", h.Config.Server.Host, h.Config.Server.Port)

	server := &http.Server{
		Addr:              addr,
		Handler:           h.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", addr).Str("env", h.Config.Server.Env).Msg("Starting HTTP server")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-shutdown
	log.Info().Msg("Shutdown signal received, draining connections")

	gracePeriod := time.Duration(h.Config.Server.Shutdown.GracePeriodSeconds) * time.Second
	if gracePeriod <= 0 {
		gracePeriod = 15 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracePeriod)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")

		return
	}

	log.Info().Msg("Server stopped cleanly")
}

// HealthCheck reports liveness, including database reachability.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.Base
// @Failure 503 {object} response.Base
// @Router /health [get]
func (h *HTTP) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.Read.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("Health check failed on read connection")

		response.WithMessage(w, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)

		return
	}

	if err := h.DB.Write.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("Health check failed on write connection")

		response.WithMessage(w, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
