package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"beautybar/pkg/client"
	"beautybar/pkg/config"
	"beautybar/pkg/middleware"
)

// Application owns the HTTP server and everything that needs an orderly
// stop: the rate limiter's cleanup goroutine and the Mongo connection.
type Application struct {
	cfg           *config.Config
	server        *http.Server
	mongo         *client.MongoClient
	rateLimiter   *middleware.IPRateLimiter
	healthHandler http.Handler
	apiHandler    http.Handler
}

func NewApplication(cfg *config.Config, mongo *client.MongoClient, rateLimiter *middleware.IPRateLimiter) *Application {
	return &Application{
		cfg:         cfg,
		mongo:       mongo,
		rateLimiter: rateLimiter,
	}
}

// SetRouters wraps the routers in their middleware chains and builds the
// server. Health endpoints skip the request-shaping middleware so probes
// keep working when the API stack misbehaves.
func (a *Application) SetRouters(apiRouter, healthRouter http.Handler) {
	var healthHandler http.Handler = healthRouter
	healthHandler = middleware.RequestLogging(a.cfg.Log)(healthHandler)
	healthHandler = middleware.Recovery(a.cfg.Log)(healthHandler)
	a.healthHandler = healthHandler

	var apiHandler http.Handler = apiRouter
	apiHandler = middleware.ContentTypeValidation(a.cfg.Log)(apiHandler)
	apiHandler = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(apiHandler)
	apiHandler = middleware.CORS(a.cfg.CORSOrigins)(apiHandler)
	apiHandler = middleware.RequestLogging(a.cfg.Log)(apiHandler)
	apiHandler = middleware.Recovery(a.cfg.Log)(apiHandler)
	a.apiHandler = apiHandler

	mux := http.NewServeMux()
	mux.Handle("/health", a.healthHandler)
	mux.Handle("/ready", a.healthHandler)
	mux.Handle("/", a.apiHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	a.rateLimiter.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	if err := a.mongo.Disconnect(ctx); err != nil {
		a.cfg.Log.Error("Mongo disconnect failed", "error", err)
	}

	a.cfg.Log.Info("Server stopped gracefully")
}
