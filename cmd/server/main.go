package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glowbook/admin-console/internal/apiclient"
	"github.com/glowbook/admin-console/internal/config"
	"github.com/glowbook/admin-console/internal/handler"
	"github.com/glowbook/admin-console/internal/logger"
	"github.com/glowbook/admin-console/internal/router"
	"github.com/glowbook/admin-console/internal/service"
	"github.com/glowbook/admin-console/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("env", cfg.AppEnv).
		Str("api_url", cfg.APIURL).
		Str("log_level", cfg.LogLevel).
		Msg("Starting GlowBook admin console")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Backend Client ────────────────────────────────────────────────
	// The server talks to the backend directly; only browsers use the proxy.
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	client := apiclient.New(apiclient.Options{
		BaseURL:    cfg.APIURL,
		Mode:       apiclient.ModeProduction,
		HTTPClient: httpClient,
		Logger:     log,
	})

	// ─── Initialize Handlers ──────────────────────────────────────────
	badgeSources := func(token string) worker.BadgeSource {
		return service.NewAnalyticsService(client.WithSession(apiclient.StaticToken(token), nil))
	}

	handlers := &router.Handlers{
		Health: handler.NewHealthHandler(cfg.AppEnv, cfg.IsDevelopment(), map[string]handler.Check{
			"backend": backendCheck(httpClient, cfg.APIURL),
		}, log),
		Badges: handler.NewBadgeWSHandler(badgeSources, cfg.BadgePollInterval, log, cfg.AllowedOrigins),
	}
	if cfg.IsDevelopment() {
		handlers.Proxy = handler.NewProxyHandler(cfg.APIURL, httpClient, log)
		log.Info().Str("path", apiclient.ProxyPath).Msg("Development proxy enabled")
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(ctx, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the rate-limiter sweeper.
	cancel()

	log.Info().Msg("Shutdown complete")
}

// backendCheck treats any HTTP answer from the backend origin as reachable.
func backendCheck(client *http.Client, baseURL string) handler.Check {
	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, baseURL, nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		return resp.Body.Close()
	}
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
