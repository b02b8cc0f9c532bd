package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glowbook/admin-console/internal/apiclient"
	"github.com/glowbook/admin-console/internal/config"
	"github.com/glowbook/admin-console/internal/handler"
	"github.com/glowbook/admin-console/internal/middleware"
	"github.com/glowbook/admin-console/internal/response"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Health *handler.HealthHandler
	// Proxy is nil outside development.
	Proxy  *handler.ProxyHandler
	Badges *handler.BadgeWSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// ctx bounds background work owned by the router, such as rate-limiter sweeps.
func SetupRouter(ctx context.Context, handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Logger())
	// Panics answer with the standard error envelope instead of an empty 500.
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
	}))

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Brotli())

	router.GET("/health", middleware.NoStore(), handlers.Health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ─── Development proxy ─────────────────────────────────────────────
	if handlers.Proxy != nil {
		limiter := middleware.NewRateLimiter(ctx, cfg.ProxyRateLimit, time.Minute)
		router.Any(apiclient.ProxyPath, limiter.Middleware(), middleware.NoStore(), handlers.Proxy.Forward)
	}

	// ─── WebSocket ─────────────────────────────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireAdminBearer())
	{
		ws.GET("/badges", handlers.Badges.BadgeStream)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	return router
}
