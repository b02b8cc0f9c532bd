package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glowbook/admin-console/internal/response"
	"github.com/rs/zerolog"
)

const healthTimeout = 2 * time.Second

// Check reports whether one dependency is reachable.
type Check func(ctx context.Context) error

// HealthHandler reports liveness and the state of configured dependencies.
type HealthHandler struct {
	env     string
	proxy   bool
	checks  map[string]Check
	started time.Time
	log     zerolog.Logger
}

// NewHealthHandler creates a new HealthHandler. checks may be empty.
func NewHealthHandler(env string, proxyEnabled bool, checks map[string]Check, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		env:     env,
		proxy:   proxyEnabled,
		checks:  checks,
		started: time.Now(),
		log:     log.With().Str("component", "health_handler").Logger(),
	}
}

type healthStatus struct {
	Status string            `json:"status"`
	Env    string            `json:"env"`
	Proxy  bool              `json:"proxy"`
	Uptime string            `json:"uptime"`
	Checks map[string]string `json:"checks,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Health godoc
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make(map[string]string, len(names))
	failed := make(map[string]string)
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.log.Warn().Err(err).Str("check", name).Msg("Health check failed")
			results[name] = "down"
			failed[name] = err.Error()
			continue
		}
		results[name] = "ok"
	}

	status := healthStatus{
		Status: "ok",
		Env:    h.env,
		Proxy:  h.proxy,
		Uptime: time.Since(h.started).Round(time.Second).String(),
		Checks: results,
	}
	if len(failed) > 0 {
		status.Status = "degraded"
		status.Errors = failed
		response.FailWithData(c, http.StatusServiceUnavailable, response.ErrUnavailable, status)
		return
	}
	response.Success(c, http.StatusOK, status)
}
