package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glowbook/admin-console/internal/apiclient"
	"github.com/glowbook/admin-console/internal/metrics"
	"github.com/glowbook/admin-console/internal/middleware"
	"github.com/glowbook/admin-console/internal/model"
	"github.com/glowbook/admin-console/internal/response"
	ws "github.com/glowbook/admin-console/internal/websocket"
	"github.com/glowbook/admin-console/internal/worker"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// BadgeSourceFactory returns a badge source that authenticates with token.
type BadgeSourceFactory func(token string) worker.BadgeSource

// BadgeWSHandler streams navigation badge counts to the console.
type BadgeWSHandler struct {
	sources  BadgeSourceFactory
	interval time.Duration
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewBadgeWSHandler creates a new BadgeWSHandler.
func NewBadgeWSHandler(sources BadgeSourceFactory, interval time.Duration, log zerolog.Logger, allowedOrigins []string) *BadgeWSHandler {
	return &BadgeWSHandler{
		sources:  sources,
		interval: interval,
		log:      log.With().Str("component", "badge_ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// BadgeStream godoc
// WS /ws/v1/badges?token=...
// Pushes badge counts on every poll. A backend 401 sends an error event and
// closes the stream.
func (h *BadgeWSHandler) BadgeStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	token := middleware.GetToken(c)
	if claims == nil || token == "" {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	raw, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	conn := ws.Wrap(raw)
	defer conn.Close("")

	metrics.BadgeStreams.Inc()
	defer metrics.BadgeStreams.Dec()

	wsLog := h.log.With().Str("user_id", claims.UserID).Logger()
	wsLog.Info().Msg("Badge stream connected")

	ctx, cancel := context.WithCancel(context.WithoutCancel(c.Request.Context()))
	defer cancel()

	source := h.sources(token)
	publish := func(counts *model.BadgeCounts, err error) bool {
		if err == nil {
			return conn.WriteTyped(ws.BadgesResponse{Event: ws.EventBadges, Data: counts}) == nil
		}

		var apiErr *apiclient.Error
		if errors.As(err, &apiErr) {
			_ = conn.WriteError(apiErr.Status, apiErr.Message)
			if apiClosesStream(apiErr) {
				wsLog.Info().Int("status", apiErr.Status).Msg("Backend rejected session, closing stream")
				cancel()
				_ = conn.Close("session expired")
				return false
			}
			return true
		}
		_ = conn.WriteError(0, err.Error())
		return true
	}

	refresh := make(chan struct{}, 1)
	go worker.NewBadgePoller(source, h.interval, publish, h.log).WithTrigger(refresh).Start(ctx)

	for {
		var msg ws.RequestEnvelope
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && ctx.Err() == nil {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			} else {
				wsLog.Debug().Msg("Connection closed")
			}
			return
		}

		switch msg.Action {
		case ws.ActionPing:
			_ = conn.WriteTyped(ws.PongResponse{Event: ws.EventPong})
		case ws.ActionRefresh:
			select {
			case refresh <- struct{}{}:
			default:
			}
		default:
			wsLog.Warn().Str("action", string(msg.Action)).Msg("Unknown action")
			_ = conn.WriteError(http.StatusBadRequest, "unknown action: "+string(msg.Action))
		}
	}
}

func apiClosesStream(err *apiclient.Error) bool {
	return err.Status == http.StatusUnauthorized || err.Status == http.StatusForbidden
}
