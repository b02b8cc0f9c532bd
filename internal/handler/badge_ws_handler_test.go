package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glowbook/admin-console/internal/apiclient"
	"github.com/glowbook/admin-console/internal/middleware"
	"github.com/glowbook/admin-console/internal/model"
	ws "github.com/glowbook/admin-console/internal/websocket"
	"github.com/glowbook/admin-console/internal/worker"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeBadgeSource struct {
	BadgesFn func(ctx context.Context) (*model.BadgeCounts, error)
}

func (f *fakeBadgeSource) Badges(ctx context.Context) (*model.BadgeCounts, error) {
	return f.BadgesFn(ctx)
}

func adminToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{"userId": "u1", "role": "admin", "exp": time.Now().Add(time.Hour).Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return signed
}

func badgeServer(t *testing.T, source worker.BadgeSource, gotToken *atomic.Value) *httptest.Server {
	t.Helper()
	h := NewBadgeWSHandler(func(token string) worker.BadgeSource {
		gotToken.Store(token)
		return source
	}, time.Hour, zerolog.Nop(), nil)

	r := gin.New()
	r.GET("/ws/v1/badges", middleware.RequireAdminBearer(), h.BadgeStream)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/v1/badges?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func TestBadgeStreamPushesCounts(t *testing.T) {
	source := &fakeBadgeSource{BadgesFn: func(context.Context) (*model.BadgeCounts, error) {
		return &model.BadgeCounts{PendingSalons: 4, OpenDisputes: 1}, nil
	}}
	var gotToken atomic.Value
	srv := badgeServer(t, source, &gotToken)
	token := adminToken(t)
	conn := dial(t, srv, token)

	var msg ws.BadgesResponse
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, ws.EventBadges, msg.Event)
	require.Equal(t, 4, msg.Data.PendingSalons)
	require.Equal(t, token, gotToken.Load())

	require.NoError(t, conn.WriteJSON(ws.RequestEnvelope{Action: ws.ActionPing}))
	var pong ws.PongResponse
	require.NoError(t, conn.ReadJSON(&pong))
	require.Equal(t, ws.EventPong, pong.Event)

	require.NoError(t, conn.WriteJSON(ws.RequestEnvelope{Action: ws.ActionRefresh}))
	msg = ws.BadgesResponse{}
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, ws.EventBadges, msg.Event)
}

func TestBadgeStreamClosesOnUnauthorized(t *testing.T) {
	source := &fakeBadgeSource{BadgesFn: func(context.Context) (*model.BadgeCounts, error) {
		return nil, &apiclient.Error{Status: http.StatusUnauthorized, Message: "Token expired"}
	}}
	var gotToken atomic.Value
	conn := dial(t, badgeServer(t, source, &gotToken), adminToken(t))

	var msg ws.ErrorResponse
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, ws.EventError, msg.Event)
	require.Equal(t, http.StatusUnauthorized, msg.Status)
	require.Equal(t, "Token expired", msg.Error)

	_, _, err := conn.ReadMessage()
	require.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestBadgeStreamRequiresToken(t *testing.T) {
	var gotToken atomic.Value
	srv := badgeServer(t, &fakeBadgeSource{}, &gotToken)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/v1/badges"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
