package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	h := NewHealthHandler("development", true, map[string]Check{"redis": ok}, zerolog.Nop())
	r := gin.New()
	r.GET("/health", h.Health)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	data := body["data"].(map[string]interface{})
	require.Equal(t, "ok", data["status"])
	require.Equal(t, true, data["proxy"])

	h = NewHealthHandler("production", false, map[string]Check{"redis": ok, "postgres": down}, zerolog.Nop())
	r = gin.New()
	r.GET("/health", h.Health)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body = decode(t, rec)
	require.Equal(t, "SERVICE_UNAVAILABLE", body["error"].(map[string]interface{})["code"])
	data = body["data"].(map[string]interface{})
	require.Equal(t, "degraded", data["status"])
	require.Equal(t, map[string]interface{}{"redis": "ok", "postgres": "down"}, data["checks"])
	require.Equal(t, map[string]interface{}{"postgres": "connection refused"}, data["errors"])
}
