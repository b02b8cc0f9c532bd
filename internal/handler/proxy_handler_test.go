package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func proxyRouter(backendURL string) *gin.Engine {
	h := NewProxyHandler(backendURL, nil, zerolog.Nop())
	r := gin.New()
	r.Any("/api/proxy", h.Forward)
	return r
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestProxyForwardsRequest(t *testing.T) {
	var gotMethod, gotURI, gotAuth, gotType, gotBody string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotURI = r.URL.RequestURI()
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"s1"}}`))
	}))
	defer backend.Close()

	target := "/api/proxy?path=" + "%2Fapi%2Fv1%2Fsalons%3Fpage%3D2"
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(`{"name":"Luxe"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	proxyRouter(backend.URL).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"success":true,"data":{"id":"s1"}}`, rec.Body.String())
	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "/api/v1/salons?page=2", gotURI)
	require.Equal(t, "Bearer tok", gotAuth)
	require.Equal(t, "application/json", gotType)
	require.Equal(t, `{"name":"Luxe"}`, gotBody)
}

func TestProxyRelaysBackendErrors(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"Token expired"}`))
	}))
	defer backend.Close()

	rec := httptest.NewRecorder()
	proxyRouter(backend.URL).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/proxy?path=/api/v1/bookings", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Token expired", decode(t, rec)["message"])
}

func TestProxyNonJSONBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>Bad Gateway</html>"))
	}))
	defer backend.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/proxy?path=/api/v1/auth/login", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	proxyRouter(backend.URL).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	body := decode(t, rec)
	require.Equal(t, "Backend returned non-JSON response", body["message"])
	require.Equal(t, "<html>Bad Gateway</html>", body["details"])
}

func TestProxyEmptyBody(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer backend.Close()

	rec := httptest.NewRecorder()
	proxyRouter(backend.URL).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/proxy?path=/api/v1/offers/o1", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestProxyRejectsOversizedBody(t *testing.T) {
	var called atomic.Bool
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
	}))
	defer backend.Close()

	h := NewProxyHandler(backend.URL, nil, zerolog.Nop())
	h.maxBody = 16
	r := gin.New()
	r.Any("/api/proxy", h.Forward)

	req := httptest.NewRequest(http.MethodPost, "/api/proxy?path=/api/v1/salons", strings.NewReader(strings.Repeat("x", 17)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Equal(t, "Request body too large", decode(t, rec)["message"])
	require.False(t, called.Load())

	req = httptest.NewRequest(http.MethodPost, "/api/proxy?path=/api/v1/salons", strings.NewReader(`{"name":"Luxe"}`))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.True(t, called.Load())
}

func TestProxyRejectsBadPath(t *testing.T) {
	r := proxyRouter("http://127.0.0.1:1")

	for _, target := range []string{
		"/api/proxy",
		"/api/proxy?path=api/v1/salons",
		"/api/proxy?path=%2F%2Fevil.example%2Fx",
		"/api/proxy?path=http%3A%2F%2Fevil.example",
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusBadRequest, rec.Code, target)
		require.Equal(t, "Missing or invalid path parameter", decode(t, rec)["message"])
	}
}

func TestProxyUnreachableBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := backend.URL
	backend.Close()

	rec := httptest.NewRecorder()
	proxyRouter(url).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/proxy?path=/api/v1/salons", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	require.Equal(t, "Proxy error", body["message"])
	require.NotEmpty(t, body["error"])
}
