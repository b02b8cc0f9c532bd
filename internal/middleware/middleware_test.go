package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/glowbook/admin-console/internal/response"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func token(t *testing.T, role string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"userId": "u1", "role": role, "exp": exp.Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func authRouter() *gin.Engine {
	r := gin.New()
	r.Use(response.RequestIDMiddleware())
	r.GET("/secure", RequireAdminBearer(), func(c *gin.Context) {
		c.String(http.StatusOK, GetClaims(c).UserID+":"+GetToken(c)[:4])
	})
	return r
}

func TestRequireAdminBearer(t *testing.T) {
	r := authRouter()
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name   string
		header string
		query  string
		status int
		code   response.ErrCode
	}{
		{name: "missing", status: http.StatusUnauthorized, code: response.ErrTokenRequired},
		{name: "garbage", header: "Bearer not-a-jwt", status: http.StatusUnauthorized, code: response.ErrTokenInvalid},
		{name: "expired", header: "Bearer " + token(t, "admin", time.Now().Add(-time.Minute)), status: http.StatusUnauthorized, code: response.ErrTokenExpired},
		{name: "customer", header: "Bearer " + token(t, "customer", future), status: http.StatusForbidden, code: response.ErrAdminAccessOnly},
		{name: "header", header: "Bearer " + token(t, "admin", future), status: http.StatusOK},
		{name: "query", query: token(t, "admin", future), status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/secure"
			if tt.query != "" {
				target += "?token=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				require.Contains(t, rec.Body.String(), string(tt.code))
			} else {
				require.True(t, strings.HasPrefix(rec.Body.String(), "u1:eyJ"))
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimiter(ctx, 2, time.Hour)
	r := gin.New()
	r.GET("/", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
		if rec.Code == http.StatusTooManyRequests {
			require.Equal(t, "3600", rec.Header().Get("Retry-After"))
		}
	}
	require.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func brotliRouter(payload string, chunks int) *gin.Engine {
	r := gin.New()
	r.Use(BrotliWithConfig(BrotliConfig{MinLength: 64}))
	r.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
		for i := 0; i < chunks; i++ {
			_, _ = c.Writer.WriteString(payload)
		}
	})
	return r
}

func TestBrotliCompressesLargeBodies(t *testing.T) {
	payload := strings.Repeat("glowbook ", 10)
	r := brotliRouter(payload, 5)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip, br")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, "br", rec.Header().Get("Content-Encoding"))
	decoded, err := io.ReadAll(brotli.NewReader(bytes.NewReader(rec.Body.Bytes())))
	require.NoError(t, err)
	require.Equal(t, strings.Repeat(payload, 5), string(decoded))
}

func TestBrotliTrailingSmallWritesStayCompressed(t *testing.T) {
	r := gin.New()
	r.Use(BrotliWithConfig(BrotliConfig{MinLength: 64}))
	r.GET("/", func(c *gin.Context) {
		_, _ = c.Writer.WriteString(strings.Repeat("a", 100))
		_, _ = c.Writer.WriteString("tail")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "br")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	decoded, err := io.ReadAll(brotli.NewReader(bytes.NewReader(rec.Body.Bytes())))
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("a", 100)+"tail", string(decoded))
}

func TestBrotliSmallOrUnsupported(t *testing.T) {
	r := brotliRouter("tiny", 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "br")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Empty(t, rec.Header().Get("Content-Encoding"))
	require.Equal(t, "tiny", rec.Body.String())

	r = brotliRouter(strings.Repeat("x", 100), 2)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Empty(t, rec.Header().Get("Content-Encoding"))
	require.Len(t, rec.Body.String(), 200)
}

func TestNoStore(t *testing.T) {
	r := gin.New()
	r.GET("/", NoStore(), func(c *gin.Context) { c.Status(http.StatusOK) })
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}
