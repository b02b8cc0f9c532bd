package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glowbook/admin-console/internal/metrics"
	"github.com/glowbook/admin-console/internal/response"
	"github.com/rs/zerolog"
)

// maxProxyBody caps request bodies relayed to the backend.
const maxProxyBody = 32 << 20

// ProxyHandler relays browser calls to the backend so the console can run on
// a different origin during development.
type ProxyHandler struct {
	baseURL string
	client  *http.Client
	maxBody int64
	log     zerolog.Logger
}

// NewProxyHandler creates a new ProxyHandler forwarding to baseURL.
func NewProxyHandler(baseURL string, client *http.Client, log zerolog.Logger) *ProxyHandler {
	if client == nil {
		client = &http.Client{}
	}
	return &ProxyHandler{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		maxBody: maxProxyBody,
		log:     log.With().Str("component", "proxy_handler").Logger(),
	}
}

// Forward godoc
// ANY /api/proxy?path=/api/v1/...
// Relays the method, body, content type and Authorization header to the
// backend and returns its status and JSON body unchanged.
func (h *ProxyHandler) Forward(c *gin.Context) {
	start := time.Now()
	method := c.Request.Method

	path := c.Query("path")
	if !validProxyPath(path) {
		h.respond(c, method, start, http.StatusBadRequest, gin.H{"message": "Missing or invalid path parameter"})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.respond(c, method, start, http.StatusRequestEntityTooLarge, gin.H{"message": "Request body too large"})
			return
		}
		h.proxyError(c, method, start, err)
		return
	}

	var reqBody io.Reader
	if len(body) > 0 {
		reqBody = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(c.Request.Context(), method, h.baseURL+path, reqBody)
	if err != nil {
		h.proxyError(c, method, start, err)
		return
	}

	contentType := c.GetHeader("Content-Type")
	if contentType == "" && len(body) > 0 {
		contentType = "application/json"
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if auth := c.GetHeader("Authorization"); auth != "" {
		req.Header.Set("Authorization", auth)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(response.HeaderRequestID, response.RequestID(c))

	resp, err := h.client.Do(req)
	if err != nil {
		h.proxyError(c, method, start, err)
		return
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		h.proxyError(c, method, start, err)
		return
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		h.record(method, resp.StatusCode, start)
		c.Status(resp.StatusCode)
		c.Writer.WriteHeaderNow()
		return
	}

	if !json.Valid(raw) {
		h.log.Warn().
			Str("path", path).
			Int("backend_status", resp.StatusCode).
			Msg("Backend returned non-JSON response")
		h.respond(c, method, start, http.StatusBadGateway, gin.H{
			"message": "Backend returned non-JSON response",
			"details": string(raw),
		})
		return
	}

	h.record(method, resp.StatusCode, start)
	c.Data(resp.StatusCode, "application/json", raw)
}

// validProxyPath accepts only backend-relative paths so the proxy cannot be
// pointed at another host.
func validProxyPath(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//") && !strings.Contains(path, "\\")
}

func (h *ProxyHandler) proxyError(c *gin.Context, method string, start time.Time, err error) {
	h.log.Error().Err(err).Str("method", method).Msg("Proxy error")
	h.respond(c, method, start, http.StatusInternalServerError, gin.H{
		"message": "Proxy error",
		"error":   err.Error(),
	})
}

func (h *ProxyHandler) respond(c *gin.Context, method string, start time.Time, status int, body gin.H) {
	h.record(method, status, start)
	c.JSON(status, body)
}

func (h *ProxyHandler) record(method string, status int, start time.Time) {
	metrics.ProxyRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	metrics.ProxyDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
