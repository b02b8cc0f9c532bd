package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/glowbook/admin-console/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProxyPath is the same-origin route that relays calls in development mode.
const ProxyPath = "/api/proxy"

// Mode selects how request URLs are built.
type Mode string

const (
	// ModeProduction calls the backend origin directly.
	ModeProduction Mode = "production"
	// ModeDevelopment rewrites every call to the local proxy.
	ModeDevelopment Mode = "development"
)

// TokenSource supplies the bearer token for authenticated requests. It is
// consulted before every request that requires auth.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource that always returns the same token.
type StaticToken string

// AccessToken implements TokenSource.
func (t StaticToken) AccessToken(context.Context) (string, error) {
	return string(t), nil
}

// UnauthorizedHandler is invoked whenever the backend answers 401.
type UnauthorizedHandler interface {
	HandleUnauthorized(ctx context.Context)
}

// Request describes one backend call.
type Request struct {
	Method string
	// Path is the backend path, e.g. /api/v1/salons/42.
	Path  string
	Query url.Values
	// Body is JSON-encoded unless it is a *Form.
	Body        interface{}
	RequireAuth bool
}

// Options configures a Client.
type Options struct {
	BaseURL      string
	ProxyBaseURL string
	Mode         Mode
	// Timeout of zero leaves requests unbounded.
	Timeout      time.Duration
	HTTPClient   *http.Client
	Tokens       TokenSource
	Unauthorized UnauthorizedHandler
	Logger       zerolog.Logger
}

// Client is the request helper shared by every service.
type Client struct {
	baseURL      string
	proxyBaseURL string
	mode         Mode
	http         *http.Client
	tokens       TokenSource
	unauthorized UnauthorizedHandler
	log          zerolog.Logger
}

// New creates a new Client.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	mode := opts.Mode
	if mode == "" {
		mode = ModeProduction
	}

	return &Client{
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		proxyBaseURL: strings.TrimRight(opts.ProxyBaseURL, "/"),
		mode:         mode,
		http:         httpClient,
		tokens:       opts.Tokens,
		unauthorized: opts.Unauthorized,
		log:          opts.Logger.With().Str("component", "api_client").Logger(),
	}
}

// WithSession returns a copy of c bound to a different token source and
// 401 handler. The underlying transport is shared.
func (c *Client) WithSession(tokens TokenSource, unauthorized UnauthorizedHandler) *Client {
	clone := *c
	clone.tokens = tokens
	clone.unauthorized = unauthorized
	return &clone
}

// Do performs the request and decodes the response into out (which may be nil).
// Every failure is returned as *Error except body encoding, token lookup and
// decoding of a successful response.
func (c *Client) Do(ctx context.Context, r *Request, out interface{}) error {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	body, contentType, err := encodeBody(r.Body)
	if err != nil {
		return fmt.Errorf("encode %s %s body: %w", method, r.Path, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.buildURL(r.Path, r.Query), body)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, r.Path, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if r.RequireAuth && c.tokens != nil {
		token, err := c.tokens.AccessToken(ctx)
		if err != nil {
			return fmt.Errorf("read access token: %w", err)
		}
		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(method, "0").Inc()
		c.log.Warn().Err(err).Str("method", method).Str("path", r.Path).Msg("Backend unreachable")
		return &Error{Message: NetworkErrorMessage, cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(method, "0").Inc()
		return &Error{Message: NetworkErrorMessage, cause: err}
	}

	metrics.APIRequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	c.log.Debug().
		Str("method", method).
		Str("path", r.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Backend request")

	payload, details := parseBody(resp.Header.Get("Content-Type"), raw)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newError(resp.StatusCode, payload, details)
		if resp.StatusCode == http.StatusUnauthorized && c.unauthorized != nil {
			c.unauthorized.HandleUnauthorized(context.WithoutCancel(ctx))
		}
		return apiErr
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, r.Path, err)
	}
	return nil
}

// buildURL returns the direct backend URL, or the proxy URL carrying the
// backend path and query as its `path` parameter.
func (c *Client) buildURL(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	if c.mode == ModeDevelopment {
		return c.proxyBaseURL + ProxyPath + "?path=" + url.QueryEscape(path)
	}
	return c.baseURL + path
}

func encodeBody(body interface{}) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case *Form:
		return b.encode()
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(raw), "application/json", nil
	}
}

// parseBody returns JSON bytes for the response body. A declared JSON body is
// returned as is; any other non-empty body is wrapped as {"message": text} and
// its raw text returned as details.
func parseBody(contentType string, raw []byte) ([]byte, string) {
	if isJSON(contentType) {
		if len(bytes.TrimSpace(raw)) == 0 {
			return nil, ""
		}
		return raw, ""
	}

	text := string(raw)
	if strings.TrimSpace(text) == "" {
		return nil, ""
	}
	wrapped, _ := json.Marshal(map[string]string{"message": text})
	return wrapped, text
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
