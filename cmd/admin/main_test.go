package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glowbook/admin-console/internal/apiclient"
	"github.com/glowbook/admin-console/internal/config"
	"github.com/glowbook/admin-console/internal/model"
	"github.com/glowbook/admin-console/internal/service"
	"github.com/glowbook/admin-console/internal/session"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	*app
	store  *session.MemoryStore
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	calls  *atomic.Int32
}

// newTestApp wires a console against h. When signedIn is set the store holds
// an admin session before Init runs.
func newTestApp(t *testing.T, h http.HandlerFunc, signedIn bool, route string) *testApp {
	t.Helper()

	calls := &atomic.Int32{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	store := session.NewMemoryStore()
	if signedIn {
		raw, err := json.Marshal(model.User{ID: "u1", Name: "Ada", Email: "ada@glowbook.io", Role: model.RoleAdmin})
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, config.StorageKey.AccessToken, "tok-1"))
		require.NoError(t, store.Set(ctx, config.StorageKey.RefreshToken, "ref-1"))
		require.NoError(t, store.Set(ctx, config.StorageKey.User, string(raw)))
	}

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	log := zerolog.Nop()
	nav := newCLINavigator(route, stderr)
	mgr := session.NewManager(store, nav, log)
	client := apiclient.New(apiclient.Options{
		BaseURL:      srv.URL,
		Tokens:       mgr,
		Unauthorized: mgr,
		Logger:       log,
	})
	svc := service.New(client)
	mgr.UseAuth(svc.Auth)
	require.NoError(t, mgr.Init(ctx))

	return &testApp{
		app: &app{
			cfg:   &config.Config{BadgePollInterval: 10 * time.Millisecond},
			log:   log,
			mgr:   mgr,
			svc:   svc,
			nav:   nav,
			in:    bufio.NewReader(strings.NewReader("")),
			out:   stdout,
			err:   stderr,
			ttyFD: -1,
		},
		store:  store,
		stdout: stdout,
		stderr: stderr,
		calls:  calls,
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestParseFlagsInterleaved(t *testing.T) {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	reason := fs.String("reason", "", "")
	pos, err := parseFlags(fs, []string{"s1", "--reason", "closed", "extra"})
	require.NoError(t, err)
	require.Equal(t, []string{"s1", "extra"}, pos)
	require.Equal(t, "closed", *reason)

	fs = flag.NewFlagSet("t", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	_, err = parseFlags(fs, []string{"--nope"})
	require.ErrorIs(t, err, errUsage)
}

func TestSalonsListRendersTable(t *testing.T) {
	var gotQuery, gotAuth string
	ta := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/salons", r.URL.Path)
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":    true,
			"data":       []model.Salon{{ID: "s1", Name: "Luxe Cuts", City: "Austin", Status: model.SalonStatusPending, Rating: 4.5}},
			"pagination": model.Pagination{Page: 1, Limit: 20, Total: 1, TotalPages: 1},
		})
	}, true, session.RouteDashboard)

	err := ta.dispatch(context.Background(), []string{"salons", "list", "--status", "pending", "--page", "1"})
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-1", gotAuth)
	require.Contains(t, gotQuery, "status=pending")
	require.Contains(t, gotQuery, "page=1")

	out := ta.stdout.String()
	require.Contains(t, out, "Luxe Cuts")
	require.Contains(t, out, "4.5")
	require.Contains(t, out, "page 1/1, 1 total")
}

func TestResourceCommandRequiresSession(t *testing.T) {
	ta := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}, false, session.RouteDashboard)

	err := ta.dispatch(context.Background(), []string{"bookings", "list"})
	require.ErrorIs(t, err, session.ErrNotAuthenticated)
	require.Zero(t, ta.calls.Load())
}

func TestUnknownCommandAndSubcommand(t *testing.T) {
	ta := newTestApp(t, func(http.ResponseWriter, *http.Request) {}, true, session.RouteDashboard)

	err := ta.dispatch(context.Background(), []string{"nope"})
	require.ErrorContains(t, err, `unknown command "nope"`)

	err = ta.dispatch(context.Background(), []string{"salons", "explode"})
	require.ErrorContains(t, err, `unknown subcommand "explode"`)
	require.Contains(t, ta.stderr.String(), "Usage: admin salons <subcommand>")
}

func TestUnauthorizedClearsSessionAndRedirects(t *testing.T) {
	ta := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token expired"})
	}, true, routeFor("orders"))

	err := ta.dispatch(context.Background(), []string{"orders", "list"})
	require.True(t, apiclient.IsUnauthorized(err))
	require.True(t, ta.mgr.SessionExpired())
	require.Zero(t, ta.store.Len())
	require.Equal(t, session.StateAnonymous, ta.mgr.State())
	require.Contains(t, ta.stderr.String(), "→ signed out")
}

func TestRejectSalonNeedsReason(t *testing.T) {
	ta := newTestApp(t, func(http.ResponseWriter, *http.Request) {
		t.Error("validation should stop the request")
	}, true, session.RouteDashboard)

	err := ta.dispatch(context.Background(), []string{"salons", "reject", "s1"})
	require.Error(t, err)
	require.Zero(t, ta.calls.Load())

	renderError(ta.stderr, err)
	require.Contains(t, ta.stderr.String(), "reason")
}

func TestSalonApproveSendsStatus(t *testing.T) {
	var body map[string]string
	ta := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/salons/s1/status", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    model.Salon{ID: "s1", Name: "Luxe Cuts", Status: model.SalonStatusApproved},
		})
	}, true, session.RouteDashboard)

	require.NoError(t, ta.dispatch(context.Background(), []string{"salons", "approve", "s1"}))
	require.Equal(t, "approved", body["status"])
	require.Equal(t, "Luxe Cuts is now approved\n", ta.stdout.String())
}

func TestProductStockRejectsNonNumber(t *testing.T) {
	ta := newTestApp(t, func(http.ResponseWriter, *http.Request) {}, true, session.RouteDashboard)

	err := ta.dispatch(context.Background(), []string{"products", "stock", "p1", "lots"})
	require.ErrorIs(t, err, errUsage)
	require.Zero(t, ta.calls.Load())
}

func TestLoginPersistsAdminSession(t *testing.T) {
	ta := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		var req model.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada@glowbook.io", req.Identifier)
		assert.Equal(t, "s3cret-pass", req.Password)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data": model.AuthResponse{
				AccessToken:  "new-access",
				RefreshToken: "new-refresh",
				User:         &model.User{ID: "u1", Name: "Ada", Email: "ada@glowbook.io", Role: model.RoleAdmin},
			},
		})
	}, false, routeFor("login"))
	ta.in = bufio.NewReader(strings.NewReader("s3cret-pass\n"))

	require.NoError(t, ta.dispatch(context.Background(), []string{"login", "ada@glowbook.io"}))
	require.Contains(t, ta.stdout.String(), "Signed in as Ada <ada@glowbook.io>")
	require.Equal(t, session.StateAuthenticated, ta.mgr.State())
	require.Equal(t, session.RouteDashboard, ta.nav.CurrentRoute())

	tok, ok, err := ta.store.Get(context.Background(), config.StorageKey.AccessToken)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "new-access", tok)
}

func TestLoginRejectsNonAdmin(t *testing.T) {
	ta := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data": model.AuthResponse{
				AccessToken: "cust",
				User:        &model.User{ID: "c1", Role: model.RoleCustomer},
			},
		})
	}, false, routeFor("login"))
	ta.in = bufio.NewReader(strings.NewReader("s3cret-pass\n"))

	err := ta.dispatch(context.Background(), []string{"login", "cust@example.com"})
	require.ErrorIs(t, err, session.ErrAccessDenied)
	require.Zero(t, ta.store.Len())
}

func TestLogoutClearsStore(t *testing.T) {
	ta := newTestApp(t, func(http.ResponseWriter, *http.Request) {}, true, routeFor("logout"))

	require.NoError(t, ta.dispatch(context.Background(), []string{"logout"}))
	require.Zero(t, ta.store.Len())
	require.Contains(t, ta.stdout.String(), "Signed out.")
}

func TestDashboardRendersPartialFailure(t *testing.T) {
	ta := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/analytics/overview":
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    model.AnalyticsOverview{TotalUsers: 12, TotalSalons: 3, TotalRevenue: 1234.5},
			})
		case "/api/v1/bookings":
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "bookings down"})
		case "/api/v1/salons":
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    []model.Salon{{ID: "s9", Name: "Fresh Fade", City: "Reno"}},
			})
		default:
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    model.BadgeCounts{PendingSalons: 1},
			})
		}
	}, true, routeFor("dashboard"))

	require.NoError(t, ta.dispatch(context.Background(), []string{"dashboard"}))
	out := ta.stdout.String()
	require.Contains(t, out, "1234.50")
	require.Contains(t, out, "unavailable: bookings down")
	require.Contains(t, out, "Fresh Fade")
	require.Contains(t, out, "salons")
}

func TestBadgesOnce(t *testing.T) {
	ta := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/analytics/badges", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    model.BadgeCounts{PendingSalons: 2, PendingOrders: 5},
		})
	}, true, routeFor("badges"))

	require.NoError(t, ta.dispatch(context.Background(), []string{"badges"}))
	require.EqualValues(t, 1, ta.calls.Load())
	require.Contains(t, ta.stdout.String(), "orders")
	require.Contains(t, ta.stdout.String(), "5")
}
