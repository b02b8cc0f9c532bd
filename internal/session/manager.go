package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/glowbook/admin-console/internal/config"
	"github.com/glowbook/admin-console/internal/metrics"
	"github.com/glowbook/admin-console/internal/model"
	"github.com/rs/zerolog"
)

// State is the authentication state of the console.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
)

// AccessDeniedMessage is shown when a non-admin account tries to sign in.
const AccessDeniedMessage = "Access denied. Admin privileges required."

var (
	// ErrAccessDenied is returned when the account is not an admin.
	ErrAccessDenied = errors.New(AccessDeniedMessage)
	// ErrNoRefreshToken is returned by RefreshToken when none is stored.
	ErrNoRefreshToken = errors.New("no refresh token stored")
	// ErrNotAuthenticated is returned when an operation needs a session.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// AuthAPI is the backend auth surface the manager drives.
type AuthAPI interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	Register(ctx context.Context, req *model.SignupRequest) (*model.MessageResponse, error)
	VerifyOTP(ctx context.Context, req *model.VerifyOTPRequest) (*model.MessageResponse, error)
	ResendOTP(ctx context.Context, req *model.ResendOTPRequest) (*model.MessageResponse, error)
	RefreshToken(ctx context.Context, req *model.RefreshTokenRequest) (*model.AuthResponse, error)
}

// Manager owns the console session: it persists tokens, answers token
// lookups for the API client and tears the session down on 401.
type Manager struct {
	store Store
	nav   Navigator
	auth  AuthAPI
	log   zerolog.Logger

	mu           sync.RWMutex
	state        State
	user         *model.User
	authRedirect bool
}

// NewManager creates a new Manager. Call UseAuth before Login, Signup or
// RefreshToken.
func NewManager(store Store, nav Navigator, log zerolog.Logger) *Manager {
	return &Manager{
		store: store,
		nav:   nav,
		log:   log.With().Str("component", "session").Logger(),
		state: StateAnonymous,
	}
}

// UseAuth binds the backend auth API. The API client depends on the manager
// for tokens, so the auth service is attached after both exist.
func (m *Manager) UseAuth(auth AuthAPI) {
	m.auth = auth
}

// State returns the current authentication state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// User returns a copy of the signed-in user, or nil.
func (m *Manager) User() *model.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Init restores the session from storage without any network call.
// A stored non-admin user clears storage and returns ErrAccessDenied.
func (m *Manager) Init(ctx context.Context) error {
	keys := config.StorageKey

	token, hasToken, err := m.store.Get(ctx, keys.AccessToken)
	if err != nil {
		return fmt.Errorf("load access token: %w", err)
	}
	rawUser, hasUser, err := m.store.Get(ctx, keys.User)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}

	if !hasToken || token == "" || !hasUser {
		m.setAnonymous()
		return nil
	}

	var user model.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		m.log.Warn().Err(err).Msg("Stored user is corrupt, clearing session")
		m.clear(ctx)
		m.setAnonymous()
		return nil
	}

	if !user.IsAdmin() {
		m.log.Warn().Str("role", string(user.Role)).Msg("Stored session is not an admin, clearing")
		m.clear(ctx)
		m.setAnonymous()
		return ErrAccessDenied
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.user = &user
	m.mu.Unlock()
	return nil
}

// Login authenticates against the backend, persists the session, reloads it
// from storage and navigates to the dashboard. Non-admin accounts are
// rejected with ErrAccessDenied and nothing is persisted.
func (m *Manager) Login(ctx context.Context, identifier, password string) (*model.User, error) {
	m.mu.Lock()
	m.state = StateAuthenticating
	m.mu.Unlock()

	resp, err := m.auth.Login(ctx, &model.LoginRequest{Identifier: identifier, Password: password})
	if err != nil {
		m.setAnonymous()
		return nil, err
	}

	if resp == nil || !resp.User.IsAdmin() {
		m.setAnonymous()
		return nil, ErrAccessDenied
	}
	if resp.AccessToken == "" {
		m.setAnonymous()
		return nil, errors.New("login response has no access token")
	}

	// A previous account's refresh token must not outlive this login.
	if err := m.store.Delete(ctx, config.StorageKey.SessionKeys()...); err != nil {
		m.setAnonymous()
		return nil, fmt.Errorf("clear previous session: %w", err)
	}
	if err := m.persist(ctx, resp); err != nil {
		m.clear(ctx)
		m.setAnonymous()
		return nil, err
	}

	m.mu.Lock()
	m.authRedirect = false
	m.mu.Unlock()

	if err := m.Init(ctx); err != nil {
		return nil, err
	}
	if m.State() != StateAuthenticated {
		return nil, ErrNotAuthenticated
	}

	m.log.Info().Str("user_id", resp.User.ID).Msg("Admin signed in")
	m.nav.Navigate(RouteDashboard)
	return m.User(), nil
}

// Signup registers a new console account. The role is always admin and no
// session is established until the OTP is verified and the user signs in.
func (m *Manager) Signup(ctx context.Context, req model.SignupRequest) (*model.MessageResponse, error) {
	req.Role = model.RoleAdmin
	return m.auth.Register(ctx, &req)
}

// VerifyOTP confirms a registration and sends the user to the login route.
func (m *Manager) VerifyOTP(ctx context.Context, email, code string) (*model.MessageResponse, error) {
	resp, err := m.auth.VerifyOTP(ctx, &model.VerifyOTPRequest{Email: email, OTP: code})
	if err != nil {
		return nil, err
	}
	m.nav.Navigate(RouteLogin)
	return resp, nil
}

// ResendOTP asks the backend to email a new verification code.
func (m *Manager) ResendOTP(ctx context.Context, email string) (*model.MessageResponse, error) {
	return m.auth.ResendOTP(ctx, &model.ResendOTPRequest{Email: email})
}

// Logout clears every stored session field and navigates to the login
// route. It is safe to call repeatedly.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.store.Delete(ctx, config.StorageKey.SessionKeys()...)
	m.setAnonymous()
	m.nav.Navigate(RouteLogin)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// RefreshToken exchanges the stored refresh token for a new access token.
// Any failure logs the user out.
func (m *Manager) RefreshToken(ctx context.Context) error {
	refresh, ok, err := m.store.Get(ctx, config.StorageKey.RefreshToken)
	if err == nil && (!ok || refresh == "") {
		err = ErrNoRefreshToken
	}
	if err != nil {
		_ = m.Logout(ctx)
		return err
	}

	resp, err := m.auth.RefreshToken(ctx, &model.RefreshTokenRequest{RefreshToken: refresh})
	if err == nil && (resp == nil || resp.AccessToken == "") {
		err = errors.New("refresh response has no access token")
	}
	if err == nil {
		err = m.persist(ctx, resp)
	}
	if err != nil {
		m.log.Warn().Err(err).Msg("Token refresh failed, signing out")
		_ = m.Logout(ctx)
		return err
	}

	m.log.Debug().Msg("Access token refreshed")
	return nil
}

// HandleUnauthorized tears the session down after a 401. Storage is always
// cleared; navigation to the login route is skipped when already there.
func (m *Manager) HandleUnauthorized(ctx context.Context) {
	metrics.SessionInvalidationsTotal.Inc()
	m.clear(ctx)

	onLogin := m.nav.CurrentRoute() == RouteLogin

	m.mu.Lock()
	m.state = StateAnonymous
	m.user = nil
	if !onLogin {
		m.authRedirect = true
	}
	m.mu.Unlock()

	if onLogin {
		return
	}
	m.log.Warn().Msg("Session rejected by backend, redirecting to login")
	m.nav.Navigate(RouteLogin)
}

// SessionExpired reports, once, whether the last redirect to login was
// caused by a 401.
func (m *Manager) SessionExpired() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	expired := m.authRedirect
	m.authRedirect = false
	return expired
}

// AccessToken reads the bearer token from storage on every call.
func (m *Manager) AccessToken(ctx context.Context) (string, error) {
	token, _, err := m.store.Get(ctx, config.StorageKey.AccessToken)
	return token, err
}

// ExpiresAt returns the exp claim of the stored access token.
func (m *Manager) ExpiresAt(ctx context.Context) (time.Time, error) {
	token, err := m.AccessToken(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if token == "" {
		return time.Time{}, ErrNotAuthenticated
	}
	return TokenExpiry(token)
}

// NeedsRefresh reports whether the stored access token expires within skew.
// Tokens without a readable expiry never need a refresh.
func (m *Manager) NeedsRefresh(ctx context.Context, skew time.Duration) bool {
	exp, err := m.ExpiresAt(ctx)
	if err != nil {
		return false
	}
	return time.Until(exp) < skew
}

func (m *Manager) persist(ctx context.Context, resp *model.AuthResponse) error {
	keys := config.StorageKey

	if err := m.store.Set(ctx, keys.AccessToken, resp.AccessToken); err != nil {
		return fmt.Errorf("store access token: %w", err)
	}
	if resp.RefreshToken != "" {
		if err := m.store.Set(ctx, keys.RefreshToken, resp.RefreshToken); err != nil {
			return fmt.Errorf("store refresh token: %w", err)
		}
	}
	if resp.User != nil {
		raw, err := json.Marshal(resp.User)
		if err != nil {
			return fmt.Errorf("encode user: %w", err)
		}
		if err := m.store.Set(ctx, keys.User, string(raw)); err != nil {
			return fmt.Errorf("store user: %w", err)
		}
	}
	return nil
}

func (m *Manager) clear(ctx context.Context) {
	if err := m.store.Delete(ctx, config.StorageKey.SessionKeys()...); err != nil {
		m.log.Error().Err(err).Msg("Failed to clear session storage")
	}
}

func (m *Manager) setAnonymous() {
	m.mu.Lock()
	m.state = StateAnonymous
	m.user = nil
	m.mu.Unlock()
}
