package service

import (
	"context"
	"net/http"

	"github.com/glowbook/admin-console/internal/apiclient"
	"github.com/glowbook/admin-console/internal/model"
	"github.com/glowbook/admin-console/internal/validator"
)

// AuthService calls the backend's /auth endpoints. None of them send the
// stored bearer token.
type AuthService struct {
	client Doer
}

// NewAuthService creates a new AuthService.
func NewAuthService(client Doer) *AuthService {
	return &AuthService{client: client}
}

func public(p string, body interface{}) *apiclient.Request {
	return &apiclient.Request{Method: http.MethodPost, Path: p, Body: body}
}

// Login authenticates with an email or phone number and password.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	return fetch[model.AuthResponse](ctx, s.client, public(path("auth", "login"), req))
}

// Register creates an account and triggers the OTP email.
func (s *AuthService) Register(ctx context.Context, req *model.SignupRequest) (*model.MessageResponse, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	return acknowledge(ctx, s.client, public(path("auth", "register"), req))
}

// VerifyOTP confirms a registration.
func (s *AuthService) VerifyOTP(ctx context.Context, req *model.VerifyOTPRequest) (*model.MessageResponse, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	return acknowledge(ctx, s.client, public(path("auth", "verify-otp"), req))
}

// ResendOTP emails a fresh verification code.
func (s *AuthService) ResendOTP(ctx context.Context, req *model.ResendOTPRequest) (*model.MessageResponse, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	return acknowledge(ctx, s.client, public(path("auth", "resend-otp"), req))
}

// RefreshToken exchanges a refresh token for a new access token.
func (s *AuthService) RefreshToken(ctx context.Context, req *model.RefreshTokenRequest) (*model.AuthResponse, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	return fetch[model.AuthResponse](ctx, s.client, public(path("auth", "refresh-token"), req))
}
