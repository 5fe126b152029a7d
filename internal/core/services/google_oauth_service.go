package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// googleOAuthService implements portssvc.GoogleOAuthSvc.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config

	// swapped in tests
	exchange func(ctx context.Context, code string) (*oauth2.Token, error)
	validate func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvc {
	s := &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		validate: idtoken.Validate,
	}
	s.exchange = func(ctx context.Context, code string) (*oauth2.Token, error) {
		return s.oauth2Config.Exchange(ctx, code)
	}
	return s
}

// ExchangeCode trades the authorization code for Google tokens and validates the returned ID token.
func (s *googleOAuthService) ExchangeCode(ctx context.Context, code string) (*domain.GoogleUserInfo, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, apperrors.NewAppError(http.StatusServiceUnavailable, "Google sign-in is not configured", nil)
	}

	token, err := s.exchange(ctx, code)
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "invalid_grant") || strings.Contains(msg, "bad request") {
			return nil, apperrors.NewValidationError("Invalid or expired authorization code")
		}
		return nil, apperrors.NewAppError(http.StatusGatewayTimeout, "Failed to communicate with Google", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, apperrors.NewAppError(http.StatusBadGateway, "Google did not return an ID token", errors.New("id_token missing"))
	}

	payload, err := s.validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "Invalid Google ID token", fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err))
	}

	info := &domain.GoogleUserInfo{ID: payload.Subject}
	info.Email, _ = payload.Claims["email"].(string)
	info.Name, _ = payload.Claims["name"].(string)
	info.Picture, _ = payload.Claims["picture"].(string)
	info.VerifiedEmail, _ = payload.Claims["email_verified"].(bool)

	if info.ID == "" || info.Email == "" {
		return nil, apperrors.NewAppError(http.StatusBadGateway, "Essential user information missing from Google token", nil)
	}
	return info, nil
}
