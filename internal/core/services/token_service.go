package services

import (
	"fmt"
	"time"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/platform/config"
	"github.com/SscSPs/videotube_backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenService mints and verifies access and refresh tokens. Each kind has its own secret
// and expiry; nothing is stored here.
type tokenService struct {
	cfg *config.Config
	now func() time.Time
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, now: time.Now}
}

func (s *tokenService) registeredClaims(userID string, ttl time.Duration) jwt.RegisteredClaims {
	now := s.now()
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    s.cfg.JWTIssuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

// IssueAccessToken creates a new access token for the given user.
func (s *tokenService) IssueAccessToken(user *domain.User) (string, error) {
	claims := domain.AccessClaims{
		UserID:           user.UserID,
		Email:            user.Email,
		Username:         user.Username,
		FullName:         user.FullName,
		RegisteredClaims: s.registeredClaims(user.UserID, s.cfg.AccessTokenExpiry),
	}
	token, err := utils.SignJWT(claims, s.cfg.AccessTokenSecret)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}
	return token, nil
}

// IssueRefreshToken creates a new refresh token for the given user.
func (s *tokenService) IssueRefreshToken(user *domain.User) (string, error) {
	claims := domain.RefreshClaims{
		UserID:           user.UserID,
		RegisteredClaims: s.registeredClaims(user.UserID, s.cfg.RefreshTokenExpiry),
	}
	token, err := utils.SignJWT(claims, s.cfg.RefreshTokenSecret)
	if err != nil {
		return "", fmt.Errorf("failed to issue refresh token: %w", err)
	}
	return token, nil
}

// IssueTokenPair mints both tokens for the user.
func (s *tokenService) IssueTokenPair(user *domain.User) (*domain.TokenPair, error) {
	access, err := s.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.IssueRefreshToken(user)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccessToken checks an access token against the access secret.
func (s *tokenService) VerifyAccessToken(token string) (*domain.AccessClaims, error) {
	claims := &domain.AccessClaims{}
	if err := utils.ParseAndValidateJWT(token, s.cfg.AccessTokenSecret, s.cfg.JWTIssuer, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// VerifyRefreshToken checks a refresh token against the refresh secret.
func (s *tokenService) VerifyRefreshToken(token string) (*domain.RefreshClaims, error) {
	claims := &domain.RefreshClaims{}
	if err := utils.ParseAndValidateJWT(token, s.cfg.RefreshTokenSecret, s.cfg.JWTIssuer, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
