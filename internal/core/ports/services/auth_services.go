package services

import (
	"context"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	"github.com/SscSPs/videotube_backend/internal/dto"
)

// TokenIssuer mints signed tokens from an identity snapshot. It never stores anything.
type TokenIssuer interface {
	// IssueAccessToken embeds id, email, username and full name, signed with the access secret.
	IssueAccessToken(user *domain.User) (string, error)
	// IssueRefreshToken embeds the id only, signed with the refresh secret.
	IssueRefreshToken(user *domain.User) (string, error)
	// IssueTokenPair mints both tokens.
	IssueTokenPair(user *domain.User) (*domain.TokenPair, error)
}

// TokenVerifier checks signature and expiry. Failures wrap apperrors.ErrTokenExpired
// or apperrors.ErrInvalidSignature.
type TokenVerifier interface {
	VerifyAccessToken(token string) (*domain.AccessClaims, error)
	VerifyRefreshToken(token string) (*domain.RefreshClaims, error)
}

// TokenSvcFacade combines issuing and verification.
type TokenSvcFacade interface {
	TokenIssuer
	TokenVerifier
}

// SessionSvc drives the session lifecycle: login, refresh rotation, logout and secret change.
type SessionSvc interface {
	// Login resolves the identity by username or email and verifies the secret.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.LoginResult, error)

	// Refresh rotates the token pair. The incoming token must equal the stored one.
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)

	// Logout clears the stored refresh token.
	Logout(ctx context.Context, userID string) error

	// ChangeSecret verifies the old secret and stores a hash of the new one.
	ChangeSecret(ctx context.Context, userID string, req dto.ChangePasswordRequest) error

	// LoginWithGoogle exchanges a Google authorization code and signs the matching user in,
	// creating the account on first use.
	LoginWithGoogle(ctx context.Context, code string) (*domain.LoginResult, error)
}

// GoogleOAuthSvc defines the interface for Google OAuth operations.
type GoogleOAuthSvc interface {
	// ExchangeCode trades an authorization code for a verified identity.
	ExchangeCode(ctx context.Context, code string) (*domain.GoogleUserInfo, error)
}
