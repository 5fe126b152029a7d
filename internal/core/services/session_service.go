package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/SscSPs/videotube_backend/internal/platform/config"
	"github.com/SscSPs/videotube_backend/internal/utils"
	"github.com/google/uuid"
)

// sessionService walks a user through Anonymous -> Authenticated (-> Refreshed)* -> LoggedOut.
// The stored refresh token digest on the user record is the only session state.
type sessionService struct {
	BaseService
	users  portsrepo.UserRepositoryFacade
	tokens portssvc.TokenSvcFacade
	google portssvc.GoogleOAuthSvc
	cfg    *config.Config
}

// SessionServiceOption is a function that configures a sessionService
type SessionServiceOption func(*sessionService)

// WithGoogleOAuth enables sign-in with Google.
func WithGoogleOAuth(google portssvc.GoogleOAuthSvc) SessionServiceOption {
	return func(s *sessionService) {
		s.google = google
	}
}

// NewSessionService creates a new session service.
func NewSessionService(cfg *config.Config, users portsrepo.UserRepositoryFacade, tokens portssvc.TokenSvcFacade, opts ...SessionServiceOption) portssvc.SessionSvc {
	s := &sessionService{users: users, tokens: tokens, cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func invalidRefreshToken(cause error) error {
	if cause == nil {
		return apperrors.NewAppError(http.StatusUnauthorized, "Refresh token is expired or used", apperrors.ErrInvalidToken)
	}
	return apperrors.NewAppError(http.StatusUnauthorized, "Invalid refresh token", fmt.Errorf("%w: %w", apperrors.ErrInvalidToken, cause))
}

// issueAndStore mints a new pair and overwrites the stored refresh token digest.
func (s *sessionService) issueAndStore(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	pair, err := s.tokens.IssueTokenPair(user)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue token pair", slog.String("user_id", user.UserID))
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "Something went wrong while generating tokens", err)
	}
	digest := utils.HashRefreshToken(pair.RefreshToken)
	if err := s.users.SetRefreshToken(ctx, user.UserID, &digest); err != nil {
		s.LogError(ctx, err, "Failed to persist refresh token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}
	return pair, nil
}

// Login verifies credentials and starts a session.
func (s *sessionService) Login(ctx context.Context, req dto.LoginRequest) (*domain.LoginResult, error) {
	username := domain.NormalizeIdentifier(req.Username)
	email := domain.NormalizeIdentifier(req.Email)
	if username == "" && email == "" {
		return nil, apperrors.NewValidationError("username or email is required")
	}

	user, err := s.users.FindUserByLogin(ctx, username, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User does not exist")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogInfo(ctx, "Login rejected: invalid credentials", slog.String("user_id", user.UserID))
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "Invalid user credentials", apperrors.ErrInvalidCredentials)
	}

	pair, err := s.issueAndStore(ctx, user)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return &domain.LoginResult{User: user.Sanitized(), TokenPair: *pair}, nil
}

// Refresh rotates the pair. Only the currently stored token is accepted, so a rotated-out
// or logged-out token fails.
func (s *sessionService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil, apperrors.NewUnauthorizedError("Unauthorized request")
	}

	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, invalidRefreshToken(err)
	}

	user, err := s.users.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, invalidRefreshToken(err)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.RefreshToken == nil || !utils.CompareRefreshTokenHash(refreshToken, *user.RefreshToken) {
		s.LogInfo(ctx, "Refresh rejected: token does not match stored token", slog.String("user_id", user.UserID))
		return nil, invalidRefreshToken(nil)
	}

	return s.issueAndStore(ctx, user)
}

// Logout clears the stored refresh token.
func (s *sessionService) Logout(ctx context.Context, userID string) error {
	if err := s.users.SetRefreshToken(ctx, userID, nil); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	s.LogInfo(ctx, "User logged out", slog.String("user_id", userID))
	return nil
}

// ChangeSecret replaces the password after verifying the old one. The stored refresh token
// is cleared only when the configuration asks for it.
func (s *sessionService) ChangeSecret(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	if strings.TrimSpace(req.NewPassword) == "" {
		return apperrors.NewValidationError("new password is required")
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return apperrors.NewAppError(http.StatusUnauthorized, "Invalid old password", apperrors.ErrInvalidCredentials)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	revoke := s.cfg != nil && s.cfg.RevokeSessionsOnPasswordChange
	if err := s.users.UpdatePasswordHash(ctx, userID, hash, revoke); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.LogInfo(ctx, "Password changed", slog.String("user_id", userID), slog.Bool("sessions_revoked", revoke))
	return nil
}

// LoginWithGoogle signs a Google identity in, creating the user on first use.
func (s *sessionService) LoginWithGoogle(ctx context.Context, code string) (*domain.LoginResult, error) {
	if s.google == nil {
		return nil, apperrors.NewAppError(http.StatusServiceUnavailable, "Google sign-in is not configured", nil)
	}

	info, err := s.google.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	user, err := s.resolveGoogleUser(ctx, info)
	if err != nil {
		return nil, err
	}

	pair, err := s.issueAndStore(ctx, user)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User logged in with Google", slog.String("user_id", user.UserID))
	return &domain.LoginResult{User: user.Sanitized(), TokenPair: *pair}, nil
}

func (s *sessionService) resolveGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	user, err := s.users.FindUserByProvider(ctx, domain.ProviderGoogle, info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	email := domain.NormalizeIdentifier(info.Email)
	existing, err := s.users.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		if !info.VerifiedEmail {
			return nil, apperrors.NewConflictError("An account with this email already exists")
		}
		return existing, nil
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	username, err := s.availableUsername(ctx, email)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	providerID := info.ID
	fullName := strings.TrimSpace(info.Name)
	if fullName == "" {
		fullName = username
	}
	newUser := domain.User{
		UserID:         uuid.NewString(),
		Username:       username,
		Email:          email,
		FullName:       fullName,
		Avatar:         domain.MediaAsset{URL: info.Picture, ResourceType: domain.MediaKindImage},
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: &providerID,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.users.SaveUser(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create google user: %w", err)
	}
	s.LogInfo(ctx, "Created user from Google sign-in", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}

// availableUsername derives a username from the email local part, adding a random suffix when taken.
func (s *sessionService) availableUsername(ctx context.Context, email string) (string, error) {
	base, _, _ := strings.Cut(email, "@")
	if base == "" {
		base = "user"
	}
	candidate := base
	for attempt := 0; attempt < 5; attempt++ {
		taken, err := s.users.ExistsByUsernameOrEmail(ctx, candidate, "")
		if err != nil {
			return "", fmt.Errorf("failed to check username: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		suffix, err := utils.RandomHex(3)
		if err != nil {
			return "", err
		}
		candidate = base + "_" + suffix
	}
	return "", apperrors.NewConflictError("Could not allocate a username")
}
