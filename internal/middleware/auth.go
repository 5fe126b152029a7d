package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// Cookie names carrying the session tokens.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// UserFinder loads a user without the secret hash and the stored refresh token.
type UserFinder interface {
	FindPublicUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// extractAccessToken reads the access token from the cookie or the Authorization header.
func extractAccessToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// authenticate verifies the token and loads the identity it names.
func authenticate(c *gin.Context, verifier portssvc.TokenVerifier, users UserFinder) (*domain.User, error) {
	token := extractAccessToken(c)
	if token == "" {
		return nil, apperrors.NewUnauthorizedError("Unauthorized request")
	}

	claims, err := verifier.VerifyAccessToken(token)
	if err != nil {
		msg := "Invalid access token"
		if errors.Is(err, apperrors.ErrTokenExpired) {
			msg = "Access token has expired"
		}
		return nil, apperrors.NewAppError(http.StatusUnauthorized, msg, err)
	}

	user, err := users.FindPublicUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid access token")
		}
		return nil, err
	}
	return user, nil
}

func attachUser(c *gin.Context, user *domain.User) {
	ctx := withUser(c.Request.Context(), user)
	enrichedLogger := GetLoggerFromCtx(ctx).With(slog.String("user_id", user.UserID))
	c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))
}

// AuthMiddleware guards a route: the request proceeds only with a valid access token whose
// user still exists. The stored refresh token is never consulted.
func AuthMiddleware(verifier portssvc.TokenVerifier, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		user, err := authenticate(c, verifier, users)
		if err != nil {
			status, msg := apperrors.StatusFor(err)
			if status >= http.StatusInternalServerError {
				logger.Error("Failed to load authenticated user", slog.String("error", err.Error()))
			} else {
				logger.Warn("Request rejected by auth gate", slog.String("reason", err.Error()))
			}
			c.AbortWithStatusJSON(status, dto.NewErrorResponse(status, msg))
			return
		}

		attachUser(c, user)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the identity when a valid access token is present
// and lets anonymous requests through.
func OptionalAuthMiddleware(verifier portssvc.TokenVerifier, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if extractAccessToken(c) == "" {
			c.Next()
			return
		}
		user, err := authenticate(c, verifier, users)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Debug("Ignoring invalid optional credentials", slog.String("reason", err.Error()))
			c.Next()
			return
		}
		attachUser(c, user)
		c.Next()
	}
}
