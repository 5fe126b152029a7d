package repositories

import (
	"context"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
)

// UserCredentialStore is the persistence contract the session core depends on.
type UserCredentialStore interface {
	// FindUserByID loads the full user record, secret hash and stored refresh token included.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByLogin resolves a user by username or email. Empty identifiers never match.
	FindUserByLogin(ctx context.Context, username, email string) (*domain.User, error)

	// SetRefreshToken overwrites the stored session token. A nil token clears it.
	// It writes that single column and never re-hashes the secret.
	SetRefreshToken(ctx context.Context, userID string, token *string) error

	// UpdatePasswordHash stores a new secret hash. When clearSession is set the stored
	// refresh token is cleared in the same statement.
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, clearSession bool) error
}

// UserReader defines read operations for user data
type UserReader interface {
	// FindPublicUserByID loads a user without the secret hash and the refresh token.
	FindPublicUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail loads a user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProvider loads a user by an external identity provider subject.
	FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)

	// ExistsByUsernameOrEmail reports whether either identifier is taken.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// FindChannelProfile loads a channel by username with subscription counters relative to viewerID.
	FindChannelProfile(ctx context.Context, username string, viewerID string) (*domain.ChannelProfile, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Duplicate username or email yields apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateAccountDetails updates email and full name.
	UpdateAccountDetails(ctx context.Context, userID string, email, fullName string) (*domain.User, error)

	// UpdateAvatar replaces the avatar reference.
	UpdateAvatar(ctx context.Context, userID string, avatar domain.MediaAsset) (*domain.User, error)

	// UpdateCoverImage replaces the cover image reference.
	UpdateCoverImage(ctx context.Context, userID string, cover domain.MediaAsset) (*domain.User, error)
}

// WatchHistoryRepository defines operations on a user's ordered watch history.
type WatchHistoryRepository interface {
	// ListWatchHistory returns watched videos newest first, owners expanded.
	ListWatchHistory(ctx context.Context, userID string) ([]domain.WatchedVideo, error)

	// RemoveFromWatchHistory removes one video. Missing entries yield apperrors.ErrNotFound.
	RemoveFromWatchHistory(ctx context.Context, userID, videoID string) error

	// ClearWatchHistory removes every entry and returns how many were removed.
	ClearWatchHistory(ctx context.Context, userID string) (int64, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserCredentialStore
	UserReader
	UserWriter
	WatchHistoryRepository
}
