package services

import (
	"context"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	"github.com/SscSPs/videotube_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user without secret fields.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetChannelProfile retrieves a channel by username with counters relative to viewerID.
	GetChannelProfile(ctx context.Context, username string, viewerID string) (*domain.ChannelProfile, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser uploads the avatar (and optional cover image) and creates the user.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest, avatar domain.UploadFile, cover *domain.UploadFile) (*domain.User, error)

	// UpdateAccountDetails changes email and/or full name.
	UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateAccountDetailsRequest) (*domain.User, error)

	// UpdateAvatar replaces the avatar and deletes the previous asset best-effort.
	UpdateAvatar(ctx context.Context, userID string, file domain.UploadFile) (*domain.User, *domain.MediaDeleteResult, error)

	// UpdateCoverImage replaces the cover image and deletes the previous asset best-effort.
	UpdateCoverImage(ctx context.Context, userID string, file domain.UploadFile) (*domain.User, *domain.MediaDeleteResult, error)
}

// WatchHistorySvc defines operations on the caller's watch history.
type WatchHistorySvc interface {
	GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchedVideo, error)
	RemoveFromWatchHistory(ctx context.Context, userID, videoID string) error
	ClearWatchHistory(ctx context.Context, userID string) (int64, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	WatchHistorySvc
}
