package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/SscSPs/videotube_backend/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	media    portssvc.MediaStorage
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, media portssvc.MediaStorage) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, media: media}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// RegisterUser creates a local account. Uploaded images are removed again if the user cannot be saved.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest, avatar domain.UploadFile, cover *domain.UploadFile) (*domain.User, error) {
	username := domain.NormalizeIdentifier(req.Username)
	email := domain.NormalizeIdentifier(req.Email)
	fullName := strings.TrimSpace(req.FullName)
	if username == "" || email == "" || fullName == "" || strings.TrimSpace(req.Password) == "" {
		return nil, apperrors.NewValidationError("All fields are required")
	}
	if avatar.Content == nil {
		return nil, apperrors.NewValidationError("Avatar file is required")
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("User with email or username already exists")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	avatarAsset, err := s.media.Upload(ctx, avatar)
	if err != nil {
		s.LogError(ctx, err, "Avatar upload failed")
		return nil, err
	}

	var coverAsset *domain.MediaAsset
	if cover != nil && cover.Content != nil {
		coverAsset, err = s.media.Upload(ctx, *cover)
		if err != nil {
			s.LogError(ctx, err, "Cover image upload failed")
			s.deleteAssetBestEffort(ctx, s.media, *avatarAsset)
			return nil, err
		}
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		FullName:     fullName,
		Avatar:       *avatarAsset,
		CoverImage:   coverAsset,
		AuthProvider: domain.ProviderLocal,
		PasswordHash: hash,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.deleteAssetBestEffort(ctx, s.media, *avatarAsset)
		if coverAsset != nil {
			s.deleteAssetBestEffort(ctx, s.media, *coverAsset)
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("User with email or username already exists")
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// GetUserByID retrieves a user without secret fields.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindPublicUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// GetChannelProfile retrieves a channel by username.
func (s *userService) GetChannelProfile(ctx context.Context, username string, viewerID string) (*domain.ChannelProfile, error) {
	username = domain.NormalizeIdentifier(username)
	if username == "" {
		return nil, apperrors.NewValidationError("username is missing")
	}
	profile, err := s.userRepo.FindChannelProfile(ctx, username, viewerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Channel does not exist")
		}
		return nil, fmt.Errorf("failed to get channel profile: %w", err)
	}
	return profile, nil
}

// UpdateAccountDetails changes email and/or full name. At least one must be provided.
func (s *userService) UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateAccountDetailsRequest) (*domain.User, error) {
	if req.Email == nil && req.FullName == nil {
		return nil, apperrors.NewValidationError("At least one field is required")
	}

	current, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	email := current.Email
	if req.Email != nil {
		email = domain.NormalizeIdentifier(*req.Email)
	}
	fullName := current.FullName
	if req.FullName != nil {
		fullName = strings.TrimSpace(*req.FullName)
	}
	if email == "" || fullName == "" {
		return nil, apperrors.NewValidationError("email and fullName cannot be empty")
	}

	updated, err := s.userRepo.UpdateAccountDetails(ctx, userID, email, fullName)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("Email is already in use")
		}
		return nil, fmt.Errorf("failed to update account details: %w", err)
	}
	return updated, nil
}

type imageUpdater func(ctx context.Context, userID string, asset domain.MediaAsset) (*domain.User, error)

// replaceImage uploads the new image, stores its reference and then deletes the old asset.
func (s *userService) replaceImage(ctx context.Context, userID string, file domain.UploadFile, old func(*domain.User) *domain.MediaAsset, update imageUpdater) (*domain.User, *domain.MediaDeleteResult, error) {
	if file.Content == nil {
		return nil, nil, apperrors.NewValidationError(file.FieldName + " file is missing")
	}

	current, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	asset, err := s.media.Upload(ctx, file)
	if err != nil {
		return nil, nil, err
	}

	updated, err := update(ctx, userID, *asset)
	if err != nil {
		s.deleteAssetBestEffort(ctx, s.media, *asset)
		return nil, nil, fmt.Errorf("failed to update %s: %w", file.FieldName, err)
	}

	var result *domain.MediaDeleteResult
	if prev := old(current); prev != nil {
		result = s.deleteAssetBestEffort(ctx, s.media, *prev)
	}
	return updated, result, nil
}

// UpdateAvatar replaces the avatar.
func (s *userService) UpdateAvatar(ctx context.Context, userID string, file domain.UploadFile) (*domain.User, *domain.MediaDeleteResult, error) {
	return s.replaceImage(ctx, userID, file, func(u *domain.User) *domain.MediaAsset {
		return &u.Avatar
	}, s.userRepo.UpdateAvatar)
}

// UpdateCoverImage replaces the cover image.
func (s *userService) UpdateCoverImage(ctx context.Context, userID string, file domain.UploadFile) (*domain.User, *domain.MediaDeleteResult, error) {
	return s.replaceImage(ctx, userID, file, func(u *domain.User) *domain.MediaAsset {
		return u.CoverImage
	}, s.userRepo.UpdateCoverImage)
}

// GetWatchHistory returns the caller's watched videos, newest first.
func (s *userService) GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchedVideo, error) {
	history, err := s.userRepo.ListWatchHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get watch history: %w", err)
	}
	if history == nil {
		history = []domain.WatchedVideo{}
	}
	return history, nil
}

// RemoveFromWatchHistory removes one video from the caller's history.
func (s *userService) RemoveFromWatchHistory(ctx context.Context, userID, videoID string) error {
	if err := s.userRepo.RemoveFromWatchHistory(ctx, userID, videoID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Video not found in watch history")
		}
		return fmt.Errorf("failed to remove from watch history: %w", err)
	}
	return nil
}

// ClearWatchHistory removes every entry from the caller's history.
func (s *userService) ClearWatchHistory(ctx context.Context, userID string) (int64, error) {
	n, err := s.userRepo.ClearWatchHistory(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear watch history: %w", err)
	}
	s.LogInfo(ctx, "Watch history cleared", slog.String("user_id", userID), slog.Int64("removed", n))
	return n, nil
}
