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
	"github.com/google/uuid"
)

type playlistService struct {
	BaseService
	playlistRepo portsrepo.PlaylistRepositoryFacade
}

// NewPlaylistService creates a new playlist service.
func NewPlaylistService(playlistRepo portsrepo.PlaylistRepositoryFacade) portssvc.PlaylistSvcFacade {
	return &playlistService{playlistRepo: playlistRepo}
}

var _ portssvc.PlaylistSvcFacade = (*playlistService)(nil)

func (s *playlistService) findPlaylist(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	playlist, err := s.playlistRepo.FindPlaylistByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Playlist not found")
		}
		return nil, fmt.Errorf("failed to get playlist: %w", err)
	}
	return playlist, nil
}

func (s *playlistService) findOwnPlaylist(ctx context.Context, playlistID, userID string) (*domain.Playlist, error) {
	playlist, err := s.findPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, playlist.OwnerID, userID, "playlist"); err != nil {
		return nil, err
	}
	return playlist, nil
}

// CreatePlaylist creates an empty playlist. Names are unique per owner.
func (s *playlistService) CreatePlaylist(ctx context.Context, ownerID string, req dto.CreatePlaylistRequest) (*domain.Playlist, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("Playlist name is required")
	}

	now := time.Now().UTC()
	playlist := domain.Playlist{
		PlaylistID:  uuid.NewString(),
		OwnerID:     ownerID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		VideoIDs:    []string{},
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.playlistRepo.SavePlaylist(ctx, playlist); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("Playlist with this name already exists")
		}
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}
	s.LogInfo(ctx, "Playlist created", slog.String("playlist_id", playlist.PlaylistID))
	return &playlist, nil
}

// GetUserPlaylists lists the playlists owned by userID.
func (s *playlistService) GetUserPlaylists(ctx context.Context, userID string) ([]domain.Playlist, error) {
	playlists, err := s.playlistRepo.ListPlaylistsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	if playlists == nil {
		playlists = []domain.Playlist{}
	}
	return playlists, nil
}

// GetPlaylistByID returns a playlist with its videos and owner expanded.
func (s *playlistService) GetPlaylistByID(ctx context.Context, playlistID string) (*domain.PlaylistDetails, error) {
	details, err := s.playlistRepo.FindPlaylistDetails(ctx, playlistID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Playlist not found")
		}
		return nil, fmt.Errorf("failed to get playlist: %w", err)
	}
	return details, nil
}

// UpdatePlaylist renames a playlist and optionally changes its description.
func (s *playlistService) UpdatePlaylist(ctx context.Context, playlistID, userID string, req dto.UpdatePlaylistRequest) (*domain.Playlist, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("Playlist name is required")
	}
	current, err := s.findOwnPlaylist(ctx, playlistID, userID)
	if err != nil {
		return nil, err
	}

	description := current.Description
	if req.Description != nil {
		description = strings.TrimSpace(*req.Description)
	}

	updated, err := s.playlistRepo.UpdatePlaylist(ctx, playlistID, name, description)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("Playlist with this name already exists")
		}
		return nil, fmt.Errorf("failed to update playlist: %w", err)
	}
	return updated, nil
}

// DeletePlaylist removes a playlist and returns it.
func (s *playlistService) DeletePlaylist(ctx context.Context, playlistID, userID string) (*domain.Playlist, error) {
	playlist, err := s.findOwnPlaylist(ctx, playlistID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.playlistRepo.DeletePlaylist(ctx, playlistID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Playlist not found")
		}
		return nil, fmt.Errorf("failed to delete playlist: %w", err)
	}
	return playlist, nil
}

// AddVideoToPlaylist appends a video. Adding a video twice is a client error.
func (s *playlistService) AddVideoToPlaylist(ctx context.Context, playlistID, videoID, userID string) (*domain.Playlist, error) {
	if _, err := s.findOwnPlaylist(ctx, playlistID, userID); err != nil {
		return nil, err
	}
	if err := s.playlistRepo.AddVideo(ctx, playlistID, videoID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			return nil, apperrors.NewValidationError("Video is already in the playlist")
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, apperrors.NewNotFoundError("Video not found")
		}
		return nil, fmt.Errorf("failed to add video to playlist: %w", err)
	}
	return s.findPlaylist(ctx, playlistID)
}

// RemoveVideoFromPlaylist removes a video. Removing an absent video is a client error.
func (s *playlistService) RemoveVideoFromPlaylist(ctx context.Context, playlistID, videoID, userID string) (*domain.Playlist, error) {
	if _, err := s.findOwnPlaylist(ctx, playlistID, userID); err != nil {
		return nil, err
	}
	if err := s.playlistRepo.RemoveVideo(ctx, playlistID, videoID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("Video is not in the playlist")
		}
		return nil, fmt.Errorf("failed to remove video from playlist: %w", err)
	}
	return s.findPlaylist(ctx, playlistID)
}
