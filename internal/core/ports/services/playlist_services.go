package services

import (
	"context"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	"github.com/SscSPs/videotube_backend/internal/dto"
)

// PlaylistReaderSvc defines read operations for playlists.
type PlaylistReaderSvc interface {
	GetUserPlaylists(ctx context.Context, userID string) ([]domain.Playlist, error)
	GetPlaylistByID(ctx context.Context, playlistID string) (*domain.PlaylistDetails, error)
}

// PlaylistWriterSvc defines write operations for playlists. Mutations are restricted to the owner.
type PlaylistWriterSvc interface {
	CreatePlaylist(ctx context.Context, ownerID string, req dto.CreatePlaylistRequest) (*domain.Playlist, error)
	UpdatePlaylist(ctx context.Context, playlistID, userID string, req dto.UpdatePlaylistRequest) (*domain.Playlist, error)
	DeletePlaylist(ctx context.Context, playlistID, userID string) (*domain.Playlist, error)
	AddVideoToPlaylist(ctx context.Context, playlistID, videoID, userID string) (*domain.Playlist, error)
	RemoveVideoFromPlaylist(ctx context.Context, playlistID, videoID, userID string) (*domain.Playlist, error)
}

// PlaylistSvcFacade combines all playlist service interfaces
type PlaylistSvcFacade interface {
	PlaylistReaderSvc
	PlaylistWriterSvc
}
