package repositories

import (
	"context"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
)

// PlaylistReader defines read operations for playlists.
type PlaylistReader interface {
	FindPlaylistByID(ctx context.Context, playlistID string) (*domain.Playlist, error)
	FindPlaylistDetails(ctx context.Context, playlistID string) (*domain.PlaylistDetails, error)
	ListPlaylistsByOwner(ctx context.Context, ownerID string) ([]domain.Playlist, error)
}

// PlaylistWriter defines write operations for playlists.
type PlaylistWriter interface {
	// SavePlaylist persists a playlist. A duplicate name for the same owner yields apperrors.ErrDuplicate.
	SavePlaylist(ctx context.Context, playlist domain.Playlist) error
	UpdatePlaylist(ctx context.Context, playlistID, name, description string) (*domain.Playlist, error)
	DeletePlaylist(ctx context.Context, playlistID string) error

	// AddVideo appends a video. Returns apperrors.ErrDuplicate when already present.
	AddVideo(ctx context.Context, playlistID, videoID string) error

	// RemoveVideo removes a video. Returns apperrors.ErrNotFound when absent.
	RemoveVideo(ctx context.Context, playlistID, videoID string) error
}

// PlaylistRepositoryFacade combines all playlist repository interfaces
type PlaylistRepositoryFacade interface {
	PlaylistReader
	PlaylistWriter
}
