package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	"github.com/SscSPs/videotube_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// playlistSelect carries the video ids in insertion order next to the owner summary.
const playlistSelect = `
	SELECT p.id, p.owner_id, p.name, p.description, p.created_at, p.updated_at,
		COALESCE((SELECT array_agg(pv.video_id::text ORDER BY pv.added_at, pv.video_id)
			FROM playlist_videos pv WHERE pv.playlist_id = p.id), '{}'::text[]),
		` + ownerColumns + `
	FROM playlists p JOIN users o ON o.id = p.owner_id`

type PgxPlaylistRepository struct {
	BaseRepository
}

func newPgxPlaylistRepository(db *pgxpool.Pool) portsrepo.PlaylistRepositoryFacade {
	return &PgxPlaylistRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.PlaylistRepositoryFacade = (*PgxPlaylistRepository)(nil)

func scanPlaylist(row rowScanner) (*domain.Playlist, error) {
	var m models.Playlist
	var owner models.UserSummary
	var videoIDs []string
	dest := append([]any{&m.PlaylistID, &m.OwnerID, &m.Name, &m.Description, &m.CreatedAt, &m.UpdatedAt, &videoIDs},
		ownerDest(&owner)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if videoIDs == nil {
		videoIDs = []string{}
	}
	return &domain.Playlist{
		PlaylistID:  m.PlaylistID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		VideoIDs:    videoIDs,
		Owner:       toDomainSummary(owner),
		Timestamps:  domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}, nil
}

func (r *PgxPlaylistRepository) FindPlaylistByID(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	playlist, err := scanPlaylist(r.Pool.QueryRow(ctx, playlistSelect+` WHERE p.id = $1`, playlistID))
	if err != nil {
		return nil, mapPgError(err, "find playlist by id")
	}
	return playlist, nil
}

func (r *PgxPlaylistRepository) FindPlaylistDetails(ctx context.Context, playlistID string) (*domain.PlaylistDetails, error) {
	playlist, err := r.FindPlaylistByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT ` + videoColumns + `
		FROM playlist_videos pv
		JOIN videos v ON v.id = pv.video_id
		JOIN users o ON o.id = v.owner_id
		WHERE pv.playlist_id = $1
		ORDER BY pv.added_at, pv.video_id;
	`
	rows, err := r.Pool.Query(ctx, query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist videos: %w", err)
	}
	defer rows.Close()

	details := &domain.PlaylistDetails{Playlist: *playlist, Videos: []domain.Video{}}
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan playlist video row: %w", err)
		}
		details.Videos = append(details.Videos, *video)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating playlist video rows: %w", rows.Err())
	}
	return details, nil
}

func (r *PgxPlaylistRepository) ListPlaylistsByOwner(ctx context.Context, ownerID string) ([]domain.Playlist, error) {
	rows, err := r.Pool.Query(ctx, playlistSelect+` WHERE p.owner_id = $1 ORDER BY p.created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}
	defer rows.Close()

	playlists := []domain.Playlist{}
	for rows.Next() {
		playlist, err := scanPlaylist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan playlist row: %w", err)
		}
		playlists = append(playlists, *playlist)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating playlist rows: %w", rows.Err())
	}
	return playlists, nil
}

func (r *PgxPlaylistRepository) SavePlaylist(ctx context.Context, playlist domain.Playlist) error {
	query := `
		INSERT INTO playlists (id, owner_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		playlist.PlaylistID, playlist.OwnerID, playlist.Name, playlist.Description, playlist.CreatedAt, playlist.UpdatedAt)
	return mapPgError(err, "failed to save playlist")
}

func (r *PgxPlaylistRepository) UpdatePlaylist(ctx context.Context, playlistID, name, description string) (*domain.Playlist, error) {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE playlists SET name = $2, description = $3, updated_at = NOW() WHERE id = $1`,
		playlistID, name, description)
	if err != nil {
		return nil, mapPgError(err, "failed to update playlist")
	}
	if err := requireAffected(tag); err != nil {
		return nil, err
	}
	return r.FindPlaylistByID(ctx, playlistID)
}

func (r *PgxPlaylistRepository) DeletePlaylist(ctx context.Context, playlistID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, playlistID)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	return requireAffected(tag)
}

func (r *PgxPlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx,
		`INSERT INTO playlist_videos (playlist_id, video_id, added_at) VALUES ($1, $2, clock_timestamp())`,
		playlistID, videoID); err != nil {
		return mapPgError(err, "failed to add video to playlist")
	}
	if _, err := tx.Exec(ctx, `UPDATE playlists SET updated_at = NOW() WHERE id = $1`, playlistID); err != nil {
		return fmt.Errorf("failed to touch playlist: %w", err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxPlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2`, playlistID, videoID)
	if err != nil {
		return fmt.Errorf("failed to remove video from playlist: %w", err)
	}
	if err := requireAffected(tag); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `UPDATE playlists SET updated_at = NOW() WHERE id = $1`, playlistID); err != nil {
		return fmt.Errorf("failed to touch playlist: %w", err)
	}
	return r.Commit(ctx, tx)
}
