package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVideoRepository struct {
	BaseRepository
}

func newPgxVideoRepository(db *pgxpool.Pool) portsrepo.VideoRepositoryFacade {
	return &PgxVideoRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.VideoRepositoryFacade = (*PgxVideoRepository)(nil)

func (r *PgxVideoRepository) FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error) {
	query := `SELECT ` + videoColumns + ` ` + videoFrom + ` WHERE v.id = $1`
	video, err := scanVideo(r.Pool.QueryRow(ctx, query, videoID))
	if err != nil {
		return nil, mapPgError(err, "find video by id")
	}
	return video, nil
}

func (r *PgxVideoRepository) ListPublishedVideos(ctx context.Context) ([]domain.Video, error) {
	query := `SELECT ` + videoColumns + ` ` + videoFrom + ` WHERE v.is_published ORDER BY v.created_at DESC`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer rows.Close()

	videos := []domain.Video{}
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video row: %w", err)
		}
		videos = append(videos, *video)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating video rows: %w", rows.Err())
	}
	return videos, nil
}

func (r *PgxVideoRepository) SaveVideo(ctx context.Context, video domain.Video) error {
	query := `
		INSERT INTO videos (id, owner_id, title, description,
			video_url, video_public_id, video_resource_type,
			thumbnail_url, thumbnail_public_id, thumbnail_resource_type,
			duration, views, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		video.VideoID, video.OwnerID, video.Title, video.Description,
		video.VideoFile.URL, video.VideoFile.PublicID, string(domain.MediaKindVideo),
		video.Thumbnail.URL, video.Thumbnail.PublicID, string(domain.MediaKindImage),
		video.Duration, video.Views, video.IsPublished, video.CreatedAt, video.UpdatedAt,
	)
	return mapPgError(err, "failed to save video")
}

func (r *PgxVideoRepository) UpdateVideoDetails(ctx context.Context, video domain.Video) (*domain.Video, error) {
	query := `
		UPDATE videos
		SET title = $2, description = $3,
			thumbnail_url = $4, thumbnail_public_id = $5, thumbnail_resource_type = $6,
			updated_at = NOW()
		WHERE id = $1;
	`
	kind := video.Thumbnail.ResourceType
	if kind == "" {
		kind = domain.MediaKindImage
	}
	tag, err := r.Pool.Exec(ctx, query,
		video.VideoID, video.Title, video.Description,
		video.Thumbnail.URL, video.Thumbnail.PublicID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}
	if err := requireAffected(tag); err != nil {
		return nil, err
	}
	return r.FindVideoByID(ctx, video.VideoID)
}

func (r *PgxVideoRepository) SetPublished(ctx context.Context, videoID string, published bool) (*domain.Video, error) {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE videos SET is_published = $2, updated_at = NOW() WHERE id = $1`, videoID, published)
	if err != nil {
		return nil, fmt.Errorf("failed to set publish status: %w", err)
	}
	if err := requireAffected(tag); err != nil {
		return nil, err
	}
	return r.FindVideoByID(ctx, videoID)
}

func (r *PgxVideoRepository) RecordView(ctx context.Context, videoID string, viewerID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	tag, err := tx.Exec(ctx, `UPDATE videos SET views = views + 1 WHERE id = $1`, videoID)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	if err := requireAffected(tag); err != nil {
		return err
	}

	if viewerID != "" {
		query := `
			INSERT INTO watch_history (user_id, video_id, watched_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = EXCLUDED.watched_at;
		`
		if _, err := tx.Exec(ctx, query, viewerID, videoID); err != nil {
			return mapPgError(err, "failed to record watch history")
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxVideoRepository) DeleteVideo(ctx context.Context, videoID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, videoID)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	return requireAffected(tag)
}
