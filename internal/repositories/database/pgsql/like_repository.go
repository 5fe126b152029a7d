package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	"github.com/SscSPs/videotube_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLikeRepository struct {
	BaseRepository
}

func newPgxLikeRepository(db *pgxpool.Pool) portsrepo.LikeRepositoryFacade {
	return &PgxLikeRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.LikeRepositoryFacade = (*PgxLikeRepository)(nil)

// targetColumn returns the likes column for a target. Only these two literals are ever
// interpolated into SQL.
func targetColumn(target domain.LikeTarget) (string, error) {
	switch target {
	case domain.LikeTargetVideo:
		return "video_id", nil
	case domain.LikeTargetComment:
		return "comment_id", nil
	default:
		return "", fmt.Errorf("unknown like target %q: %w", target, apperrors.ErrValidation)
	}
}

func toDomainLike(m models.Like) domain.Like {
	like := domain.Like{
		LikeID:     m.LikeID,
		LikedBy:    m.LikedBy,
		Reaction:   domain.Reaction(m.Reaction),
		Timestamps: domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
	if m.VideoID.Valid {
		id := m.VideoID.String
		like.VideoID = &id
	}
	if m.CommentID.Valid {
		id := m.CommentID.String
		like.CommentID = &id
	}
	return like
}

// UpsertReaction relies on the partial unique indexes over (video_id, liked_by) and
// (comment_id, liked_by); xmax = 0 holds only for freshly inserted rows.
func (r *PgxLikeRepository) UpsertReaction(ctx context.Context, like domain.Like) (*domain.Like, bool, error) {
	target := domain.LikeTargetVideo
	if like.CommentID != nil {
		target = domain.LikeTargetComment
	}
	column, err := targetColumn(target)
	if err != nil {
		return nil, false, err
	}

	query := `
		INSERT INTO likes (id, video_id, comment_id, liked_by, reaction, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (` + column + `, liked_by) WHERE ` + column + ` IS NOT NULL
		DO UPDATE SET reaction = EXCLUDED.reaction, updated_at = EXCLUDED.updated_at
		RETURNING id, video_id, comment_id, liked_by, reaction, created_at, updated_at, (xmax = 0);
	`
	var m models.Like
	var created bool
	err = r.Pool.QueryRow(ctx, query,
		like.LikeID, like.VideoID, like.CommentID, like.LikedBy, string(like.Reaction), like.CreatedAt,
	).Scan(&m.LikeID, &m.VideoID, &m.CommentID, &m.LikedBy, &m.Reaction, &m.CreatedAt, &m.UpdatedAt, &created)
	if err != nil {
		return nil, false, mapPgError(err, "failed to upsert reaction")
	}
	saved := toDomainLike(m)
	return &saved, created, nil
}

func (r *PgxLikeRepository) DeleteReaction(ctx context.Context, target domain.LikeTarget, targetID, likedBy string) (bool, error) {
	column, err := targetColumn(target)
	if err != nil {
		return false, err
	}
	tag, err := r.Pool.Exec(ctx, `DELETE FROM likes WHERE `+column+` = $1 AND liked_by = $2`, targetID, likedBy)
	if err != nil {
		return false, fmt.Errorf("failed to delete reaction: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgxLikeRepository) ListLikedVideos(ctx context.Context, likedBy string) ([]domain.LikedVideo, error) {
	query := `
		SELECT ` + videoColumns + `, l.id, l.created_at, l.updated_at
		FROM likes l
		JOIN videos v ON v.id = l.video_id
		JOIN users o ON o.id = v.owner_id
		WHERE l.liked_by = $1 AND l.reaction = $2
		ORDER BY l.updated_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, likedBy, string(domain.ReactionLike))
	if err != nil {
		return nil, fmt.Errorf("failed to query liked videos: %w", err)
	}
	defer rows.Close()

	liked := []domain.LikedVideo{}
	for rows.Next() {
		var m models.Like
		video, err := scanVideo(rows, &m.LikeID, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan liked video row: %w", err)
		}
		liked = append(liked, domain.LikedVideo{
			LikeID:     m.LikeID,
			Video:      *video,
			Timestamps: domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating liked video rows: %w", rows.Err())
	}
	return liked, nil
}
