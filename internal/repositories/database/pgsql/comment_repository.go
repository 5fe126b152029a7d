package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	"github.com/SscSPs/videotube_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

const commentSelect = `
	SELECT c.id, c.video_id, c.owner_id, c.content, c.created_at, c.updated_at, ` + ownerColumns + `
	FROM comments c JOIN users o ON o.id = c.owner_id`

type PgxCommentRepository struct {
	BaseRepository
}

func newPgxCommentRepository(db *pgxpool.Pool) portsrepo.CommentRepositoryFacade {
	return &PgxCommentRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CommentRepositoryFacade = (*PgxCommentRepository)(nil)

func scanComment(row rowScanner) (*domain.Comment, error) {
	var m models.Comment
	var owner models.UserSummary
	dest := append([]any{&m.CommentID, &m.VideoID, &m.OwnerID, &m.Content, &m.CreatedAt, &m.UpdatedAt}, ownerDest(&owner)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &domain.Comment{
		CommentID:  m.CommentID,
		VideoID:    m.VideoID,
		OwnerID:    m.OwnerID,
		Content:    m.Content,
		Owner:      toDomainSummary(owner),
		Timestamps: domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}, nil
}

func (r *PgxCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	query := `
		INSERT INTO comments (id, video_id, owner_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		comment.CommentID, comment.VideoID, comment.OwnerID, comment.Content, comment.CreatedAt, comment.UpdatedAt)
	return mapPgError(err, "failed to save comment")
}

func (r *PgxCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	comment, err := scanComment(r.Pool.QueryRow(ctx, commentSelect+` WHERE c.id = $1`, commentID))
	if err != nil {
		return nil, mapPgError(err, "find comment by id")
	}
	return comment, nil
}

func (r *PgxCommentRepository) UpdateCommentContent(ctx context.Context, commentID, content string) (*domain.Comment, error) {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE comments SET content = $2, updated_at = NOW() WHERE id = $1`, commentID, content)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	if err := requireAffected(tag); err != nil {
		return nil, err
	}
	return r.FindCommentByID(ctx, commentID)
}

func (r *PgxCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return requireAffected(tag)
}

func (r *PgxCommentRepository) ListCommentsByVideo(ctx context.Context, videoID string) ([]domain.Comment, error) {
	rows, err := r.Pool.Query(ctx, commentSelect+` WHERE c.video_id = $1 ORDER BY c.created_at ASC`, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, *comment)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", rows.Err())
	}
	return comments, nil
}
