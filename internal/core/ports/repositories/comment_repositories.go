package repositories

import (
	"context"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
)

// CommentRepositoryFacade defines persistence for comments.
type CommentRepositoryFacade interface {
	SaveComment(ctx context.Context, comment domain.Comment) error
	FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error)
	UpdateCommentContent(ctx context.Context, commentID, content string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error

	// ListCommentsByVideo returns a video's comments oldest first, owners expanded.
	ListCommentsByVideo(ctx context.Context, videoID string) ([]domain.Comment, error)
}
