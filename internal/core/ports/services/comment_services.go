package services

import (
	"context"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	"github.com/SscSPs/videotube_backend/internal/dto"
)

// CommentSvcFacade defines comment operations. Edits and deletes are restricted to the author.
type CommentSvcFacade interface {
	AddComment(ctx context.Context, videoID, userID string, req dto.CommentRequest) (*domain.Comment, error)
	UpdateComment(ctx context.Context, commentID, userID string, req dto.CommentRequest) (*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID, userID string) (*domain.Comment, error)
	GetVideoComments(ctx context.Context, videoID string) ([]domain.Comment, error)
}
