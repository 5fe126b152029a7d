package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/google/uuid"
)

type commentService struct {
	BaseService
	commentRepo portsrepo.CommentRepositoryFacade
	videoRepo   portsrepo.VideoReader
}

// NewCommentService creates a new comment service.
func NewCommentService(commentRepo portsrepo.CommentRepositoryFacade, videoRepo portsrepo.VideoReader) portssvc.CommentSvcFacade {
	return &commentService{commentRepo: commentRepo, videoRepo: videoRepo}
}

var _ portssvc.CommentSvcFacade = (*commentService)(nil)

func (s *commentService) ensureVideo(ctx context.Context, videoID string) error {
	if _, err := s.videoRepo.FindVideoByID(ctx, videoID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Video not found")
		}
		return fmt.Errorf("failed to get video: %w", err)
	}
	return nil
}

func (s *commentService) findOwnComment(ctx context.Context, commentID, userID string) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Comment not found")
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	if err := s.AuthorizeOwner(ctx, comment.OwnerID, userID, "comment"); err != nil {
		return nil, err
	}
	return comment, nil
}

// AddComment adds a comment to an existing video.
func (s *commentService) AddComment(ctx context.Context, videoID, userID string, req dto.CommentRequest) (*domain.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.NewValidationError("Content is required")
	}
	if err := s.ensureVideo(ctx, videoID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := domain.Comment{
		CommentID:  uuid.NewString(),
		VideoID:    videoID,
		OwnerID:    userID,
		Content:    content,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.commentRepo.SaveComment(ctx, comment); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Video not found")
		}
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}
	return &comment, nil
}

// UpdateComment replaces the content of the caller's comment.
func (s *commentService) UpdateComment(ctx context.Context, commentID, userID string, req dto.CommentRequest) (*domain.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.NewValidationError("Content is required")
	}
	if _, err := s.findOwnComment(ctx, commentID, userID); err != nil {
		return nil, err
	}

	updated, err := s.commentRepo.UpdateCommentContent(ctx, commentID, content)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return updated, nil
}

// DeleteComment removes the caller's comment and returns it.
func (s *commentService) DeleteComment(ctx context.Context, commentID, userID string) (*domain.Comment, error) {
	comment, err := s.findOwnComment(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Comment not found")
		}
		return nil, fmt.Errorf("failed to delete comment: %w", err)
	}
	return comment, nil
}

// GetVideoComments lists a video's comments. A video without comments yields an empty list.
func (s *commentService) GetVideoComments(ctx context.Context, videoID string) ([]domain.Comment, error) {
	if err := s.ensureVideo(ctx, videoID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListCommentsByVideo(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, nil
}
