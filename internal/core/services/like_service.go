package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

type likeService struct {
	BaseService
	likeRepo portsrepo.LikeRepositoryFacade
}

// NewLikeService creates a new like service.
func NewLikeService(likeRepo portsrepo.LikeRepositoryFacade) portssvc.LikeSvcFacade {
	return &likeService{likeRepo: likeRepo}
}

var _ portssvc.LikeSvcFacade = (*likeService)(nil)

// ToggleReaction upserts or removes the caller's reaction. Lookup and write are both keyed on
// the (target, caller) pair, so each user holds at most one reaction per target.
func (s *likeService) ToggleReaction(ctx context.Context, target domain.LikeTarget, targetID, userID string, reaction domain.Reaction) (*domain.Like, error) {
	if target != domain.LikeTargetVideo && target != domain.LikeTargetComment {
		return nil, apperrors.NewValidationError("unknown like target")
	}

	if reaction == "" {
		removed, err := s.likeRepo.DeleteReaction(ctx, target, targetID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to remove reaction: %w", err)
		}
		s.LogDebug(ctx, "Reaction removed",
			slog.String("target", string(target)),
			slog.String("target_id", targetID),
			slog.Bool("existed", removed))
		return nil, nil
	}
	if !reaction.Valid() {
		return nil, apperrors.NewValidationError("reactionType must be like or dislike")
	}

	now := time.Now().UTC()
	like := domain.Like{
		LikeID:     uuid.NewString(),
		LikedBy:    userID,
		Reaction:   reaction,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	id := targetID
	if target == domain.LikeTargetVideo {
		like.VideoID = &id
	} else {
		like.CommentID = &id
	}

	saved, created, err := s.likeRepo.UpsertReaction(ctx, like)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(string(target) + " not found")
		}
		return nil, fmt.Errorf("failed to save reaction: %w", err)
	}
	s.LogDebug(ctx, "Reaction saved",
		slog.String("target", string(target)),
		slog.String("target_id", targetID),
		slog.Bool("created", created))
	return saved, nil
}

// GetLikedVideos lists videos the caller liked.
func (s *likeService) GetLikedVideos(ctx context.Context, userID string) ([]domain.LikedVideo, error) {
	liked, err := s.likeRepo.ListLikedVideos(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked videos: %w", err)
	}
	if liked == nil {
		liked = []domain.LikedVideo{}
	}
	return liked, nil
}
