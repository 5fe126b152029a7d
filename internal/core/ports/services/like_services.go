package services

import (
	"context"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
)

// LikeSvcFacade defines reaction operations.
type LikeSvcFacade interface {
	// ToggleReaction sets the caller's reaction on a target, or removes it when reaction is empty.
	// The returned like is nil after a removal.
	ToggleReaction(ctx context.Context, target domain.LikeTarget, targetID, userID string, reaction domain.Reaction) (*domain.Like, error)

	GetLikedVideos(ctx context.Context, userID string) ([]domain.LikedVideo, error)
}
