package repositories

import (
	"context"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
)

// LikeRepositoryFacade defines persistence for reactions. Every lookup and write is
// keyed on the (target, likedBy) pair.
type LikeRepositoryFacade interface {
	// UpsertReaction creates or updates the caller's reaction on a target in one statement.
	// The returned flag is true when a new row was created.
	UpsertReaction(ctx context.Context, like domain.Like) (*domain.Like, bool, error)

	// DeleteReaction removes the caller's reaction on a target. Returns false when none existed.
	DeleteReaction(ctx context.Context, target domain.LikeTarget, targetID, likedBy string) (bool, error)

	// ListLikedVideos returns videos the user reacted to with a like, newest reaction first.
	ListLikedVideos(ctx context.Context, likedBy string) ([]domain.LikedVideo, error)
}
