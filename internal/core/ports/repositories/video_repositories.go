package repositories

import (
	"context"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
)

// VideoReader defines read operations for videos.
type VideoReader interface {
	// FindVideoByID loads a video with its owner summary.
	FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error)

	// ListPublishedVideos returns published videos newest first.
	ListPublishedVideos(ctx context.Context) ([]domain.Video, error)
}

// VideoWriter defines write operations for videos.
type VideoWriter interface {
	SaveVideo(ctx context.Context, video domain.Video) error

	// UpdateVideoDetails updates title, description and thumbnail.
	UpdateVideoDetails(ctx context.Context, video domain.Video) (*domain.Video, error)

	// SetPublished flips the published flag to the given value.
	SetPublished(ctx context.Context, videoID string, published bool) (*domain.Video, error)

	// RecordView bumps the view counter and, for a signed-in viewer, moves the video to the
	// front of the viewer's watch history. Both writes share one transaction.
	RecordView(ctx context.Context, videoID string, viewerID string) error

	// DeleteVideo removes the video row; comments, likes, playlist and history entries cascade.
	DeleteVideo(ctx context.Context, videoID string) error
}

// VideoRepositoryFacade combines all video repository interfaces
type VideoRepositoryFacade interface {
	VideoReader
	VideoWriter
}
