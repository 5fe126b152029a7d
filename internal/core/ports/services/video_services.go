package services

import (
	"context"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	"github.com/SscSPs/videotube_backend/internal/dto"
)

// VideoReaderSvc defines read operations for videos.
type VideoReaderSvc interface {
	ListVideos(ctx context.Context) ([]domain.Video, error)

	// GetVideoByID loads a video. A non-empty viewerID records the view in that user's history.
	GetVideoByID(ctx context.Context, videoID string, viewerID string) (*domain.Video, error)
}

// VideoWriterSvc defines write operations for videos. Mutations are restricted to the owner.
type VideoWriterSvc interface {
	PublishVideo(ctx context.Context, ownerID string, req dto.PublishVideoRequest, thumbnail, videoFile domain.UploadFile) (*domain.Video, error)
	UpdateVideoDetails(ctx context.Context, videoID, userID string, req dto.UpdateVideoRequest, thumbnail *domain.UploadFile) (*dto.UpdateVideoResponse, error)
	DeleteVideo(ctx context.Context, videoID, userID string) (*dto.DeleteVideoResponse, error)
	TogglePublish(ctx context.Context, videoID, userID string) (*domain.Video, error)
}

// VideoSvcFacade combines all video service interfaces
type VideoSvcFacade interface {
	VideoReaderSvc
	VideoWriterSvc
}
