package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/google/uuid"
)

type videoService struct {
	BaseService
	videoRepo portsrepo.VideoRepositoryFacade
	media     portssvc.MediaStorage
}

// NewVideoService creates a new video service.
func NewVideoService(videoRepo portsrepo.VideoRepositoryFacade, media portssvc.MediaStorage) portssvc.VideoSvcFacade {
	return &videoService{videoRepo: videoRepo, media: media}
}

var _ portssvc.VideoSvcFacade = (*videoService)(nil)

// ListVideos returns every published video, newest first.
func (s *videoService) ListVideos(ctx context.Context) ([]domain.Video, error) {
	videos, err := s.videoRepo.ListPublishedVideos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	if videos == nil {
		videos = []domain.Video{}
	}
	return videos, nil
}

// findVideo loads a video and maps absence to a 404.
func (s *videoService) findVideo(ctx context.Context, videoID string) (*domain.Video, error) {
	video, err := s.videoRepo.FindVideoByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Video not found")
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	return video, nil
}

// GetVideoByID loads a video and records the view. Unpublished videos are visible to their owner only.
func (s *videoService) GetVideoByID(ctx context.Context, videoID string, viewerID string) (*domain.Video, error) {
	video, err := s.findVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished && video.OwnerID != viewerID {
		return nil, apperrors.NewNotFoundError("Video not found")
	}

	if err := s.videoRepo.RecordView(ctx, videoID, viewerID); err != nil {
		s.LogError(ctx, err, "Failed to record video view", slog.String("video_id", videoID))
	} else {
		video.Views++
	}
	return video, nil
}

// PublishVideo uploads both files and stores the video. Uploaded files are removed if the save fails.
func (s *videoService) PublishVideo(ctx context.Context, ownerID string, req dto.PublishVideoRequest, thumbnail, videoFile domain.UploadFile) (*domain.Video, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return nil, apperrors.NewValidationError("Title and Description are required")
	}
	if thumbnail.Content == nil {
		return nil, apperrors.NewValidationError("Thumbnail is required")
	}
	if videoFile.Content == nil {
		return nil, apperrors.NewValidationError("Video file is required")
	}

	thumbAsset, err := s.media.Upload(ctx, thumbnail)
	if err != nil {
		return nil, err
	}
	videoAsset, err := s.media.Upload(ctx, videoFile)
	if err != nil {
		s.deleteAssetBestEffort(ctx, s.media, *thumbAsset)
		return nil, err
	}

	now := time.Now().UTC()
	video := domain.Video{
		VideoID:     uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		VideoFile:   *videoAsset,
		Thumbnail:   *thumbAsset,
		Duration:    videoAsset.Duration,
		IsPublished: true,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.videoRepo.SaveVideo(ctx, video); err != nil {
		s.deleteAssetBestEffort(ctx, s.media, *thumbAsset)
		s.deleteAssetBestEffort(ctx, s.media, *videoAsset)
		return nil, fmt.Errorf("failed to save video: %w", err)
	}

	s.LogInfo(ctx, "Video published", slog.String("video_id", video.VideoID), slog.String("owner_id", ownerID))
	return &video, nil
}

// UpdateVideoDetails changes title, description and optionally the thumbnail.
func (s *videoService) UpdateVideoDetails(ctx context.Context, videoID, userID string, req dto.UpdateVideoRequest, thumbnail *domain.UploadFile) (*dto.UpdateVideoResponse, error) {
	current, err := s.findVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, current.OwnerID, userID, "video"); err != nil {
		return nil, err
	}

	next := *current
	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		next.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) != "" {
		next.Description = strings.TrimSpace(*req.Description)
	}

	var newThumb *domain.MediaAsset
	if thumbnail != nil && thumbnail.Content != nil {
		newThumb, err = s.media.Upload(ctx, *thumbnail)
		if err != nil {
			return nil, err
		}
		next.Thumbnail = *newThumb
	}

	updated, err := s.videoRepo.UpdateVideoDetails(ctx, next)
	if err != nil {
		if newThumb != nil {
			s.deleteAssetBestEffort(ctx, s.media, *newThumb)
		}
		return nil, fmt.Errorf("failed to update video: %w", err)
	}

	resp := &dto.UpdateVideoResponse{Video: updated}
	if newThumb != nil {
		resp.DeleteThumbnail = s.deleteAssetBestEffort(ctx, s.media, current.Thumbnail)
	}
	return resp, nil
}

// DeleteVideo removes the row and both media assets.
func (s *videoService) DeleteVideo(ctx context.Context, videoID, userID string) (*dto.DeleteVideoResponse, error) {
	video, err := s.findVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, video.OwnerID, userID, "video"); err != nil {
		return nil, err
	}

	if err := s.videoRepo.DeleteVideo(ctx, videoID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Video not found")
		}
		return nil, fmt.Errorf("failed to delete video: %w", err)
	}

	s.LogInfo(ctx, "Video deleted", slog.String("video_id", videoID))
	return &dto.DeleteVideoResponse{
		DeletedVideo:    video,
		DeleteThumbnail: s.deleteAssetBestEffort(ctx, s.media, video.Thumbnail),
		DeleteVideoFile: s.deleteAssetBestEffort(ctx, s.media, video.VideoFile),
	}, nil
}

// TogglePublish flips the published flag.
func (s *videoService) TogglePublish(ctx context.Context, videoID, userID string) (*domain.Video, error) {
	video, err := s.findVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, video.OwnerID, userID, "video"); err != nil {
		return nil, err
	}

	updated, err := s.videoRepo.SetPublished(ctx, videoID, !video.IsPublished)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle publish status: %w", err)
	}
	return updated, nil
}
