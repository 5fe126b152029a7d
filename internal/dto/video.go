package dto

import "github.com/SscSPs/videotube_backend/internal/core/domain"

// --- Video DTOs ---

// PublishVideoRequest carries the text fields of the multipart publish form.
type PublishVideoRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
}

// UpdateVideoRequest defines the data allowed for updating a video. Omitted fields keep their value.
type UpdateVideoRequest struct {
	Title       *string `form:"title" json:"title"`
	Description *string `form:"description" json:"description"`
}

// UpdateVideoResponse reports the updated video and the outcome of the old thumbnail deletion.
type UpdateVideoResponse struct {
	Video           *domain.Video             `json:"video"`
	DeleteThumbnail *domain.MediaDeleteResult `json:"deleteThumbnail"`
}

// DeleteVideoResponse reports the deleted video and the outcome of both asset deletions.
type DeleteVideoResponse struct {
	DeletedVideo    *domain.Video             `json:"deletedVideo"`
	DeleteThumbnail *domain.MediaDeleteResult `json:"deleteThumbnail"`
	DeleteVideoFile *domain.MediaDeleteResult `json:"deleteVideoFile"`
}
