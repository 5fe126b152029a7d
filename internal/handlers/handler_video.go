package handlers

import (
	"net/http"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type videoHandler struct {
	videoService portssvc.VideoSvcFacade
}

func newVideoHandler(vs portssvc.VideoSvcFacade) *videoHandler {
	return &videoHandler{videoService: vs}
}

func registerVideoRoutes(rg *gin.RouterGroup, deps routeDeps) {
	h := newVideoHandler(deps.services.Video)

	videos := rg.Group("/videos")
	{
		videos.GET("/getAllVideos", h.listVideos)
		videos.GET("/getVideoById/:id", deps.optionalAuth, h.getVideo)
		videos.POST("/publish_video", deps.auth, deps.upload, h.publishVideo)
		videos.PATCH("/updateVideoDetails/:id", deps.auth, deps.upload, h.updateVideoDetails)
		videos.DELETE("/deleteVideo/:id", deps.auth, h.deleteVideo)
		videos.PATCH("/togglePublish/:id", deps.auth, h.togglePublish)
	}
}

// listVideos godoc
// @Summary List published videos
// @Tags videos
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]domain.Video}
// @Router /videos/getAllVideos [get]
func (h *videoHandler) listVideos(c *gin.Context) {
	videos, err := h.videoService.ListVideos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, videos, "Videos fetched successfully")
}

// getVideo godoc
// @Summary Get a video
// @Description Counts a view and, for a signed-in caller, records it in the watch history.
// @Tags videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} dto.APIResponse{data=domain.Video}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /videos/getVideoById/{id} [get]
func (h *videoHandler) getVideo(c *gin.Context) {
	videoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	video, err := h.videoService.GetVideoByID(c.Request.Context(), videoID, viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, video, "Video fetched successfully")
}

// publishVideo godoc
// @Summary Publish a video
// @Tags videos
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param thumbnail formData file true "Thumbnail image"
// @Param videoFile formData file true "Video file"
// @Success 201 {object} dto.APIResponse{data=domain.Video}
// @Failure 400 {object} dto.APIResponse
// @Failure 413 {object} dto.APIResponse
// @Failure 502 {object} dto.APIResponse
// @Security BearerAuth
// @Router /videos/publish_video [post]
func (h *videoHandler) publishVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	thumbnail, closeThumb, err := requiredFormFile(c, "thumbnail", domain.MediaKindImage)
	defer closeThumb()
	if err != nil {
		respondError(c, err)
		return
	}
	videoFile, closeVideo, err := requiredFormFile(c, "videoFile", domain.MediaKindVideo)
	defer closeVideo()
	if err != nil {
		respondError(c, err)
		return
	}

	video, err := h.videoService.PublishVideo(c.Request.Context(), userID, req, *thumbnail, *videoFile)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, video, "Video published successfully")
}

// updateVideoDetails godoc
// @Summary Update a video's title, description or thumbnail
// @Description Owner only. Accepts a multipart form with an optional thumbnail or a JSON body.
// @Tags videos
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Param thumbnail formData file false "Thumbnail image"
// @Success 200 {object} dto.APIResponse{data=dto.UpdateVideoResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 413 {object} dto.APIResponse
// @Security BearerAuth
// @Router /videos/updateVideoDetails/{id} [patch]
func (h *videoHandler) updateVideoDetails(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	videoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	thumbnail, closeThumb, err := formFile(c, "thumbnail", domain.MediaKindImage)
	defer closeThumb()
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.videoService.UpdateVideoDetails(c.Request.Context(), videoID, userID, req, thumbnail)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, resp, "Video updated successfully")
}

// deleteVideo godoc
// @Summary Delete a video
// @Description Owner only. Also deletes the stored thumbnail and video file.
// @Tags videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteVideoResponse}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /videos/deleteVideo/{id} [delete]
func (h *videoHandler) deleteVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	videoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.videoService.DeleteVideo(c.Request.Context(), videoID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, resp, "Video deleted successfully")
}

// togglePublish godoc
// @Summary Flip a video's published flag
// @Tags videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} dto.APIResponse{data=domain.Video}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /videos/togglePublish/{id} [patch]
func (h *videoHandler) togglePublish(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	videoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	video, err := h.videoService.TogglePublish(c.Request.Context(), videoID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, video, "Publish status toggled")
}
