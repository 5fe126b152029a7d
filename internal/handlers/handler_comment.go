package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type commentHandler struct {
	commentService portssvc.CommentSvcFacade
}

func newCommentHandler(cs portssvc.CommentSvcFacade) *commentHandler {
	return &commentHandler{commentService: cs}
}

func registerCommentRoutes(rg *gin.RouterGroup, deps routeDeps) {
	h := newCommentHandler(deps.services.Comment)

	comments := rg.Group("/comments")
	{
		comments.GET("/getVideoComments/:videoId", h.listVideoComments)
		comments.POST("/addComment/:videoId", deps.auth, h.addComment)
		comments.PATCH("/updateComment/:id", deps.auth, h.updateComment)
		comments.DELETE("/deleteComment/:id", deps.auth, h.deleteComment)
	}
}

// addComment godoc
// @Summary Comment on a video
// @Tags comments
// @Accept json
// @Produce json
// @Param videoId path string true "Video ID"
// @Param comment body dto.CommentRequest true "Comment"
// @Success 201 {object} dto.APIResponse{data=domain.Comment}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /comments/addComment/{videoId} [post]
func (h *commentHandler) addComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), videoID, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, comment, "Comment added successfully")
}

// updateComment godoc
// @Summary Edit a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param comment body dto.CommentRequest true "New content"
// @Success 200 {object} dto.APIResponse{data=domain.Comment}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /comments/updateComment/{id} [patch]
func (h *commentHandler) updateComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), commentID, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, comment, "Comment updated successfully")
}

// deleteComment godoc
// @Summary Delete a comment
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} dto.APIResponse{data=domain.Comment}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /comments/deleteComment/{id} [delete]
func (h *commentHandler) deleteComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	comment, err := h.commentService.DeleteComment(c.Request.Context(), commentID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, comment, "Comment deleted successfully")
}

// listVideoComments godoc
// @Summary List comments of a video
// @Tags comments
// @Produce json
// @Param videoId path string true "Video ID"
// @Success 200 {object} dto.APIResponse{data=[]domain.Comment}
// @Failure 400 {object} dto.APIResponse
// @Router /comments/getVideoComments/{videoId} [get]
func (h *commentHandler) listVideoComments(c *gin.Context) {
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}
	comments, err := h.commentService.GetVideoComments(c.Request.Context(), videoID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, comments, "Comments fetched successfully")
}
