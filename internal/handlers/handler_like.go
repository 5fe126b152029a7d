package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type likeHandler struct {
	likeService portssvc.LikeSvcFacade
}

func newLikeHandler(ls portssvc.LikeSvcFacade) *likeHandler {
	return &likeHandler{likeService: ls}
}

func registerLikeRoutes(rg *gin.RouterGroup, deps routeDeps) {
	h := newLikeHandler(deps.services.Like)

	likes := rg.Group("/likes", deps.auth)
	{
		likes.POST("/toggleVideoLike/:id", h.toggle(domain.LikeTargetVideo))
		likes.POST("/toggleCommentLike/:id", h.toggle(domain.LikeTargetComment))
		likes.GET("/getLikedVideos", h.getLikedVideos)
	}
}

// toggle godoc
// @Summary Set or clear a reaction
// @Description A reactionType of like or dislike upserts the caller's reaction. An empty body or reactionType removes it.
// @Tags likes
// @Accept json
// @Produce json
// @Param id path string true "Video or comment ID"
// @Param body body dto.ToggleReactionRequest false "Reaction"
// @Success 200 {object} dto.APIResponse{data=domain.Like}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /likes/toggleVideoLike/{id} [post]
// @Router /likes/toggleCommentLike/{id} [post]
func (h *likeHandler) toggle(target domain.LikeTarget) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		targetID, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req dto.ToggleReactionRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondError(c, bindError(err))
			return
		}

		like, err := h.likeService.ToggleReaction(c.Request.Context(), target, targetID, userID, domain.Reaction(req.ReactionType))
		if err != nil {
			respondError(c, err)
			return
		}
		if like == nil {
			respondOK(c, http.StatusOK, gin.H{}, "Reaction removed")
			return
		}
		respondOK(c, http.StatusOK, like, "Reaction saved")
	}
}

// getLikedVideos godoc
// @Summary Videos the caller liked
// @Tags likes
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]domain.LikedVideo}
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /likes/getLikedVideos [get]
func (h *likeHandler) getLikedVideos(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	liked, err := h.likeService.GetLikedVideos(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, liked, "Liked videos fetched successfully")
}
