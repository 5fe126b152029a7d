package handlers

import (
	"context"
	"net/http"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type playlistHandler struct {
	playlistService portssvc.PlaylistSvcFacade
}

func newPlaylistHandler(ps portssvc.PlaylistSvcFacade) *playlistHandler {
	return &playlistHandler{playlistService: ps}
}

func registerPlaylistRoutes(rg *gin.RouterGroup, deps routeDeps) {
	h := newPlaylistHandler(deps.services.Playlist)

	playlists := rg.Group("/playlists", deps.auth)
	{
		playlists.POST("/createPlayList", h.createPlaylist)
		playlists.GET("/getUserPlayLists/:userId", h.listUserPlaylists)
		playlists.GET("/getPlayListById/:id", h.getPlaylist)
		playlists.PATCH("/addVideoToPlayList/:videoId/:playlistId", h.addVideo)
		playlists.PATCH("/removeVideoFromPlayList/:videoId/:playlistId", h.removeVideo)
		playlists.DELETE("/deletePlayList/:playListId", h.deletePlaylist)
		playlists.PATCH("/updatePlayList/:playListId", h.updatePlaylist)
	}
}

// createPlaylist godoc
// @Summary Create a playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Param playlist body dto.CreatePlaylistRequest true "Playlist"
// @Success 201 {object} dto.APIResponse{data=domain.Playlist}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Playlist name already used by this owner"
// @Security BearerAuth
// @Router /playlists/createPlayList [post]
func (h *playlistHandler) createPlaylist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	playlist, err := h.playlistService.CreatePlaylist(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, playlist, "Playlist created successfully")
}

// listUserPlaylists godoc
// @Summary Playlists owned by a user
// @Tags playlists
// @Produce json
// @Param userId path string true "Owner ID"
// @Success 200 {object} dto.APIResponse{data=[]domain.Playlist}
// @Failure 400 {object} dto.APIResponse
// @Security BearerAuth
// @Router /playlists/getUserPlayLists/{userId} [get]
func (h *playlistHandler) listUserPlaylists(c *gin.Context) {
	ownerID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	playlists, err := h.playlistService.GetUserPlaylists(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, playlists, "Playlists fetched successfully")
}

// getPlaylist godoc
// @Summary Get a playlist with its videos
// @Tags playlists
// @Produce json
// @Param id path string true "Playlist ID"
// @Success 200 {object} dto.APIResponse{data=domain.PlaylistDetails}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /playlists/getPlayListById/{id} [get]
func (h *playlistHandler) getPlaylist(c *gin.Context) {
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	playlist, err := h.playlistService.GetPlaylistByID(c.Request.Context(), playlistID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, playlist, "Playlist fetched successfully")
}

// addVideo godoc
// @Summary Add a video to a playlist
// @Tags playlists
// @Produce json
// @Param videoId path string true "Video ID"
// @Param playlistId path string true "Playlist ID"
// @Success 200 {object} dto.APIResponse{data=domain.Playlist}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /playlists/addVideoToPlayList/{videoId}/{playlistId} [patch]
func (h *playlistHandler) addVideo(c *gin.Context) {
	h.changeMembership(c, h.playlistService.AddVideoToPlaylist, "Video added to playlist")
}

// removeVideo godoc
// @Summary Remove a video from a playlist
// @Tags playlists
// @Produce json
// @Param videoId path string true "Video ID"
// @Param playlistId path string true "Playlist ID"
// @Success 200 {object} dto.APIResponse{data=domain.Playlist}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /playlists/removeVideoFromPlayList/{videoId}/{playlistId} [patch]
func (h *playlistHandler) removeVideo(c *gin.Context) {
	h.changeMembership(c, h.playlistService.RemoveVideoFromPlaylist, "Video removed from playlist")
}

type membershipFunc func(ctx context.Context, playlistID, videoID, userID string) (*domain.Playlist, error)

func (h *playlistHandler) changeMembership(c *gin.Context, change membershipFunc, message string) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}
	playlistID, ok := pathID(c, "playlistId")
	if !ok {
		return
	}
	playlist, err := change(c.Request.Context(), playlistID, videoID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, playlist, message)
}

// deletePlaylist godoc
// @Summary Delete a playlist
// @Tags playlists
// @Produce json
// @Param playListId path string true "Playlist ID"
// @Success 200 {object} dto.APIResponse{data=domain.Playlist}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /playlists/deletePlayList/{playListId} [delete]
func (h *playlistHandler) deletePlaylist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	playlistID, ok := pathID(c, "playListId")
	if !ok {
		return
	}
	playlist, err := h.playlistService.DeletePlaylist(c.Request.Context(), playlistID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, playlist, "Playlist deleted successfully")
}

// updatePlaylist godoc
// @Summary Rename a playlist or change its description
// @Tags playlists
// @Accept json
// @Produce json
// @Param playListId path string true "Playlist ID"
// @Param playlist body dto.UpdatePlaylistRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=domain.Playlist}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /playlists/updatePlayList/{playListId} [patch]
func (h *playlistHandler) updatePlaylist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	playlistID, ok := pathID(c, "playListId")
	if !ok {
		return
	}
	var req dto.UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	playlist, err := h.playlistService.UpdatePlaylist(c.Request.Context(), playlistID, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, playlist, "Playlist updated successfully")
}
