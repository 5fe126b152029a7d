package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/SscSPs/videotube_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles account, session and channel requests.
type userHandler struct {
	session      portssvc.SessionSvc
	userService  portssvc.UserSvcFacade
	cookieSecure bool
}

func newUserHandler(session portssvc.SessionSvc, us portssvc.UserSvcFacade, cookieSecure bool) *userHandler {
	return &userHandler{session: session, userService: us, cookieSecure: cookieSecure}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, deps routeDeps) {
	h := newUserHandler(deps.services.Session, deps.services.User, deps.cfg.CookieSecure)

	users := rg.Group("/users")
	{
		users.POST("/register", deps.limit, deps.upload, h.register)
		users.POST("/login", deps.limit, h.login)
		users.POST("/refreshToken", deps.limit, h.refreshToken)
		users.POST("/google/exchange-code", deps.limit, h.exchangeGoogleCode)

		users.POST("/logout", deps.auth, h.logout)
		users.POST("/change-password", deps.auth, h.changePassword)
		users.GET("/getCurrentUser", deps.auth, h.getCurrentUser)
		users.PATCH("/updateAccountDetails", deps.auth, h.updateAccountDetails)
		users.PATCH("/updateAvatar", deps.auth, deps.upload, h.updateAvatar)
		users.PATCH("/updateCoverImage", deps.auth, deps.upload, h.updateCoverImage)
		users.GET("/channel/:username", deps.auth, h.getChannelProfile)
		users.GET("/history", deps.auth, h.getWatchHistory)
		users.DELETE("/removeFromHistory/:videoId", deps.auth, h.removeFromHistory)
		users.DELETE("/deleteHistory", deps.auth, h.clearHistory)
	}
}

func (h *userHandler) writeLogin(c *gin.Context, result *domain.LoginResult, message string) {
	setSessionCookies(c, result.TokenPair, h.cookieSecure)
	respondOK(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(&result.User),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}, message)
}

// register godoc
// @Summary Register a new user
// @Description Creates an account. The avatar is required, the cover image optional.
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param fullName formData string true "Full name"
// @Param password formData string true "Password"
// @Param avatar formData file true "Avatar image"
// @Param coverImage formData file false "Cover image"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Username or email already exists"
// @Failure 413 {object} dto.APIResponse
// @Failure 429 {object} dto.APIResponse
// @Router /users/register [post]
func (h *userHandler) register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	avatar, closeAvatar, err := requiredFormFile(c, "avatar", domain.MediaKindImage)
	defer closeAvatar()
	if err != nil {
		respondError(c, err)
		return
	}
	cover, closeCover, err := formFile(c, "coverImage", domain.MediaKindImage)
	defer closeCover()
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req, *avatar, cover)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, dto.ToUserResponse(user), "User registered successfully")
}

// login godoc
// @Summary User login
// @Description Authenticates by username or email and returns a token pair, also set as cookies.
// @Tags users
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 429 {object} dto.APIResponse
// @Router /users/login [post]
func (h *userHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	result, err := h.session.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeLogin(c, result, "User logged in successfully")
}

// refreshToken godoc
// @Summary Rotate the session tokens
// @Description Reads the refresh token from the cookie or the body and issues a new pair. The presented token stops working.
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.RefreshTokenRequest false "Refresh token when the cookie is absent"
// @Success 200 {object} dto.APIResponse{data=dto.RefreshTokenResponse}
// @Failure 401 {object} dto.APIResponse
// @Router /users/refreshToken [post]
func (h *userHandler) refreshToken(c *gin.Context) {
	token, _ := c.Cookie(middleware.RefreshTokenCookie)
	if token == "" {
		var req dto.RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondError(c, bindError(err))
			return
		}
		token = req.RefreshToken
	}

	pair, err := h.session.Refresh(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}
	setSessionCookies(c, *pair, h.cookieSecure)
	respondOK(c, http.StatusOK, dto.RefreshTokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "Access token refreshed")
}

// exchangeGoogleCode signs in with a Google authorization code.
// @Summary Sign in with Google
// @Tags users
// @Accept json
// @Produce json
// @Param code body dto.GoogleExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 503 {object} dto.APIResponse "Google sign-in not configured"
// @Router /users/google/exchange-code [post]
func (h *userHandler) exchangeGoogleCode(c *gin.Context) {
	var req dto.GoogleExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	result, err := h.session.LoginWithGoogle(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeLogin(c, result, "User logged in with Google successfully")
}

// logout godoc
// @Summary Log out
// @Description Clears the stored refresh token and both cookies.
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/logout [post]
func (h *userHandler) logout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.session.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	clearSessionCookies(c, h.cookieSecure)
	respondOK(c, http.StatusOK, gin.H{}, "User logged out")
}

// changePassword godoc
// @Summary Change the current password
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/change-password [post]
func (h *userHandler) changePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	if err := h.session.ChangeSecret(c.Request.Context(), userID, req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{}, "Password changed successfully")
}

// getCurrentUser godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/getCurrentUser [get]
func (h *userHandler) getCurrentUser(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError("Unauthorized request"))
		return
	}
	respondOK(c, http.StatusOK, dto.ToUserResponse(user), "Current user fetched successfully")
}

// updateAccountDetails godoc
// @Summary Update email or full name
// @Description Only the fields present in the body are changed.
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.UpdateAccountDetailsRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Email already in use"
// @Security BearerAuth
// @Router /users/updateAccountDetails [patch]
func (h *userHandler) updateAccountDetails(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateAccountDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	user, err := h.userService.UpdateAccountDetails(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, dto.ToUserResponse(user), "Account details updated successfully")
}

// replaceImage backs updateAvatar and updateCoverImage.
func (h *userHandler) replaceImage(c *gin.Context, field string,
	update func(c *gin.Context, userID string, file domain.UploadFile) (*domain.User, *domain.MediaDeleteResult, error),
	message string,
) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	file, closeFile, err := requiredFormFile(c, field, domain.MediaKindImage)
	defer closeFile()
	if err != nil {
		respondError(c, err)
		return
	}

	user, deleteResult, err := update(c, userID, *file)
	if err != nil {
		respondError(c, err)
		return
	}
	if deleteResult != nil && deleteResult.Error != "" {
		middleware.GetLoggerFromContext(c).Warn("Previous image was not deleted",
			slog.String("field", field),
			slog.String("public_id", deleteResult.PublicID),
			slog.String("error", deleteResult.Error))
	}
	respondOK(c, http.StatusOK, dto.UserMediaUpdateResponse{
		User:         dto.ToUserResponse(user),
		DeleteResult: deleteResult,
	}, message)
}

// updateAvatar godoc
// @Summary Replace the avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} dto.APIResponse{data=dto.UserMediaUpdateResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 413 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/updateAvatar [patch]
func (h *userHandler) updateAvatar(c *gin.Context) {
	h.replaceImage(c, "avatar", func(c *gin.Context, userID string, file domain.UploadFile) (*domain.User, *domain.MediaDeleteResult, error) {
		return h.userService.UpdateAvatar(c.Request.Context(), userID, file)
	}, "Avatar updated successfully")
}

// updateCoverImage godoc
// @Summary Replace the cover image
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param coverImage formData file true "Cover image"
// @Success 200 {object} dto.APIResponse{data=dto.UserMediaUpdateResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 413 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/updateCoverImage [patch]
func (h *userHandler) updateCoverImage(c *gin.Context) {
	h.replaceImage(c, "coverImage", func(c *gin.Context, userID string, file domain.UploadFile) (*domain.User, *domain.MediaDeleteResult, error) {
		return h.userService.UpdateCoverImage(c.Request.Context(), userID, file)
	}, "Cover image updated successfully")
}

// getChannelProfile godoc
// @Summary Channel profile
// @Description Public channel data with subscriber counters relative to the caller.
// @Tags users
// @Produce json
// @Param username path string true "Channel username"
// @Success 200 {object} dto.APIResponse{data=domain.ChannelProfile}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/channel/{username} [get]
func (h *userHandler) getChannelProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	profile, err := h.userService.GetChannelProfile(c.Request.Context(), c.Param("username"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, profile, "User channel fetched successfully")
}

// getWatchHistory godoc
// @Summary Watch history
// @Description Videos the caller watched, most recent first.
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]domain.WatchedVideo}
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/history [get]
func (h *userHandler) getWatchHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	history, err := h.userService.GetWatchHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, history, "Watch history fetched successfully")
}

// removeFromHistory godoc
// @Summary Remove one video from the watch history
// @Tags users
// @Produce json
// @Param videoId path string true "Video ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/removeFromHistory/{videoId} [delete]
func (h *userHandler) removeFromHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}
	if err := h.userService.RemoveFromWatchHistory(c.Request.Context(), userID, videoID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"videoId": videoID}, "Video removed from watch history")
}

// clearHistory godoc
// @Summary Clear the watch history
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/deleteHistory [delete]
func (h *userHandler) clearHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	removed, err := h.userService.ClearWatchHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deletedCount": removed}, "Watch history cleared")
}
