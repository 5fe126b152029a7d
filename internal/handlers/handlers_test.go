package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/core/services"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/SscSPs/videotube_backend/internal/handlers"
	"github.com/SscSPs/videotube_backend/internal/middleware"
	"github.com/SscSPs/videotube_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	aliceID = "0b6c3c55-2a8e-4ec4-9d8b-2f2b2b7ad001"
	videoID = "7d1e4c4a-5a0c-4a44-8f43-1f5c0e0c9a10"
)

var alice = &domain.User{
	UserID:       aliceID,
	Username:     "alice",
	Email:        "alice@x.com",
	FullName:     "Alice",
	AuthProvider: domain.ProviderLocal,
	Avatar:       domain.MediaAsset{URL: "https://media/a.png", PublicID: "a"},
}

// --- Test Suite Setup ---
type HandlerTestSuite struct {
	suite.Suite
	cfg         *config.Config
	router      *gin.Engine
	tokens      portssvc.TokenSvcFacade
	session     *MockSessionService
	users       *MockUserService
	videos      *MockVideoService
	likes       *MockLikeService
	subs        *MockSubscriptionService
	playlists   *MockPlaylistService
	comments    *MockCommentService
	accessToken string
	health      *fakeHealth
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.cfg = &config.Config{
		AccessTokenSecret:    "access-secret-for-tests",
		AccessTokenExpiry:    time.Minute,
		RefreshTokenSecret:   "refresh-secret-for-tests",
		RefreshTokenExpiry:   time.Hour,
		JWTIssuer:            "videotube-test",
		CookieSecure:         true,
		CORSOrigins:          []string{"*"},
		LoginRateLimit:       "100-M",
		JSONBodyLimitBytes:   1024,
		MaxUploadBytes:       8 << 10,
		MultipartMemoryBytes: 1 << 20,
	}
	s.tokens = services.NewTokenService(s.cfg)
	s.session = new(MockSessionService)
	s.users = new(MockUserService)
	s.videos = new(MockVideoService)
	s.likes = new(MockLikeService)
	s.subs = new(MockSubscriptionService)
	s.playlists = new(MockPlaylistService)
	s.comments = new(MockCommentService)
	s.health = &fakeHealth{}

	s.router = s.newRouter(s.cfg)

	token, err := s.tokens.IssueAccessToken(alice)
	s.Require().NoError(err)
	s.accessToken = token
}

func (s *HandlerTestSuite) newRouter(cfg *config.Config) *gin.Engine {
	container := &portssvc.ServiceContainer{
		Token:        s.tokens,
		Session:      s.session,
		User:         s.users,
		Video:        s.videos,
		Comment:      s.comments,
		Like:         s.likes,
		Playlist:     s.playlists,
		Subscription: s.subs,
	}
	r, err := handlers.NewRouter(cfg, container, fakeUsers{aliceID: alice}, s.health, slog.Default())
	s.Require().NoError(err)
	return r
}

func (s *HandlerTestSuite) TearDownTest() {
	s.session.AssertExpectations(s.T())
	s.users.AssertExpectations(s.T())
	s.videos.AssertExpectations(s.T())
	s.likes.AssertExpectations(s.T())
	s.subs.AssertExpectations(s.T())
	s.playlists.AssertExpectations(s.T())
	s.comments.AssertExpectations(s.T())
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

// --- Helpers ---

func (s *HandlerTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) jsonRequest(method, path string, body any) *http.Request {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func (s *HandlerTestSuite) authed(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+s.accessToken)
	return req
}

func (s *HandlerTestSuite) decode(w *httptest.ResponseRecorder) dto.APIResponse {
	var resp dto.APIResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func cookieByName(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// --- Tests ---

func (s *HandlerTestSuite) TestHealth() {
	w := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	s.Equal(http.StatusOK, w.Code)

	s.health.err = errors.New("connection refused")
	w = s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	s.Equal(http.StatusServiceUnavailable, w.Code)
	s.Equal("Database unreachable", s.decode(w).Message)
}

func (s *HandlerTestSuite) TestLogin_Success_SetsCookies() {
	req := dto.LoginRequest{Username: "alice", Password: "pw1"}
	pair := domain.TokenPair{AccessToken: "A1", RefreshToken: "R1"}
	s.session.On("Login", mock.Anything, req).Return(&domain.LoginResult{User: *alice, TokenPair: pair}, nil).Once()

	w := s.do(s.jsonRequest(http.MethodPost, "/api/v1/users/login", req))

	s.Equal(http.StatusOK, w.Code)
	resp := s.decode(w)
	s.Equal(http.StatusOK, resp.Status)
	data := resp.Data.(map[string]any)
	s.Equal("A1", data["accessToken"])
	s.Equal("R1", data["refreshToken"])
	user := data["user"].(map[string]any)
	s.Equal("alice", user["username"])
	s.NotContains(user, "password")
	s.NotContains(user, "refreshToken")

	access := cookieByName(w, middleware.AccessTokenCookie)
	s.Require().NotNil(access)
	s.Equal("A1", access.Value)
	s.True(access.HttpOnly)
	s.True(access.Secure)
	s.Equal("R1", cookieByName(w, middleware.RefreshTokenCookie).Value)
}

func (s *HandlerTestSuite) TestLogin_Failures() {
	s.session.On("Login", mock.Anything, dto.LoginRequest{Username: "alice", Password: "nope"}).
		Return(nil, apperrors.ErrInvalidCredentials).Once()
	s.session.On("Login", mock.Anything, dto.LoginRequest{Username: "bob", Password: "pw"}).
		Return(nil, apperrors.NewNotFoundError("User does not exist")).Once()

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantMsg    string
	}{
		{"wrong password", dto.LoginRequest{Username: "alice", Password: "nope"}, http.StatusUnauthorized, "Invalid user credentials"},
		{"unknown user", dto.LoginRequest{Username: "bob", Password: "pw"}, http.StatusNotFound, "User does not exist"},
		{"missing password", map[string]string{"username": "alice"}, http.StatusBadRequest, "password is required"},
		{"empty body", nil, http.StatusBadRequest, "Request body is required"},
		{"oversized body", map[string]string{"password": strings.Repeat("x", 4096)}, http.StatusRequestEntityTooLarge, "Request body too large"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(s.jsonRequest(http.MethodPost, "/api/v1/users/login", tt.body))
			s.Equal(tt.wantStatus, w.Code)
			resp := s.decode(w)
			s.Equal(tt.wantMsg, resp.Message)
			s.Nil(resp.Data)
		})
	}
}

func (s *HandlerTestSuite) TestLogin_BodyCapIgnoresDeclaredContentType() {
	body := `{"username":"alice","password":"` + strings.Repeat("x", 4096) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	w := s.do(req)

	s.Equal(http.StatusRequestEntityTooLarge, w.Code)
	s.Equal("Request body too large", s.decode(w).Message)
}

func (s *HandlerTestSuite) TestLogin_RateLimited() {
	cfg := *s.cfg
	cfg.LoginRateLimit = "2-M"
	s.router = s.newRouter(&cfg)
	s.session.On("Login", mock.Anything, mock.Anything).Return(nil, apperrors.ErrInvalidCredentials).Twice()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := s.do(s.jsonRequest(http.MethodPost, "/api/v1/users/login", dto.LoginRequest{Username: "alice", Password: "x"}))
		codes = append(codes, w.Code)
	}
	s.Equal([]int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)

	// Refresh keeps its own budget after login is exhausted.
	s.session.On("Refresh", mock.Anything, "R1").Return(&domain.TokenPair{AccessToken: "A2", RefreshToken: "R2"}, nil).Once()
	w := s.do(s.jsonRequest(http.MethodPost, "/api/v1/users/refreshToken", dto.RefreshTokenRequest{RefreshToken: "R1"}))
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestRefresh_PrefersCookieOverBody() {
	s.session.On("Refresh", mock.Anything, "R1").Return(&domain.TokenPair{AccessToken: "A2", RefreshToken: "R2"}, nil).Once()

	req := s.jsonRequest(http.MethodPost, "/api/v1/users/refreshToken", dto.RefreshTokenRequest{RefreshToken: "ignored"})
	req.AddCookie(&http.Cookie{Name: middleware.RefreshTokenCookie, Value: "R1"})
	w := s.do(req)

	s.Equal(http.StatusOK, w.Code)
	data := s.decode(w).Data.(map[string]any)
	s.Equal("A2", data["accessToken"])
	s.Equal("R2", cookieByName(w, middleware.RefreshTokenCookie).Value)
}

func (s *HandlerTestSuite) TestRefresh_RotatedTokenRejected() {
	s.session.On("Refresh", mock.Anything, "R1").Return(nil, apperrors.ErrInvalidToken).Once()

	w := s.do(s.jsonRequest(http.MethodPost, "/api/v1/users/refreshToken", dto.RefreshTokenRequest{RefreshToken: "R1"}))

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Invalid refresh token", s.decode(w).Message)
}

func (s *HandlerTestSuite) TestRefresh_NoTokenAnywhere() {
	s.session.On("Refresh", mock.Anything, "").Return(nil, apperrors.NewUnauthorizedError("Unauthorized request")).Once()

	w := s.do(httptest.NewRequest(http.MethodPost, "/api/v1/users/refreshToken", nil))

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlerTestSuite) TestLogout_ClearsCookies() {
	s.session.On("Logout", mock.Anything, aliceID).Return(nil).Once()

	w := s.do(s.authed(httptest.NewRequest(http.MethodPost, "/api/v1/users/logout", nil)))

	s.Equal(http.StatusOK, w.Code)
	access := cookieByName(w, middleware.AccessTokenCookie)
	s.Require().NotNil(access)
	s.Equal("", access.Value)
	s.Less(access.MaxAge, 0)
}

func (s *HandlerTestSuite) TestGate_RejectsMissingToken() {
	for _, path := range []string{"/api/v1/users/getCurrentUser", "/api/v1/likes/getLikedVideos", "/api/v1/users/history"} {
		w := s.do(httptest.NewRequest(http.MethodGet, path, nil))
		s.Equal(http.StatusUnauthorized, w.Code, path)
	}
}

func (s *HandlerTestSuite) TestGetCurrentUser() {
	w := s.do(s.authed(httptest.NewRequest(http.MethodGet, "/api/v1/users/getCurrentUser", nil)))

	s.Equal(http.StatusOK, w.Code)
	data := s.decode(w).Data.(map[string]any)
	s.Equal(aliceID, data["_id"])
}

func (s *HandlerTestSuite) TestChangePassword() {
	req := dto.ChangePasswordRequest{OldPassword: "pw1", NewPassword: "pw2"}
	s.session.On("ChangeSecret", mock.Anything, aliceID, req).Return(nil).Once()

	w := s.do(s.authed(s.jsonRequest(http.MethodPost, "/api/v1/users/change-password", req)))
	s.Equal(http.StatusOK, w.Code)

	w = s.do(s.authed(s.jsonRequest(http.MethodPost, "/api/v1/users/change-password", map[string]string{"oldPassword": "pw1"})))
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("newPassword is required", s.decode(w).Message)
}

func (s *HandlerTestSuite) TestRegister() {
	s.users.On("RegisterUser", mock.Anything,
		dto.RegisterUserRequest{Username: "alice", Email: "alice@x.com", FullName: "Alice", Password: "pw1"},
		mock.MatchedBy(func(f domain.UploadFile) bool {
			return f.FileName == "a.png" && f.Kind == domain.MediaKindImage
		}),
		(*domain.UploadFile)(nil),
	).Return(alice, nil).Once()

	w := s.do(s.multipartRequest(http.MethodPost, "/api/v1/users/register", map[string]string{
		"username": "alice", "email": "alice@x.com", "fullName": "Alice", "password": "pw1",
	}, map[string]string{"avatar": "a.png"}))

	s.Equal(http.StatusCreated, w.Code)
	s.Equal("User registered successfully", s.decode(w).Message)
}

func (s *HandlerTestSuite) TestUploadRoutes_TotalSizeCapped() {
	s.users.On("RegisterUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(alice, nil).Once()

	// Above the JSON cap but within the upload cap.
	w := s.do(s.uploadRequest(http.MethodPost, "/api/v1/users/register", "avatar", 2<<10))
	s.Equal(http.StatusCreated, w.Code)

	w = s.do(s.authed(s.uploadRequest(http.MethodPatch, "/api/v1/users/updateAvatar", "avatar", 16<<10)))
	s.Equal(http.StatusRequestEntityTooLarge, w.Code)
	s.Equal("Uploaded file too large", s.decode(w).Message)

	tests := []struct {
		name   string
		method string
		path   string
		field  string
	}{
		{"register", http.MethodPost, "/api/v1/users/register", "avatar"},
		{"cover image", http.MethodPatch, "/api/v1/users/updateCoverImage", "coverImage"},
		{"publish", http.MethodPost, "/api/v1/videos/publish_video", "videoFile"},
		{"update details", http.MethodPatch, "/api/v1/videos/updateVideoDetails/" + videoID, "thumbnail"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(s.authed(s.uploadRequest(tt.method, tt.path, tt.field, 16<<10)))
			s.Equal(http.StatusRequestEntityTooLarge, w.Code)
		})
	}
}

func (s *HandlerTestSuite) TestRegister_MissingAvatar() {
	w := s.do(s.multipartRequest(http.MethodPost, "/api/v1/users/register", map[string]string{
		"username": "alice", "email": "alice@x.com", "fullName": "Alice", "password": "pw1",
	}, nil))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("avatar file is required", s.decode(w).Message)
}

func (s *HandlerTestSuite) TestRegister_Duplicate() {
	s.users.On("RegisterUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewConflictError("User with email or username already exists")).Once()

	w := s.do(s.multipartRequest(http.MethodPost, "/api/v1/users/register", map[string]string{
		"username": "alice", "email": "alice@x.com", "fullName": "Alice", "password": "pw1",
	}, map[string]string{"avatar": "a.png"}))

	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerTestSuite) TestGetVideo_AnonymousAndSignedIn() {
	video := &domain.Video{VideoID: videoID, Title: "t", IsPublished: true}
	s.videos.On("GetVideoByID", mock.Anything, videoID, "").Return(video, nil).Once()
	s.videos.On("GetVideoByID", mock.Anything, videoID, aliceID).Return(video, nil).Once()

	w := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/videos/getVideoById/"+videoID, nil))
	s.Equal(http.StatusOK, w.Code)

	w = s.do(s.authed(httptest.NewRequest(http.MethodGet, "/api/v1/videos/getVideoById/"+videoID, nil)))
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestInvalidPathID() {
	w := s.do(s.authed(httptest.NewRequest(http.MethodDelete, "/api/v1/videos/deleteVideo/not-a-uuid", nil)))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("invalid id", s.decode(w).Message)
}

func (s *HandlerTestSuite) TestDeleteVideo_Forbidden() {
	s.videos.On("DeleteVideo", mock.Anything, videoID, aliceID).Return(nil, apperrors.ErrForbidden).Once()

	w := s.do(s.authed(httptest.NewRequest(http.MethodDelete, "/api/v1/videos/deleteVideo/"+videoID, nil)))

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *HandlerTestSuite) TestToggleVideoLike() {
	like := &domain.Like{LikeID: uuid.NewString(), LikedBy: aliceID, Reaction: domain.ReactionDislike}
	s.likes.On("ToggleReaction", mock.Anything, domain.LikeTargetVideo, videoID, aliceID, domain.ReactionDislike).Return(like, nil).Once()
	s.likes.On("ToggleReaction", mock.Anything, domain.LikeTargetVideo, videoID, aliceID, domain.Reaction("")).Return(nil, nil).Once()

	w := s.do(s.authed(s.jsonRequest(http.MethodPost, "/api/v1/likes/toggleVideoLike/"+videoID, dto.ToggleReactionRequest{ReactionType: "dislike"})))
	s.Equal(http.StatusOK, w.Code)
	s.Equal("Reaction saved", s.decode(w).Message)

	w = s.do(s.authed(httptest.NewRequest(http.MethodPost, "/api/v1/likes/toggleVideoLike/"+videoID, nil)))
	s.Equal(http.StatusOK, w.Code)
	s.Equal("Reaction removed", s.decode(w).Message)

	w = s.do(s.authed(s.jsonRequest(http.MethodPost, "/api/v1/likes/toggleVideoLike/"+videoID, map[string]string{"reactionType": "love"})))
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("reactionType must be one of: like, dislike", s.decode(w).Message)
}

func (s *HandlerTestSuite) TestToggleSubscription() {
	channelID := uuid.NewString()
	s.subs.On("ToggleSubscription", mock.Anything, aliceID, channelID).
		Return(&domain.Subscription{SubscriberID: aliceID, ChannelID: channelID}, nil).Once()
	s.subs.On("ToggleSubscription", mock.Anything, aliceID, aliceID).
		Return(nil, apperrors.NewValidationError("You cannot subscribe to yourself")).Once()

	w := s.do(s.authed(httptest.NewRequest(http.MethodPost, "/api/v1/subscriptions/toggleSubscription/"+channelID, nil)))
	s.Equal(http.StatusOK, w.Code)
	s.Equal("Subscribed successfully", s.decode(w).Message)

	w = s.do(s.authed(httptest.NewRequest(http.MethodPost, "/api/v1/subscriptions/toggleSubscription/"+aliceID, nil)))
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestPlaylistMembershipParamOrder() {
	playlistID := uuid.NewString()
	s.playlists.On("AddVideoToPlaylist", mock.Anything, playlistID, videoID, aliceID).
		Return(&domain.Playlist{PlaylistID: playlistID, VideoIDs: []string{videoID}}, nil).Once()

	w := s.do(s.authed(httptest.NewRequest(http.MethodPatch, "/api/v1/playlists/addVideoToPlayList/"+videoID+"/"+playlistID, nil)))

	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestAddComment_Validation() {
	w := s.do(s.authed(s.jsonRequest(http.MethodPost, "/api/v1/comments/addComment/"+videoID, map[string]string{})))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("content is required", s.decode(w).Message)
}

func (s *HandlerTestSuite) TestInternalErrorIsMasked() {
	s.users.On("ClearWatchHistory", mock.Anything, aliceID).Return(int64(0), errors.New("pq: connection reset")).Once()

	w := s.do(s.authed(httptest.NewRequest(http.MethodDelete, "/api/v1/users/deleteHistory", nil)))

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal("Internal server error", s.decode(w).Message)
	s.NotContains(w.Body.String(), "connection reset")
}

func (s *HandlerTestSuite) TestSwaggerDocumentsEveryRoute() {
	w := s.do(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	s.Require().Equal(http.StatusOK, w.Code)

	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &doc))
	s.Equal("/api/v1", doc.BasePath)

	param := regexp.MustCompile(`:(\w+)`)
	for _, route := range s.router.Routes() {
		path, ok := strings.CutPrefix(route.Path, doc.BasePath)
		if !ok {
			continue
		}
		path = param.ReplaceAllString(path, "{$1}")
		s.Contains(doc.Paths[path], strings.ToLower(route.Method), "%s %s is not documented", route.Method, route.Path)
	}
}

func (s *HandlerTestSuite) multipartRequest(method, path string, fields map[string]string, files map[string]string) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		s.Require().NoError(mw.WriteField(k, v))
	}
	for field, name := range files {
		fw, err := mw.CreateFormFile(field, name)
		s.Require().NoError(err)
		_, err = fw.Write([]byte("fake image bytes"))
		s.Require().NoError(err)
	}
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// uploadRequest builds a register-shaped multipart form carrying one file of size bytes.
func (s *HandlerTestSuite) uploadRequest(method, path, field string, size int) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range map[string]string{
		"username": "alice", "email": "alice@x.com", "fullName": "Alice", "password": "pw1",
		"title": "clip", "description": "a clip",
	} {
		s.Require().NoError(mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile(field, "big.bin")
	s.Require().NoError(err)
	_, err = fw.Write(bytes.Repeat([]byte("x"), size))
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
