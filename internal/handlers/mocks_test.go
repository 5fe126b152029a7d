package handlers_test

import (
	"context"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock SessionService ---
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Login(ctx context.Context, req dto.LoginRequest) (*domain.LoginResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoginResult), args.Error(1)
}

func (m *MockSessionService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPair), args.Error(1)
}

func (m *MockSessionService) Logout(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockSessionService) ChangeSecret(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}

func (m *MockSessionService) LoginWithGoogle(ctx context.Context, code string) (*domain.LoginResult, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoginResult), args.Error(1)
}

var _ portssvc.SessionSvc = (*MockSessionService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetChannelProfile(ctx context.Context, username string, viewerID string) (*domain.ChannelProfile, error) {
	args := m.Called(ctx, username, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChannelProfile), args.Error(1)
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest, avatar domain.UploadFile, cover *domain.UploadFile) (*domain.User, error) {
	args := m.Called(ctx, req, avatar, cover)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateAccountDetailsRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateAvatar(ctx context.Context, userID string, file domain.UploadFile) (*domain.User, *domain.MediaDeleteResult, error) {
	args := m.Called(ctx, userID, file)
	return userAndDelete(args)
}

func (m *MockUserService) UpdateCoverImage(ctx context.Context, userID string, file domain.UploadFile) (*domain.User, *domain.MediaDeleteResult, error) {
	args := m.Called(ctx, userID, file)
	return userAndDelete(args)
}

func userAndDelete(args mock.Arguments) (*domain.User, *domain.MediaDeleteResult, error) {
	var user *domain.User
	if v := args.Get(0); v != nil {
		user = v.(*domain.User)
	}
	var res *domain.MediaDeleteResult
	if v := args.Get(1); v != nil {
		res = v.(*domain.MediaDeleteResult)
	}
	return user, res, args.Error(2)
}

func (m *MockUserService) GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchedVideo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WatchedVideo), args.Error(1)
}

func (m *MockUserService) RemoveFromWatchHistory(ctx context.Context, userID, videoID string) error {
	return m.Called(ctx, userID, videoID).Error(0)
}

func (m *MockUserService) ClearWatchHistory(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock VideoService ---
type MockVideoService struct {
	mock.Mock
}

func (m *MockVideoService) ListVideos(ctx context.Context) ([]domain.Video, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *MockVideoService) GetVideoByID(ctx context.Context, videoID string, viewerID string) (*domain.Video, error) {
	args := m.Called(ctx, videoID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoService) PublishVideo(ctx context.Context, ownerID string, req dto.PublishVideoRequest, thumbnail, videoFile domain.UploadFile) (*domain.Video, error) {
	args := m.Called(ctx, ownerID, req, thumbnail, videoFile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoService) UpdateVideoDetails(ctx context.Context, videoID, userID string, req dto.UpdateVideoRequest, thumbnail *domain.UploadFile) (*dto.UpdateVideoResponse, error) {
	args := m.Called(ctx, videoID, userID, req, thumbnail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UpdateVideoResponse), args.Error(1)
}

func (m *MockVideoService) DeleteVideo(ctx context.Context, videoID, userID string) (*dto.DeleteVideoResponse, error) {
	args := m.Called(ctx, videoID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DeleteVideoResponse), args.Error(1)
}

func (m *MockVideoService) TogglePublish(ctx context.Context, videoID, userID string) (*domain.Video, error) {
	args := m.Called(ctx, videoID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

var _ portssvc.VideoSvcFacade = (*MockVideoService)(nil)

// --- Mock LikeService ---
type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) ToggleReaction(ctx context.Context, target domain.LikeTarget, targetID, userID string, reaction domain.Reaction) (*domain.Like, error) {
	args := m.Called(ctx, target, targetID, userID, reaction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Like), args.Error(1)
}

func (m *MockLikeService) GetLikedVideos(ctx context.Context, userID string) ([]domain.LikedVideo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LikedVideo), args.Error(1)
}

var _ portssvc.LikeSvcFacade = (*MockLikeService)(nil)

// --- Mock SubscriptionService ---
type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) ToggleSubscription(ctx context.Context, subscriberID, channelID string) (*domain.Subscription, error) {
	args := m.Called(ctx, subscriberID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) GetChannelSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) GetSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error) {
	args := m.Called(ctx, subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subscription), args.Error(1)
}

var _ portssvc.SubscriptionSvcFacade = (*MockSubscriptionService)(nil)

// --- Mock PlaylistService ---
type MockPlaylistService struct {
	mock.Mock
}

func playlistOrNil(args mock.Arguments) (*domain.Playlist, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistService) GetUserPlaylists(ctx context.Context, userID string) ([]domain.Playlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Playlist), args.Error(1)
}

func (m *MockPlaylistService) GetPlaylistByID(ctx context.Context, playlistID string) (*domain.PlaylistDetails, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaylistDetails), args.Error(1)
}

func (m *MockPlaylistService) CreatePlaylist(ctx context.Context, ownerID string, req dto.CreatePlaylistRequest) (*domain.Playlist, error) {
	return playlistOrNil(m.Called(ctx, ownerID, req))
}

func (m *MockPlaylistService) UpdatePlaylist(ctx context.Context, playlistID, userID string, req dto.UpdatePlaylistRequest) (*domain.Playlist, error) {
	return playlistOrNil(m.Called(ctx, playlistID, userID, req))
}

func (m *MockPlaylistService) DeletePlaylist(ctx context.Context, playlistID, userID string) (*domain.Playlist, error) {
	return playlistOrNil(m.Called(ctx, playlistID, userID))
}

func (m *MockPlaylistService) AddVideoToPlaylist(ctx context.Context, playlistID, videoID, userID string) (*domain.Playlist, error) {
	return playlistOrNil(m.Called(ctx, playlistID, videoID, userID))
}

func (m *MockPlaylistService) RemoveVideoFromPlaylist(ctx context.Context, playlistID, videoID, userID string) (*domain.Playlist, error) {
	return playlistOrNil(m.Called(ctx, playlistID, videoID, userID))
}

var _ portssvc.PlaylistSvcFacade = (*MockPlaylistService)(nil)

// --- Mock CommentService ---
type MockCommentService struct {
	mock.Mock
}

func commentOrNil(args mock.Arguments) (*domain.Comment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentService) AddComment(ctx context.Context, videoID, userID string, req dto.CommentRequest) (*domain.Comment, error) {
	return commentOrNil(m.Called(ctx, videoID, userID, req))
}

func (m *MockCommentService) UpdateComment(ctx context.Context, commentID, userID string, req dto.CommentRequest) (*domain.Comment, error) {
	return commentOrNil(m.Called(ctx, commentID, userID, req))
}

func (m *MockCommentService) DeleteComment(ctx context.Context, commentID, userID string) (*domain.Comment, error) {
	return commentOrNil(m.Called(ctx, commentID, userID))
}

func (m *MockCommentService) GetVideoComments(ctx context.Context, videoID string) ([]domain.Comment, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

var _ portssvc.CommentSvcFacade = (*MockCommentService)(nil)

// fakeUsers backs the auth gate.
type fakeUsers map[string]*domain.User

func (f fakeUsers) FindPublicUserByID(_ context.Context, userID string) (*domain.User, error) {
	if u, ok := f[userID]; ok {
		return u, nil
	}
	return nil, apperrors.ErrNotFound
}

type fakeHealth struct{ err error }

func (f fakeHealth) Ping(context.Context) error { return f.err }
