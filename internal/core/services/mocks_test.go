package services_test

import (
	"context"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func userOrNil(v any) *domain.User {
	if v == nil {
		return nil
	}
	return v.(*domain.User)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) FindUserByLogin(ctx context.Context, username, email string) (*domain.User, error) {
	args := m.Called(ctx, username, email)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) SetRefreshToken(ctx context.Context, userID string, token *string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, clearSession bool) error {
	args := m.Called(ctx, userID, passwordHash, clearSession)
	return args.Error(0)
}

func (m *MockUserRepository) FindPublicUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindChannelProfile(ctx context.Context, username string, viewerID string) (*domain.ChannelProfile, error) {
	args := m.Called(ctx, username, viewerID)
	var profile *domain.ChannelProfile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.ChannelProfile)
	}
	return profile, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAccountDetails(ctx context.Context, userID string, email, fullName string) (*domain.User, error) {
	args := m.Called(ctx, userID, email, fullName)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, userID string, avatar domain.MediaAsset) (*domain.User, error) {
	args := m.Called(ctx, userID, avatar)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) UpdateCoverImage(ctx context.Context, userID string, cover domain.MediaAsset) (*domain.User, error) {
	args := m.Called(ctx, userID, cover)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) ListWatchHistory(ctx context.Context, userID string) ([]domain.WatchedVideo, error) {
	args := m.Called(ctx, userID)
	var history []domain.WatchedVideo
	if args.Get(0) != nil {
		history = args.Get(0).([]domain.WatchedVideo)
	}
	return history, args.Error(1)
}

func (m *MockUserRepository) RemoveFromWatchHistory(ctx context.Context, userID, videoID string) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *MockUserRepository) ClearWatchHistory(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock VideoRepository ---
type MockVideoRepository struct {
	mock.Mock
}

func videoOrNil(v any) *domain.Video {
	if v == nil {
		return nil
	}
	return v.(*domain.Video)
}

func (m *MockVideoRepository) FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error) {
	args := m.Called(ctx, videoID)
	return videoOrNil(args.Get(0)), args.Error(1)
}

func (m *MockVideoRepository) ListPublishedVideos(ctx context.Context) ([]domain.Video, error) {
	args := m.Called(ctx)
	var videos []domain.Video
	if args.Get(0) != nil {
		videos = args.Get(0).([]domain.Video)
	}
	return videos, args.Error(1)
}

func (m *MockVideoRepository) SaveVideo(ctx context.Context, video domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) UpdateVideoDetails(ctx context.Context, video domain.Video) (*domain.Video, error) {
	args := m.Called(ctx, video)
	return videoOrNil(args.Get(0)), args.Error(1)
}

func (m *MockVideoRepository) SetPublished(ctx context.Context, videoID string, published bool) (*domain.Video, error) {
	args := m.Called(ctx, videoID, published)
	return videoOrNil(args.Get(0)), args.Error(1)
}

func (m *MockVideoRepository) RecordView(ctx context.Context, videoID string, viewerID string) error {
	args := m.Called(ctx, videoID, viewerID)
	return args.Error(0)
}

func (m *MockVideoRepository) DeleteVideo(ctx context.Context, videoID string) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

// --- Mock CommentRepository ---
type MockCommentRepository struct {
	mock.Mock
}

func commentOrNil(v any) *domain.Comment {
	if v == nil {
		return nil
	}
	return v.(*domain.Comment)
}

func (m *MockCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	args := m.Called(ctx, commentID)
	return commentOrNil(args.Get(0)), args.Error(1)
}

func (m *MockCommentRepository) UpdateCommentContent(ctx context.Context, commentID, content string) (*domain.Comment, error) {
	args := m.Called(ctx, commentID, content)
	return commentOrNil(args.Get(0)), args.Error(1)
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *MockCommentRepository) ListCommentsByVideo(ctx context.Context, videoID string) ([]domain.Comment, error) {
	args := m.Called(ctx, videoID)
	var comments []domain.Comment
	if args.Get(0) != nil {
		comments = args.Get(0).([]domain.Comment)
	}
	return comments, args.Error(1)
}

// --- Mock LikeRepository ---
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) UpsertReaction(ctx context.Context, like domain.Like) (*domain.Like, bool, error) {
	args := m.Called(ctx, like)
	var saved *domain.Like
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Like)
	}
	return saved, args.Bool(1), args.Error(2)
}

func (m *MockLikeRepository) DeleteReaction(ctx context.Context, target domain.LikeTarget, targetID, likedBy string) (bool, error) {
	args := m.Called(ctx, target, targetID, likedBy)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) ListLikedVideos(ctx context.Context, likedBy string) ([]domain.LikedVideo, error) {
	args := m.Called(ctx, likedBy)
	var liked []domain.LikedVideo
	if args.Get(0) != nil {
		liked = args.Get(0).([]domain.LikedVideo)
	}
	return liked, args.Error(1)
}

// --- Mock PlaylistRepository ---
type MockPlaylistRepository struct {
	mock.Mock
}

func playlistOrNil(v any) *domain.Playlist {
	if v == nil {
		return nil
	}
	return v.(*domain.Playlist)
}

func (m *MockPlaylistRepository) FindPlaylistByID(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	args := m.Called(ctx, playlistID)
	return playlistOrNil(args.Get(0)), args.Error(1)
}

func (m *MockPlaylistRepository) FindPlaylistDetails(ctx context.Context, playlistID string) (*domain.PlaylistDetails, error) {
	args := m.Called(ctx, playlistID)
	var details *domain.PlaylistDetails
	if args.Get(0) != nil {
		details = args.Get(0).(*domain.PlaylistDetails)
	}
	return details, args.Error(1)
}

func (m *MockPlaylistRepository) ListPlaylistsByOwner(ctx context.Context, ownerID string) ([]domain.Playlist, error) {
	args := m.Called(ctx, ownerID)
	var playlists []domain.Playlist
	if args.Get(0) != nil {
		playlists = args.Get(0).([]domain.Playlist)
	}
	return playlists, args.Error(1)
}

func (m *MockPlaylistRepository) SavePlaylist(ctx context.Context, playlist domain.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) UpdatePlaylist(ctx context.Context, playlistID, name, description string) (*domain.Playlist, error) {
	args := m.Called(ctx, playlistID, name, description)
	return playlistOrNil(args.Get(0)), args.Error(1)
}

func (m *MockPlaylistRepository) DeletePlaylist(ctx context.Context, playlistID string) error {
	args := m.Called(ctx, playlistID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID string) error {
	args := m.Called(ctx, playlistID, videoID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) error {
	args := m.Called(ctx, playlistID, videoID)
	return args.Error(0)
}

// --- Mock SubscriptionRepository ---
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) CreateSubscription(ctx context.Context, sub domain.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriberID, channelID string) (bool, error) {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error) {
	args := m.Called(ctx, channelID)
	var subs []domain.Subscription
	if args.Get(0) != nil {
		subs = args.Get(0).([]domain.Subscription)
	}
	return subs, args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error) {
	args := m.Called(ctx, subscriberID)
	var subs []domain.Subscription
	if args.Get(0) != nil {
		subs = args.Get(0).([]domain.Subscription)
	}
	return subs, args.Error(1)
}

// --- Mock MediaStorage ---
type MockMediaStorage struct {
	mock.Mock
}

func (m *MockMediaStorage) Upload(ctx context.Context, file domain.UploadFile) (*domain.MediaAsset, error) {
	args := m.Called(ctx, file)
	var asset *domain.MediaAsset
	if args.Get(0) != nil {
		asset = args.Get(0).(*domain.MediaAsset)
	}
	return asset, args.Error(1)
}

func (m *MockMediaStorage) Delete(ctx context.Context, asset domain.MediaAsset) (*domain.MediaDeleteResult, error) {
	args := m.Called(ctx, asset)
	var result *domain.MediaDeleteResult
	if args.Get(0) != nil {
		result = args.Get(0).(*domain.MediaDeleteResult)
	}
	return result, args.Error(1)
}

// --- Mock GoogleOAuthSvc ---
type MockGoogleOAuth struct {
	mock.Mock
}

func (m *MockGoogleOAuth) ExchangeCode(ctx context.Context, code string) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, code)
	var info *domain.GoogleUserInfo
	if args.Get(0) != nil {
		info = args.Get(0).(*domain.GoogleUserInfo)
	}
	return info, args.Error(1)
}
