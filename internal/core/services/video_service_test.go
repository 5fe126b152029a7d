package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/core/services"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VideoServiceTestSuite struct {
	suite.Suite
	ctx           context.Context
	mockVideoRepo *MockVideoRepository
	mockMedia     *MockMediaStorage
	service       portssvc.VideoSvcFacade
}

func (suite *VideoServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockVideoRepo = new(MockVideoRepository)
	suite.mockMedia = new(MockMediaStorage)
	suite.service = services.NewVideoService(suite.mockVideoRepo, suite.mockMedia)
}

func sampleVideo() *domain.Video {
	return &domain.Video{
		VideoID:     "v1",
		OwnerID:     "owner",
		Title:       "Intro",
		Description: "First upload",
		VideoFile:   domain.MediaAsset{URL: "https://media/v.mp4", PublicID: "video-id", ResourceType: domain.MediaKindVideo},
		Thumbnail:   domain.MediaAsset{URL: "https://media/t.png", PublicID: "thumb-id", ResourceType: domain.MediaKindImage},
		IsPublished: true,
	}
}

func (suite *VideoServiceTestSuite) TestPublishVideo_Success() {
	thumb := &domain.MediaAsset{URL: "t", PublicID: "thumb-id"}
	vid := &domain.MediaAsset{URL: "v", PublicID: "video-id", Duration: decimal.RequireFromString("12.5")}
	suite.mockMedia.On("Upload", suite.ctx, mock.MatchedBy(func(f domain.UploadFile) bool { return f.Kind == domain.MediaKindImage })).Return(thumb, nil).Once()
	suite.mockMedia.On("Upload", suite.ctx, mock.MatchedBy(func(f domain.UploadFile) bool { return f.Kind == domain.MediaKindVideo })).Return(vid, nil).Once()
	suite.mockVideoRepo.On("SaveVideo", suite.ctx, mock.MatchedBy(func(v domain.Video) bool {
		return v.OwnerID == "owner" && v.Title == "Intro" && v.IsPublished && v.Duration.Equal(decimal.RequireFromString("12.5"))
	})).Return(nil).Once()

	video, err := suite.service.PublishVideo(suite.ctx, "owner",
		dto.PublishVideoRequest{Title: " Intro ", Description: "First"},
		domain.UploadFile{FieldName: "thumbnail", Kind: domain.MediaKindImage, Content: strings.NewReader("t")},
		domain.UploadFile{FieldName: "videoFile", Kind: domain.MediaKindVideo, Content: strings.NewReader("v")})

	suite.Require().NoError(err)
	suite.NotEmpty(video.VideoID)
	suite.Equal("video-id", video.VideoFile.PublicID)
	suite.mockVideoRepo.AssertExpectations(suite.T())
}

func (suite *VideoServiceTestSuite) TestPublishVideo_MissingFiles() {
	_, err := suite.service.PublishVideo(suite.ctx, "owner", dto.PublishVideoRequest{Title: "a", Description: "b"}, domain.UploadFile{}, domain.UploadFile{})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *VideoServiceTestSuite) TestGetVideoByID_RecordsView() {
	video := sampleVideo()
	video.Views = 4
	suite.mockVideoRepo.On("FindVideoByID", suite.ctx, "v1").Return(video, nil).Once()
	suite.mockVideoRepo.On("RecordView", suite.ctx, "v1", "viewer").Return(nil).Once()

	got, err := suite.service.GetVideoByID(suite.ctx, "v1", "viewer")

	suite.Require().NoError(err)
	suite.Equal(int64(5), got.Views)
	suite.mockVideoRepo.AssertExpectations(suite.T())
}

func (suite *VideoServiceTestSuite) TestGetVideoByID_UnpublishedHiddenFromOthers() {
	video := sampleVideo()
	video.IsPublished = false
	suite.mockVideoRepo.On("FindVideoByID", suite.ctx, "v1").Return(video, nil).Once()

	_, err := suite.service.GetVideoByID(suite.ctx, "v1", "")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockVideoRepo.AssertNotCalled(suite.T(), "RecordView", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VideoServiceTestSuite) TestUpdateVideoDetails_Forbidden() {
	suite.mockVideoRepo.On("FindVideoByID", suite.ctx, "v1").Return(sampleVideo(), nil).Once()

	title := "hijack"
	_, err := suite.service.UpdateVideoDetails(suite.ctx, "v1", "intruder", dto.UpdateVideoRequest{Title: &title}, nil)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockVideoRepo.AssertNotCalled(suite.T(), "UpdateVideoDetails", mock.Anything, mock.Anything)
}

func (suite *VideoServiceTestSuite) TestUpdateVideoDetails_NewThumbnail() {
	current := sampleVideo()
	newThumb := &domain.MediaAsset{URL: "t2", PublicID: "thumb-2"}
	title := "Renamed"
	suite.mockVideoRepo.On("FindVideoByID", suite.ctx, "v1").Return(current, nil).Once()
	suite.mockMedia.On("Upload", suite.ctx, mock.Anything).Return(newThumb, nil).Once()
	suite.mockVideoRepo.On("UpdateVideoDetails", suite.ctx, mock.MatchedBy(func(v domain.Video) bool {
		return v.Title == "Renamed" && v.Description == "First upload" && v.Thumbnail.PublicID == "thumb-2"
	})).Return(&domain.Video{VideoID: "v1", Title: "Renamed"}, nil).Once()
	suite.mockMedia.On("Delete", suite.ctx, current.Thumbnail).Return(&domain.MediaDeleteResult{PublicID: "thumb-id", Result: "ok"}, nil).Once()

	resp, err := suite.service.UpdateVideoDetails(suite.ctx, "v1", "owner", dto.UpdateVideoRequest{Title: &title},
		&domain.UploadFile{FieldName: "thumbnail", Content: strings.NewReader("t")})

	suite.Require().NoError(err)
	suite.Equal("Renamed", resp.Video.Title)
	suite.Require().NotNil(resp.DeleteThumbnail)
	suite.Equal("ok", resp.DeleteThumbnail.Result)
}

func (suite *VideoServiceTestSuite) TestDeleteVideo_DeletesAssets() {
	video := sampleVideo()
	suite.mockVideoRepo.On("FindVideoByID", suite.ctx, "v1").Return(video, nil).Once()
	suite.mockVideoRepo.On("DeleteVideo", suite.ctx, "v1").Return(nil).Once()
	suite.mockMedia.On("Delete", suite.ctx, video.Thumbnail).Return(&domain.MediaDeleteResult{PublicID: "thumb-id", Result: "ok"}, nil).Once()
	suite.mockMedia.On("Delete", suite.ctx, video.VideoFile).Return(&domain.MediaDeleteResult{PublicID: "video-id", Result: "ok"}, nil).Once()

	resp, err := suite.service.DeleteVideo(suite.ctx, "v1", "owner")

	suite.Require().NoError(err)
	suite.Equal("v1", resp.DeletedVideo.VideoID)
	suite.Equal("thumb-id", resp.DeleteThumbnail.PublicID)
	suite.Equal("video-id", resp.DeleteVideoFile.PublicID)
	suite.mockMedia.AssertExpectations(suite.T())
}

func (suite *VideoServiceTestSuite) TestTogglePublish() {
	suite.mockVideoRepo.On("FindVideoByID", suite.ctx, "v1").Return(sampleVideo(), nil).Once()
	suite.mockVideoRepo.On("SetPublished", suite.ctx, "v1", false).Return(&domain.Video{VideoID: "v1", IsPublished: false}, nil).Once()

	video, err := suite.service.TogglePublish(suite.ctx, "v1", "owner")

	suite.Require().NoError(err)
	suite.False(video.IsPublished)
}

func (suite *VideoServiceTestSuite) TestListVideos_Empty() {
	suite.mockVideoRepo.On("ListPublishedVideos", suite.ctx).Return(nil, nil).Once()

	videos, err := suite.service.ListVideos(suite.ctx)

	suite.Require().NoError(err)
	suite.NotNil(videos)
	suite.Empty(videos)
}

func TestVideoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VideoServiceTestSuite))
}
