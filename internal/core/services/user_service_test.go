package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/core/services"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/SscSPs/videotube_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockUserRepo *MockUserRepository
	mockMedia    *MockMediaStorage
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockMedia = new(MockMediaStorage)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockMedia)
}

func imageFile(field string) domain.UploadFile {
	return domain.UploadFile{FieldName: field, FileName: field + ".png", Kind: domain.MediaKindImage, Content: strings.NewReader("png")}
}

func registerRequest() dto.RegisterUserRequest {
	return dto.RegisterUserRequest{Username: "Alice", Email: "Alice@X.com", FullName: "Alice Doe", Password: "pw123"}
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	avatar := &domain.MediaAsset{URL: "https://media/avatar.png", PublicID: "avatar-1"}
	suite.mockUserRepo.On("ExistsByUsernameOrEmail", suite.ctx, "alice", "alice@x.com").Return(false, nil).Once()
	suite.mockMedia.On("Upload", suite.ctx, mock.MatchedBy(func(f domain.UploadFile) bool { return f.FieldName == "avatar" })).Return(avatar, nil).Once()
	suite.mockUserRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "alice" && u.Email == "alice@x.com" && u.PasswordHash != "pw123" &&
			utils.CheckPasswordHash("pw123", u.PasswordHash) && u.Avatar.PublicID == "avatar-1" && u.CoverImage == nil
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(suite.ctx, registerRequest(), imageFile("avatar"), nil)

	suite.Require().NoError(err)
	suite.Equal("alice", user.Username)
	suite.Empty(user.PasswordHash)
	suite.Nil(user.RefreshToken)
	suite.Equal(domain.ProviderLocal, user.AuthProvider)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_EmptyField() {
	req := registerRequest()
	req.FullName = "   "

	_, err := suite.service.RegisterUser(suite.ctx, req, imageFile("avatar"), nil)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestRegisterUser_MissingAvatar() {
	_, err := suite.service.RegisterUser(suite.ctx, registerRequest(), domain.UploadFile{}, nil)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestRegisterUser_Duplicate() {
	suite.mockUserRepo.On("ExistsByUsernameOrEmail", suite.ctx, "alice", "alice@x.com").Return(true, nil).Once()

	_, err := suite.service.RegisterUser(suite.ctx, registerRequest(), imageFile("avatar"), nil)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockMedia.AssertNotCalled(suite.T(), "Upload", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegisterUser_SaveFailsCleansUpUploads() {
	avatar := &domain.MediaAsset{URL: "https://media/a.png", PublicID: "a"}
	cover := &domain.MediaAsset{URL: "https://media/c.png", PublicID: "c"}
	suite.mockUserRepo.On("ExistsByUsernameOrEmail", suite.ctx, "alice", "alice@x.com").Return(false, nil).Once()
	suite.mockMedia.On("Upload", suite.ctx, mock.MatchedBy(func(f domain.UploadFile) bool { return f.FieldName == "avatar" })).Return(avatar, nil).Once()
	suite.mockMedia.On("Upload", suite.ctx, mock.MatchedBy(func(f domain.UploadFile) bool { return f.FieldName == "coverImage" })).Return(cover, nil).Once()
	suite.mockUserRepo.On("SaveUser", suite.ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()
	suite.mockMedia.On("Delete", suite.ctx, *avatar).Return(&domain.MediaDeleteResult{PublicID: "a", Result: "ok"}, nil).Once()
	suite.mockMedia.On("Delete", suite.ctx, *cover).Return(&domain.MediaDeleteResult{PublicID: "c", Result: "ok"}, nil).Once()

	coverFile := imageFile("coverImage")
	_, err := suite.service.RegisterUser(suite.ctx, registerRequest(), imageFile("avatar"), &coverFile)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockMedia.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateAccountDetails_RequiresAField() {
	_, err := suite.service.UpdateAccountDetails(suite.ctx, "u1", dto.UpdateAccountDetailsRequest{})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestUpdateAccountDetails_KeepsOmittedField() {
	current := &domain.User{UserID: "u1", Email: "alice@x.com", FullName: "Alice"}
	updated := &domain.User{UserID: "u1", Email: "alice@x.com", FullName: "Alice Cooper"}
	name := " Alice Cooper "
	suite.mockUserRepo.On("FindPublicUserByID", suite.ctx, "u1").Return(current, nil).Once()
	suite.mockUserRepo.On("UpdateAccountDetails", suite.ctx, "u1", "alice@x.com", "Alice Cooper").Return(updated, nil).Once()

	user, err := suite.service.UpdateAccountDetails(suite.ctx, "u1", dto.UpdateAccountDetailsRequest{FullName: &name})

	suite.Require().NoError(err)
	suite.Equal("Alice Cooper", user.FullName)
}

func (suite *UserServiceTestSuite) TestUpdateAvatar_ReportsOldAssetDeletion() {
	current := &domain.User{UserID: "u1", Avatar: domain.MediaAsset{URL: "old", PublicID: "old-id"}}
	fresh := &domain.MediaAsset{URL: "new", PublicID: "new-id"}
	updated := &domain.User{UserID: "u1", Avatar: *fresh}
	suite.mockUserRepo.On("FindPublicUserByID", suite.ctx, "u1").Return(current, nil).Once()
	suite.mockMedia.On("Upload", suite.ctx, mock.Anything).Return(fresh, nil).Once()
	suite.mockUserRepo.On("UpdateAvatar", suite.ctx, "u1", *fresh).Return(updated, nil).Once()
	suite.mockMedia.On("Delete", suite.ctx, current.Avatar).Return(nil, errors.New("host unavailable")).Once()

	user, result, err := suite.service.UpdateAvatar(suite.ctx, "u1", imageFile("avatar"))

	suite.Require().NoError(err)
	suite.Equal("new-id", user.Avatar.PublicID)
	suite.Require().NotNil(result)
	suite.Equal("old-id", result.PublicID)
	suite.Equal("error", result.Result)
}

func (suite *UserServiceTestSuite) TestUpdateCoverImage_NoPreviousCover() {
	current := &domain.User{UserID: "u1"}
	fresh := &domain.MediaAsset{URL: "cover", PublicID: "cover-id"}
	suite.mockUserRepo.On("FindPublicUserByID", suite.ctx, "u1").Return(current, nil).Once()
	suite.mockMedia.On("Upload", suite.ctx, mock.Anything).Return(fresh, nil).Once()
	suite.mockUserRepo.On("UpdateCoverImage", suite.ctx, "u1", *fresh).Return(&domain.User{UserID: "u1", CoverImage: fresh}, nil).Once()

	_, result, err := suite.service.UpdateCoverImage(suite.ctx, "u1", imageFile("coverImage"))

	suite.Require().NoError(err)
	suite.Nil(result)
	suite.mockMedia.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestGetChannelProfile_NotFound() {
	suite.mockUserRepo.On("FindChannelProfile", suite.ctx, "ghost", "viewer").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetChannelProfile(suite.ctx, "Ghost", "viewer")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestWatchHistory() {
	suite.mockUserRepo.On("ListWatchHistory", suite.ctx, "u1").Return(nil, nil).Once()
	history, err := suite.service.GetWatchHistory(suite.ctx, "u1")
	suite.Require().NoError(err)
	suite.NotNil(history)
	suite.Empty(history)

	suite.mockUserRepo.On("RemoveFromWatchHistory", suite.ctx, "u1", "v1").Return(apperrors.ErrNotFound).Once()
	err = suite.service.RemoveFromWatchHistory(suite.ctx, "u1", "v1")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockUserRepo.On("ClearWatchHistory", suite.ctx, "u1").Return(int64(3), nil).Once()
	n, err := suite.service.ClearWatchHistory(suite.ctx, "u1")
	suite.Require().NoError(err)
	suite.Equal(int64(3), n)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
