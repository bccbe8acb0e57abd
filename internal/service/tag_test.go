package service_test

import (
	"strings"
	"testing"

	"bookmark-manager-backend/internal/database/models"
	apperrors "bookmark-manager-backend/internal/errors"
	"bookmark-manager-backend/internal/mocks"
	"bookmark-manager-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TagServiceTestSuite tests the TagService on repository mocks
type TagServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockTags *mocks.MockTagRepositoryInterface
	svc      *service.TagService
}

func (suite *TagServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTags = mocks.NewMockTagRepositoryInterface(suite.ctrl)
	suite.svc = service.NewTagService(suite.mockTags, validator.New())
}

func (suite *TagServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TagServiceTestSuite) TestList() {
	suite.mockTags.EXPECT().List(int64(0)).Return([]models.Tag{
		{ID: 2, Name: "news", SortOrder: 10},
		{ID: 1, Name: "dev"},
	}, nil)

	tags, err := suite.svc.List(0)
	suite.NoError(err)
	suite.Len(tags, 2)
	suite.Equal("news", tags[0].Name)
}

func (suite *TagServiceTestSuite) TestCreateOversizeNameIsValidationError() {
	_, err := suite.svc.Create(0, &service.CreateTagRequest{Name: strings.Repeat("x", 61)})
	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *TagServiceTestSuite) TestCreateDuplicate() {
	suite.mockTags.EXPECT().GetByName("dev", int64(0)).Return(&models.Tag{ID: 1, Name: "dev"}, nil)

	_, err := suite.svc.Create(0, &service.CreateTagRequest{Name: "dev"})
	suite.ErrorIs(err, apperrors.ErrTagExists)
}

func (suite *TagServiceTestSuite) TestCreate() {
	suite.mockTags.EXPECT().GetByName("dev", int64(0)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTags.EXPECT().Create(gomock.Any()).DoAndReturn(func(tag *models.Tag) error {
		tag.ID = 5
		return nil
	})

	tag, err := suite.svc.Create(0, &service.CreateTagRequest{Name: "dev"})
	suite.NoError(err)
	suite.Equal(int64(5), tag.ID)
}

func (suite *TagServiceTestSuite) TestDeleteNotFound() {
	suite.mockTags.EXPECT().Delete(int64(404), int64(0)).Return(gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.svc.Delete(0, 404), apperrors.ErrTagNotFound)
}

func (suite *TagServiceTestSuite) TestUpdateRename() {
	name := "reading"
	suite.mockTags.EXPECT().GetByName("reading", int64(0)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTags.EXPECT().Update(int64(1), int64(0), map[string]interface{}{"name": "reading"}).Return(nil)
	suite.mockTags.EXPECT().GetByID(int64(1), int64(0)).Return(&models.Tag{ID: 1, Name: "reading"}, nil)

	tag, err := suite.svc.Update(0, 1, &service.UpdateTagRequest{Name: &name})
	suite.NoError(err)
	suite.Equal("reading", tag.Name)
}

func TestTagServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TagServiceTestSuite))
}
