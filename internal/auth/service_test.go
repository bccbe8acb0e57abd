package auth_test

import (
	"testing"

	"bookmark-manager-backend/internal/auth"
	"bookmark-manager-backend/internal/database/models"
	apperrors "bookmark-manager-backend/internal/errors"
	"bookmark-manager-backend/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceTestSuite tests the AuthService on a user repository mock
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockUsers *mocks.MockUserRepositoryInterface
	svc       *auth.AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.svc = auth.NewAuthService(suite.mockUsers, validator.New(), "test-secret")
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) TestRegisterIssuesValidToken() {
	suite.mockUsers.EXPECT().GetByEmail("alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUsers.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		suite.NotEqual("s3cret-pass", user.PasswordHash)
		user.ID = 3
		return nil
	})

	token, err := suite.svc.Register(&auth.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "s3cret-pass",
	})
	suite.NoError(err)
	suite.Equal(int64(3), token.UserID)
	suite.Equal("alice", token.Username)

	claims, err := suite.svc.ValidateJWT(token.Token)
	suite.NoError(err)
	suite.Equal(int64(3), claims.UserID)
	suite.Equal("alice@example.com", claims.Email)
}

func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	suite.mockUsers.EXPECT().GetByEmail("alice@example.com").Return(&models.User{ID: 1}, nil)

	_, err := suite.svc.Register(&auth.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "s3cret-pass",
	})
	suite.ErrorIs(err, apperrors.ErrUserExists)
}

func (suite *AuthServiceTestSuite) TestRegisterInvalidEmail() {
	_, err := suite.svc.Register(&auth.RegisterRequest{
		Email:    "not-an-email",
		Username: "alice",
		Password: "s3cret-pass",
	})
	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *AuthServiceTestSuite) TestLogin() {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	suite.Require().NoError(err)
	suite.mockUsers.EXPECT().GetByEmail("alice@example.com").Return(&models.User{
		ID: 3, Email: "alice@example.com", Username: "alice", PasswordHash: string(hash),
	}, nil)

	token, err := suite.svc.Login(&auth.LoginRequest{Email: "alice@example.com", Password: "s3cret-pass"})
	suite.NoError(err)
	suite.Equal(int64(3), token.UserID)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	suite.Require().NoError(err)
	suite.mockUsers.EXPECT().GetByEmail("alice@example.com").Return(&models.User{
		ID: 3, Email: "alice@example.com", PasswordHash: string(hash),
	}, nil)

	_, err = suite.svc.Login(&auth.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockUsers.EXPECT().GetByEmail("ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.Login(&auth.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestValidateJWTRejectsForeignSignature() {
	other := auth.NewAuthService(suite.mockUsers, validator.New(), "other-secret")
	suite.mockUsers.EXPECT().GetByEmail("alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUsers.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		user.ID = 3
		return nil
	})

	token, err := other.Register(&auth.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "s3cret-pass",
	})
	suite.Require().NoError(err)

	_, err = suite.svc.ValidateJWT(token.Token)
	suite.Error(err)
}

func (suite *AuthServiceTestSuite) TestValidateJWTGarbage() {
	_, err := suite.svc.ValidateJWT("not.a.token")
	suite.Error(err)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
