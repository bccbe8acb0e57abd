package auth_test

import (
	"net/http"
	"testing"

	"bookmark-manager-backend/internal/auth"
	"bookmark-manager-backend/internal/database/models"
	"bookmark-manager-backend/internal/mocks"
	"bookmark-manager-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AuthMiddlewareTestSuite tests RequireAuth against real issued tokens
type AuthMiddlewareTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockUsers *mocks.MockUserRepositoryInterface
	svc       *auth.AuthService
	http      *testutils.HTTPTestSuite
}

func (suite *AuthMiddlewareTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.svc = auth.NewAuthService(suite.mockUsers, validator.New(), "test-secret")
	suite.http = testutils.SetupHTTPTest()

	middleware := auth.NewAuthMiddleware(suite.svc)
	suite.http.Router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		uid, _ := auth.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": uid, "username": c.GetString("username")})
	})
}

func (suite *AuthMiddlewareTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthMiddlewareTestSuite) registerToken() string {
	suite.mockUsers.EXPECT().GetByEmail("alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUsers.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		user.ID = 7
		return nil
	})

	token, err := suite.svc.Register(&auth.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "s3cret-pass",
	})
	suite.Require().NoError(err)
	return token.Token
}

func (suite *AuthMiddlewareTestSuite) TestMissingHeader() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/protected", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authorization header is required")
}

func (suite *AuthMiddlewareTestSuite) TestMalformedHeader() {
	recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/protected", nil,
		map[string]string{"Authorization": "Token abc"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Invalid authorization header format")
}

func (suite *AuthMiddlewareTestSuite) TestInvalidToken() {
	recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/protected", nil,
		map[string]string{"Authorization": "Bearer not.a.token"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Invalid token")
}

func (suite *AuthMiddlewareTestSuite) TestValidTokenSetsContext() {
	token := suite.registerToken()

	recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/protected", nil,
		map[string]string{"Authorization": "Bearer " + token})

	var resp map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(float64(7), resp["user_id"])
	suite.Equal("alice", resp["username"])
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
