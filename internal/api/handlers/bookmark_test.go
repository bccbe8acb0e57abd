package handlers_test

import (
	"net/http"
	"testing"

	"bookmark-manager-backend/internal/api/handlers"
	apperrors "bookmark-manager-backend/internal/errors"
	"bookmark-manager-backend/internal/mocks"
	"bookmark-manager-backend/internal/service"
	"bookmark-manager-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BookmarkHandlerTestSuite tests the bookmark HTTP handlers on service mocks
type BookmarkHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockBookmarkServiceInterface
	mockExport  *mocks.MockExportServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *BookmarkHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockBookmarkServiceInterface(suite.ctrl)
	suite.mockExport = mocks.NewMockExportServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()

	public := handlers.NewBookmarkHandler(suite.mockService, suite.mockExport, "public", false)
	owned := handlers.NewBookmarkHandler(suite.mockService, suite.mockExport, "my", true)

	g := suite.http.Router.Group("/api/v1/bookmarks")
	g.GET("", public.ListBookmarks)
	g.POST("", public.CreateBookmark)
	g.GET("/export", public.ExportBookmarks)
	g.POST("/batch-delete", public.BatchDeleteBookmarks)
	g.POST("/sort/reconcile", public.ReconcileSortBookmarks)
	g.GET("/:id", public.GetBookmark)
	g.DELETE("/:id", public.DeleteBookmark)

	// Owner routes with a stand-in for the auth middleware
	my := suite.http.Router.Group("/api/v1/my/bookmarks")
	my.Use(func(c *gin.Context) {
		if uid := c.GetHeader("X-Test-User"); uid == "7" {
			c.Set("user_id", int64(7))
		}
	})
	my.GET("", owned.ListBookmarks)
}

func (suite *BookmarkHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BookmarkHandlerTestSuite) TestListBookmarks() {
	suite.mockService.EXPECT().FindMany(int64(0), gomock.Any()).Return(&service.BookmarkListResponse{
		List:  []service.BookmarkResponse{{ID: 1, Name: "Go"}},
		Total: 1, Page: 1, Limit: 20,
	}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/bookmarks?page=1&limit=20", nil)

	var resp service.BookmarkListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(int64(1), resp.Total)
}

func (suite *BookmarkHandlerTestSuite) TestListBookmarksBadLimit() {
	suite.mockService.EXPECT().FindMany(int64(0), gomock.Any()).Return(nil, apperrors.ErrInvalidPageSize)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/bookmarks?limit=15", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func (suite *BookmarkHandlerTestSuite) TestCreateBookmarkConflict() {
	suite.mockService.EXPECT().Insert(int64(0), gomock.Any()).Return(nil, apperrors.ErrBookmarkExists)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/bookmarks", map[string]string{
		"name": "Go", "url": "https://go.dev",
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

func (suite *BookmarkHandlerTestSuite) TestCreateBookmarkValidationError() {
	suite.mockService.EXPECT().Insert(int64(0), gomock.Any()).
		Return(nil, apperrors.NewValidationError("name", "must be at most 200 characters"))

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/bookmarks", map[string]string{
		"name": "Go", "url": "https://go.dev",
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation error")
}

func (suite *BookmarkHandlerTestSuite) TestGetBookmarkNotFound() {
	suite.mockService.EXPECT().Get(int64(0), int64(404)).Return(nil, apperrors.ErrBookmarkNotFound)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/bookmarks/404", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

func (suite *BookmarkHandlerTestSuite) TestGetBookmarkBadID() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/bookmarks/abc", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid bookmark ID")
}

func (suite *BookmarkHandlerTestSuite) TestDeleteBookmark() {
	suite.mockService.EXPECT().Delete(int64(0), int64(5)).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/api/v1/bookmarks/5", nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *BookmarkHandlerTestSuite) TestBatchDelete() {
	suite.mockService.EXPECT().DeleteMany(int64(0), []int64{1, 2}).Return(int64(2), nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/bookmarks/batch-delete", map[string]interface{}{
		"ids": []int64{1, 2},
	})

	var resp map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(float64(2), resp["deleted"])
}

func (suite *BookmarkHandlerTestSuite) TestReconcileSort() {
	suite.mockService.EXPECT().ReconcileSort(int64(0), gomock.Any()).Return([]service.OrderUpdate{
		{ID: 2, SortOrder: 12},
	}, nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/bookmarks/sort/reconcile", map[string]interface{}{
		"items": []map[string]int64{{"id": 2, "sort_order": 5}},
	})
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *BookmarkHandlerTestSuite) TestExportHeaders() {
	suite.mockExport.EXPECT().ExportHTML(int64(0)).Return("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n", nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/bookmarks/export", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("text/html;charset=utf-8", recorder.Header().Get("Content-Type"))
	suite.Contains(recorder.Header().Get("Content-Disposition"), "public-bookmarks-")
	suite.Contains(recorder.Header().Get("Content-Disposition"), ".html")
	suite.Contains(recorder.Body.String(), "NETSCAPE-Bookmark-file-1")
}

func (suite *BookmarkHandlerTestSuite) TestOwnerRouteRequiresUser() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/my/bookmarks", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "authentication required")
}

func (suite *BookmarkHandlerTestSuite) TestOwnerRouteUsesContextUser() {
	suite.mockService.EXPECT().FindMany(int64(7), gomock.Any()).Return(&service.BookmarkListResponse{
		List: []service.BookmarkResponse{}, Page: 1, Limit: 20,
	}, nil)

	recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/api/v1/my/bookmarks", nil,
		map[string]string{"X-Test-User": "7"})
	suite.Equal(http.StatusOK, recorder.Code)
}

func TestBookmarkHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BookmarkHandlerTestSuite))
}
