package repository

import (
	"testing"

	"bookmark-manager-backend/internal/database/models"
	"bookmark-manager-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BookmarkRepositoryTestSuite tests the BookmarkRepository
type BookmarkRepositoryTestSuite struct {
	testutils.BaseTestSuite
	repo    *BookmarkRepository
	tagRepo *BookmarkTagRepository
}

// SetupSuite runs before all tests in the suite
func (suite *BookmarkRepositoryTestSuite) SetupSuite() {
	suite.BaseTestSuite.SetupSuite()
	suite.repo = NewBookmarkRepository(suite.DB)
	suite.tagRepo = NewBookmarkTagRepository(suite.DB)
}

// SetupTest runs before each test
func (suite *BookmarkRepositoryTestSuite) SetupTest() {
	suite.CleanTestDB()
}

func (suite *BookmarkRepositoryTestSuite) TestCreateAndGet() {
	bookmark := testutils.CreateTestBookmark(suite.DB, 0, "alpha")

	found, err := suite.repo.GetByID(bookmark.ID, 0)
	suite.NoError(err)
	suite.Equal(bookmark.Name, found.Name)

	byName, err := suite.repo.GetByName(bookmark.Name, 0)
	suite.NoError(err)
	suite.Equal(bookmark.ID, byName.ID)

	byURL, err := suite.repo.GetByURL(bookmark.URL, 0)
	suite.NoError(err)
	suite.Equal(bookmark.ID, byURL.ID)
}

func (suite *BookmarkRepositoryTestSuite) TestGetScopedByOwner() {
	mine := testutils.CreateTestBookmark(suite.DB, 7, "mine")

	// Visible in its own scope
	_, err := suite.repo.GetByID(mine.ID, 7)
	suite.NoError(err)

	// Invisible from the public scope and from another user
	_, err = suite.repo.GetByID(mine.ID, 0)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = suite.repo.GetByID(mine.ID, 8)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *BookmarkRepositoryTestSuite) TestUpdates() {
	bookmark := testutils.CreateTestBookmark(suite.DB, 0, "patch")

	err := suite.repo.Updates(bookmark.ID, 0, map[string]interface{}{"name": "renamed"})
	suite.NoError(err)

	found, err := suite.repo.GetByID(bookmark.ID, 0)
	suite.NoError(err)
	suite.Equal("renamed", found.Name)

	// Missing rows surface as record-not-found
	err = suite.repo.Updates(99999, 0, map[string]interface{}{"name": "x"})
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *BookmarkRepositoryTestSuite) TestDelete() {
	bookmark := testutils.CreateTestBookmark(suite.DB, 0, "gone")

	suite.NoError(suite.repo.Delete(bookmark.ID, 0))

	_, err := suite.repo.GetByID(bookmark.ID, 0)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.repo.Delete(bookmark.ID, 0), gorm.ErrRecordNotFound)
}

func (suite *BookmarkRepositoryTestSuite) TestDeleteMany() {
	a := testutils.CreateTestBookmark(suite.DB, 0, "a")
	b := testutils.CreateTestBookmark(suite.DB, 0, "b")
	other := testutils.CreateTestBookmark(suite.DB, 5, "owned")

	// The foreign row is skipped, not deleted
	deleted, err := suite.repo.DeleteMany([]int64{a.ID, b.ID, other.ID}, 0)
	suite.NoError(err)
	suite.Equal(int64(2), deleted)

	_, err = suite.repo.GetByID(other.ID, 5)
	suite.NoError(err)

	deleted, err = suite.repo.DeleteMany([]int64{}, 0)
	suite.NoError(err)
	suite.Equal(int64(0), deleted)
}

func (suite *BookmarkRepositoryTestSuite) TestFindManyKeyword() {
	testutils.CreateTestBookmark(suite.DB, 0, "other")
	git := &models.Bookmark{UserID: 0, Name: "Git Book", URL: "https://git-scm.com/book", Pinyin: "git book"}
	suite.NoError(suite.DB.Create(git).Error)

	filter := BookmarkFilter{UserID: 0, Keyword: "GIT"}
	found, err := suite.repo.FindMany(filter, 20, 0, "created_at DESC")
	suite.NoError(err)
	suite.Len(found, 1)
	suite.Equal(git.ID, found[0].ID)

	// The count query must agree with the list query
	total, err := suite.repo.Count(filter)
	suite.NoError(err)
	suite.Equal(int64(1), total)
}

func (suite *BookmarkRepositoryTestSuite) TestFindManyTagANDSemantics() {
	both := testutils.CreateTestBookmark(suite.DB, 0, "both")
	one := testutils.CreateTestBookmark(suite.DB, 0, "one")
	testutils.AttachTag(suite.DB, both.ID, 1)
	testutils.AttachTag(suite.DB, both.ID, 2)
	testutils.AttachTag(suite.DB, one.ID, 1)

	// Both tags required: only the bookmark carrying both qualifies
	found, err := suite.repo.FindMany(BookmarkFilter{UserID: 0, TagIDs: []int64{1, 2}}, 20, 0, "id ASC")
	suite.NoError(err)
	suite.Len(found, 1)
	suite.Equal(both.ID, found[0].ID)

	// A bookmark tagged {1,2} is excluded by a query for {1,3}
	found, err = suite.repo.FindMany(BookmarkFilter{UserID: 0, TagIDs: []int64{1, 3}}, 20, 0, "id ASC")
	suite.NoError(err)
	suite.Empty(found)
}

func (suite *BookmarkRepositoryTestSuite) TestFindManyPagination() {
	for _, suffix := range []string{"p1", "p2", "p3"} {
		testutils.CreateTestBookmark(suite.DB, 0, suffix)
	}

	filter := BookmarkFilter{UserID: 0}
	page, err := suite.repo.FindMany(filter, 2, 0, "id ASC")
	suite.NoError(err)
	suite.Len(page, 2)

	page, err = suite.repo.FindMany(filter, 2, 2, "id ASC")
	suite.NoError(err)
	suite.Len(page, 1)

	// Beyond the data: empty page, not an error
	page, err = suite.repo.FindMany(filter, 2, 4, "id ASC")
	suite.NoError(err)
	suite.Empty(page)
}

func (suite *BookmarkRepositoryTestSuite) TestRandomScopeAndCardinality() {
	for _, suffix := range []string{"r1", "r2", "r3"} {
		testutils.CreateTestBookmark(suite.DB, 0, suffix)
	}
	testutils.CreateTestBookmark(suite.DB, 9, "foreign")

	found, err := suite.repo.Random(0, 2)
	suite.NoError(err)
	suite.Len(found, 2)
	for _, b := range found {
		suite.Equal(int64(0), b.UserID)
	}
}

func (suite *BookmarkRepositoryTestSuite) TestUpdateSortOrderAndMax() {
	a := testutils.CreateTestBookmark(suite.DB, 0, "ord-a")
	b := testutils.CreateTestBookmark(suite.DB, 0, "ord-b")

	suite.NoError(suite.repo.UpdateSortOrder(a.ID, 0, 50))

	max, err := suite.repo.MaxSortOrder(0)
	suite.NoError(err)
	suite.Equal(int64(50), max)

	all, err := suite.repo.ListAll(0)
	suite.NoError(err)
	suite.Len(all, 2)
	suite.Equal(a.ID, all[0].ID)
	suite.Equal(b.ID, all[1].ID)
}

func (suite *BookmarkRepositoryTestSuite) TestMaxSortOrderEmptyScope() {
	max, err := suite.repo.MaxSortOrder(0)
	suite.NoError(err)
	suite.Equal(int64(0), max)
}

func TestBookmarkRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BookmarkRepositoryTestSuite))
}
