package repository

import (
	"testing"

	"bookmark-manager-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TagRepositoryTestSuite tests the TagRepository
type TagRepositoryTestSuite struct {
	testutils.BaseTestSuite
	repo *TagRepository
}

// SetupSuite runs before all tests in the suite
func (suite *TagRepositoryTestSuite) SetupSuite() {
	suite.BaseTestSuite.SetupSuite()
	suite.repo = NewTagRepository(suite.DB)
}

// SetupTest runs before each test
func (suite *TagRepositoryTestSuite) SetupTest() {
	suite.CleanTestDB()
}

func (suite *TagRepositoryTestSuite) TestCreateAndGet() {
	tag := testutils.CreateTestTag(suite.DB, 0, "reading")

	found, err := suite.repo.GetByID(tag.ID, 0)
	suite.NoError(err)
	suite.Equal("reading", found.Name)

	byName, err := suite.repo.GetByName("reading", 0)
	suite.NoError(err)
	suite.Equal(tag.ID, byName.ID)

	_, err = suite.repo.GetByName("missing", 0)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TagRepositoryTestSuite) TestListOrder() {
	a := testutils.CreateTestTag(suite.DB, 0, "a")
	b := testutils.CreateTestTag(suite.DB, 0, "b")
	suite.NoError(suite.repo.Update(b.ID, 0, map[string]interface{}{"sort_order": 10}))

	tags, err := suite.repo.List(0)
	suite.NoError(err)
	suite.Len(tags, 2)
	suite.Equal(b.ID, tags[0].ID)
	suite.Equal(a.ID, tags[1].ID)
}

func (suite *TagRepositoryTestSuite) TestDelete() {
	tag := testutils.CreateTestTag(suite.DB, 0, "gone")

	suite.NoError(suite.repo.Delete(tag.ID, 0))
	suite.ErrorIs(suite.repo.Delete(tag.ID, 0), gorm.ErrRecordNotFound)
}

func (suite *TagRepositoryTestSuite) TestFilterOwnedIDs() {
	mine := testutils.CreateTestTag(suite.DB, 7, "mine")
	other := testutils.CreateTestTag(suite.DB, 8, "other")

	owned, err := suite.repo.FilterOwnedIDs([]int64{mine.ID, other.ID, 99999}, 7)
	suite.NoError(err)
	suite.Equal([]int64{mine.ID}, owned)

	owned, err = suite.repo.FilterOwnedIDs(nil, 7)
	suite.NoError(err)
	suite.Empty(owned)
}

func (suite *TagRepositoryTestSuite) TestResolveNames() {
	dev := testutils.CreateTestTag(suite.DB, 0, "dev")
	testutils.CreateTestTag(suite.DB, 0, "news")

	ids, err := suite.repo.ResolveNames([]string{"dev", "unknown"}, 0)
	suite.NoError(err)
	suite.Equal([]int64{dev.ID}, ids)
}

func TestTagRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TagRepositoryTestSuite))
}
