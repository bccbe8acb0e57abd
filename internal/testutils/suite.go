package testutils

import (
	"bookmark-manager-backend/internal/database"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BaseTestSuite provides a database-backed test suite. Each suite gets its
// own in-memory SQLite database with the full schema migrated, the same
// engine the production database layer opens for sqlite DSNs.
type BaseTestSuite struct {
	suite.Suite
	DB *gorm.DB
}

// SetupSuite opens the test database and migrates the schema
func (s *BaseTestSuite) SetupSuite() {
	db, err := database.Initialize(":memory:", nil)
	s.Require().NoError(err)
	s.DB = db
}

// TearDownSuite closes the test database
func (s *BaseTestSuite) TearDownSuite() {
	if s.DB != nil {
		if sqlDB, err := s.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

// CleanTestDB truncates all tables between tests, associations first
func (s *BaseTestSuite) CleanTestDB() {
	for _, table := range []string{"bookmark_tags", "bookmarks", "tags", "users"} {
		s.Require().NoError(s.DB.Exec("DELETE FROM " + table).Error)
	}
}
