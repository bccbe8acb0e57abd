package testutils

import (
	"fmt"

	"bookmark-manager-backend/internal/database/models"

	"gorm.io/gorm"
)

// CreateTestBookmark inserts a bookmark with sensible defaults. The name and
// URL carry the given suffix so repeated calls stay unique within a scope.
func CreateTestBookmark(db *gorm.DB, userID int64, suffix string) *models.Bookmark {
	bookmark := &models.Bookmark{
		UserID: userID,
		Name:   "bookmark-" + suffix,
		URL:    fmt.Sprintf("https://example.com/%s", suffix),
		Pinyin: "bookmark-" + suffix,
	}
	if err := db.Create(bookmark).Error; err != nil {
		panic(err)
	}
	// Mirror the production default of ranking new bookmarks by their ID
	if err := db.Model(bookmark).Update("sort_order", bookmark.ID).Error; err != nil {
		panic(err)
	}
	bookmark.SortOrder = bookmark.ID
	return bookmark
}

// CreateTestTag inserts a tag into the given scope
func CreateTestTag(db *gorm.DB, userID int64, name string) *models.Tag {
	tag := &models.Tag{
		UserID: userID,
		Name:   name,
	}
	if err := db.Create(tag).Error; err != nil {
		panic(err)
	}
	return tag
}

// AttachTag links a bookmark to a tag
func AttachTag(db *gorm.DB, bookmarkID, tagID int64) {
	if err := db.Create(&models.BookmarkTag{BookmarkID: bookmarkID, TagID: tagID}).Error; err != nil {
		panic(err)
	}
}
