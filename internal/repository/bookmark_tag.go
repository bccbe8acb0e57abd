package repository

import (
	"bookmark-manager-backend/internal/database/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookmarkTagRepository handles database operations for bookmark-tag associations
type BookmarkTagRepository struct {
	db *gorm.DB
}

// Ensure BookmarkTagRepository implements BookmarkTagRepositoryInterface
var _ BookmarkTagRepositoryInterface = (*BookmarkTagRepository)(nil)

// NewBookmarkTagRepository creates a new bookmark-tag repository
func NewBookmarkTagRepository(db *gorm.DB) *BookmarkTagRepository {
	return &BookmarkTagRepository{db: db}
}

// ListTagIDs retrieves the tag IDs attached to a bookmark
func (r *BookmarkTagRepository) ListTagIDs(bookmarkID int64) ([]int64, error) {
	var tagIDs []int64
	if err := r.db.Model(&models.BookmarkTag{}).
		Where("bookmark_id = ?", bookmarkID).
		Order("tag_id ASC").
		Pluck("tag_id", &tagIDs).Error; err != nil {
		return nil, err
	}
	return tagIDs, nil
}

// ListByBookmarkIDs retrieves association rows for a set of bookmarks
func (r *BookmarkTagRepository) ListByBookmarkIDs(bookmarkIDs []int64) ([]models.BookmarkTag, error) {
	if len(bookmarkIDs) == 0 {
		return []models.BookmarkTag{}, nil
	}
	var rows []models.BookmarkTag
	if err := r.db.Where("bookmark_id IN ?", bookmarkIDs).
		Order("bookmark_id ASC, tag_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ReplaceSet reconciles the stored association rows for a bookmark against
// the desired tag set: missing rows are inserted, rows outside the set are
// removed. An empty (non-nil) set clears every association. The insert and
// delete legs touch disjoint rows, so they run concurrently.
func (r *BookmarkTagRepository) ReplaceSet(bookmarkID int64, tagIDs []int64) error {
	var g errgroup.Group

	if len(tagIDs) > 0 {
		rows := make([]models.BookmarkTag, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			rows = append(rows, models.BookmarkTag{BookmarkID: bookmarkID, TagID: tagID})
		}
		g.Go(func() error {
			return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
		})
		g.Go(func() error {
			return r.db.Where("bookmark_id = ? AND tag_id NOT IN ?", bookmarkID, tagIDs).
				Delete(&models.BookmarkTag{}).Error
		})
	} else {
		g.Go(func() error {
			return r.db.Where("bookmark_id = ?", bookmarkID).
				Delete(&models.BookmarkTag{}).Error
		})
	}

	return g.Wait()
}

// DeleteByBookmarkIDs removes all association rows for the given bookmarks
func (r *BookmarkTagRepository) DeleteByBookmarkIDs(bookmarkIDs []int64) error {
	if len(bookmarkIDs) == 0 {
		return nil
	}
	return r.db.Where("bookmark_id IN ?", bookmarkIDs).Delete(&models.BookmarkTag{}).Error
}
