package repository

import (
	"strings"
	"time"

	"bookmark-manager-backend/internal/database/models"

	"gorm.io/gorm"
)

// BookmarkRepository handles database operations for bookmarks
type BookmarkRepository struct {
	db *gorm.DB
}

// Ensure BookmarkRepository implements BookmarkRepositoryInterface
var _ BookmarkRepositoryInterface = (*BookmarkRepository)(nil)

// NewBookmarkRepository creates a new bookmark repository
func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// buildFilter applies scope, keyword and tag conditions to a query. The tag
// condition is an AND over all requested tags: a bookmark qualifies only when
// its association rows cover every tag in filter.TagIDs.
func (r *BookmarkRepository) buildFilter(filter BookmarkFilter) *gorm.DB {
	query := r.db.Model(&models.Bookmark{}).Where("user_id = ?", filter.UserID)

	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		pattern := "%" + strings.ToLower(kw) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(url) LIKE ? OR LOWER(pinyin) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if len(filter.TagIDs) > 0 {
		sub := r.db.Model(&models.BookmarkTag{}).
			Select("bookmark_id").
			Where("tag_id IN ?", filter.TagIDs).
			Group("bookmark_id").
			Having("COUNT(DISTINCT tag_id) = ?", len(filter.TagIDs))
		query = query.Where("id IN (?)", sub)
	}

	return query
}

// Create inserts a new bookmark
func (r *BookmarkRepository) Create(bookmark *models.Bookmark) error {
	return r.db.Create(bookmark).Error
}

// GetByID retrieves a bookmark by ID within the given scope
func (r *BookmarkRepository) GetByID(id, userID int64) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&bookmark).Error; err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// GetByName retrieves a bookmark by exact name within the given scope
func (r *BookmarkRepository) GetByName(name string, userID int64) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	if err := r.db.Where("name = ? AND user_id = ?", name, userID).First(&bookmark).Error; err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// GetByURL retrieves a bookmark by exact URL within the given scope
func (r *BookmarkRepository) GetByURL(url string, userID int64) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	if err := r.db.Where("url = ? AND user_id = ?", url, userID).First(&bookmark).Error; err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// Updates applies a partial column update to a bookmark in the given scope.
// Returns gorm.ErrRecordNotFound when no row matched.
func (r *BookmarkRepository) Updates(id, userID int64, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := r.db.Model(&models.Bookmark{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateSortOrder sets the sort order of a single bookmark
func (r *BookmarkRepository) UpdateSortOrder(id, userID, sortOrder int64) error {
	return r.db.Model(&models.Bookmark{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"sort_order": sortOrder,
			"updated_at": time.Now(),
		}).Error
}

// Delete removes a bookmark by ID within the given scope
func (r *BookmarkRepository) Delete(id, userID int64) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Bookmark{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteMany removes bookmarks by IDs within the given scope and reports how
// many rows were deleted. IDs from other scopes are silently skipped.
func (r *BookmarkRepository) DeleteMany(ids []int64, userID int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Where("id IN ? AND user_id = ?", ids, userID).Delete(&models.Bookmark{})
	return result.RowsAffected, result.Error
}

// Count returns the number of bookmarks matching the filter
func (r *BookmarkRepository) Count(filter BookmarkFilter) (int64, error) {
	var total int64
	if err := r.buildFilter(filter).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// FindMany retrieves a page of bookmarks matching the filter, ordered by the
// given ORDER BY expression.
func (r *BookmarkRepository) FindMany(filter BookmarkFilter, limit, offset int, order string) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	query := r.buildFilter(filter).Order(order)
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// Random retrieves up to limit bookmarks from the scope in random order
func (r *BookmarkRepository) Random(userID int64, limit int) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	if err := r.db.Where("user_id = ?", userID).
		Order("RANDOM()").
		Limit(limit).
		Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// ListAll retrieves every bookmark in the scope ordered for stable export
func (r *BookmarkRepository) ListAll(userID int64) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	if err := r.db.Where("user_id = ?", userID).
		Order("sort_order DESC, updated_at DESC").
		Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// MaxSortOrder returns the highest sort order in the scope, 0 when empty
func (r *BookmarkRepository) MaxSortOrder(userID int64) (int64, error) {
	var max int64
	err := r.db.Model(&models.Bookmark{}).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}
