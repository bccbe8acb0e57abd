package repository

import (
	"time"

	"bookmark-manager-backend/internal/database/models"

	"gorm.io/gorm"
)

// TagRepository handles database operations for tags
type TagRepository struct {
	db *gorm.DB
}

// Ensure TagRepository implements TagRepositoryInterface
var _ TagRepositoryInterface = (*TagRepository)(nil)

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// Create inserts a new tag
func (r *TagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// GetByID retrieves a tag by ID within the given scope
func (r *TagRepository) GetByID(id, userID int64) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByName retrieves a tag by exact name within the given scope
func (r *TagRepository) GetByName(name string, userID int64) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("name = ? AND user_id = ?", name, userID).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// List retrieves all tags in the scope ordered by sort order, then ID
func (r *TagRepository) List(userID int64) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Where("user_id = ?", userID).
		Order("sort_order DESC, id ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Update applies a partial column update to a tag in the given scope
func (r *TagRepository) Update(id, userID int64, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := r.db.Model(&models.Tag{}).
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

// Delete removes a tag by ID within the given scope
func (r *TagRepository) Delete(id, userID int64) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Tag{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FilterOwnedIDs returns the subset of ids that exist in the given scope,
// deduplicated, in ascending order.
func (r *TagRepository) FilterOwnedIDs(ids []int64, userID int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}
	var owned []int64
	if err := r.db.Model(&models.Tag{}).
		Where("id IN ? AND user_id = ?", ids, userID).
		Order("id ASC").
		Pluck("id", &owned).Error; err != nil {
		return nil, err
	}
	return owned, nil
}

// ResolveNames maps tag names to IDs within the given scope. Names without a
// matching tag are ignored.
func (r *TagRepository) ResolveNames(names []string, userID int64) ([]int64, error) {
	if len(names) == 0 {
		return []int64{}, nil
	}
	var ids []int64
	if err := r.db.Model(&models.Tag{}).
		Where("name IN ? AND user_id = ?", names, userID).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
