package repository

import (
	"bookmark-manager-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// BookmarkFilter narrows bookmark queries. UserID is always applied (0 means
// the public collection); Keyword and TagIDs are optional and combine with
// AND semantics.
type BookmarkFilter struct {
	UserID  int64
	Keyword string
	TagIDs  []int64
}

// BookmarkRepositoryInterface defines the interface for bookmark repository operations
type BookmarkRepositoryInterface interface {
	Create(bookmark *models.Bookmark) error
	GetByID(id, userID int64) (*models.Bookmark, error)
	GetByName(name string, userID int64) (*models.Bookmark, error)
	GetByURL(url string, userID int64) (*models.Bookmark, error)
	Updates(id, userID int64, fields map[string]interface{}) error
	UpdateSortOrder(id, userID, sortOrder int64) error
	Delete(id, userID int64) error
	DeleteMany(ids []int64, userID int64) (int64, error)
	Count(filter BookmarkFilter) (int64, error)
	FindMany(filter BookmarkFilter, limit, offset int, order string) ([]models.Bookmark, error)
	Random(userID int64, limit int) ([]models.Bookmark, error)
	ListAll(userID int64) ([]models.Bookmark, error)
	MaxSortOrder(userID int64) (int64, error)
}

// BookmarkTagRepositoryInterface defines the interface for bookmark-tag association operations
type BookmarkTagRepositoryInterface interface {
	ListTagIDs(bookmarkID int64) ([]int64, error)
	ListByBookmarkIDs(bookmarkIDs []int64) ([]models.BookmarkTag, error)
	ReplaceSet(bookmarkID int64, tagIDs []int64) error
	DeleteByBookmarkIDs(bookmarkIDs []int64) error
}

// TagRepositoryInterface defines the interface for tag repository operations
type TagRepositoryInterface interface {
	Create(tag *models.Tag) error
	GetByID(id, userID int64) (*models.Tag, error)
	GetByName(name string, userID int64) (*models.Tag, error)
	List(userID int64) ([]models.Tag, error)
	Update(id, userID int64, fields map[string]interface{}) error
	Delete(id, userID int64) error
	FilterOwnedIDs(ids []int64, userID int64) ([]int64, error)
	ResolveNames(names []string, userID int64) ([]int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id int64) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
