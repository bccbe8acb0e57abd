package models

import (
	"time"
)

// Bookmark is a saved link. UserID 0 marks the shared public scope; any
// other value scopes the row to that account. SortOrder is the manual rank:
// higher sorts earlier.
type Bookmark struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"user_id" gorm:"not null;default:0;index"`
	Name      string    `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	URL       string    `json:"url" gorm:"size:2000;not null" validate:"required,max=2000"`
	Pinyin    string    `json:"pinyin" gorm:"size:400"` // search key derived from Name
	Icon      string    `json:"icon" gorm:"size:2000"`
	IsPinned  bool      `json:"is_pinned" gorm:"not null;default:false"`
	SortOrder int64     `json:"sort_order" gorm:"not null;default:0;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Bookmark
func (Bookmark) TableName() string {
	return "bookmarks"
}
