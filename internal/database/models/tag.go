package models

import (
	"time"
)

// Tag is a non-exclusive category for bookmarks within one scope
// (UserID 0 = public).
type Tag struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"user_id" gorm:"not null;default:0;index"`
	Name      string    `json:"name" gorm:"size:60;not null" validate:"required,max=60"`
	SortOrder int64     `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Tag
func (Tag) TableName() string {
	return "tags"
}
