package models

import (
	"time"
)

// User is an account that owns user-scoped bookmarks and tags.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Email        string    `json:"email" gorm:"size:200;not null;uniqueIndex" validate:"required,email"`
	Username     string    `json:"username" gorm:"size:60;not null" validate:"required,min=1,max=60"`
	PasswordHash string    `json:"-" gorm:"size:100;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
