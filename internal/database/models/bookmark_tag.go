package models

// BookmarkTag is the bookmark↔tag join row. The composite unique index
// makes duplicate (bookmark_id, tag_id) pairs impossible at the store level.
type BookmarkTag struct {
	ID         int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	BookmarkID int64 `json:"bookmark_id" gorm:"not null;uniqueIndex:idx_bookmark_tag,priority:1"`
	TagID      int64 `json:"tag_id" gorm:"not null;index;uniqueIndex:idx_bookmark_tag,priority:2"`
}

// TableName returns the table name for BookmarkTag
func (BookmarkTag) TableName() string {
	return "bookmark_tags"
}
