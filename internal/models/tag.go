package models

// Tag is a label attached to posts, unique by slug and upserted on use
type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:60"`
	Slug string `json:"slug" gorm:"uniqueIndex;size:80"`
}
