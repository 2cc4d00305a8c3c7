package models

import "time"

// Post status values
const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
)

// Post visibility values. PRIVATE marks exclusive (paywalled) content.
const (
	VisibilityPublic  = "PUBLIC"
	VisibilityPrivate = "PRIVATE"
)

// Post represents a blog post
type Post struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Title         string     `json:"title"`
	Content       string     `json:"content" gorm:"type:text"`
	Slug          string     `json:"slug" gorm:"uniqueIndex;size:220"`
	Status        string     `json:"status" gorm:"type:varchar(20);default:'DRAFT';index"`
	Visibility    string     `json:"visibility" gorm:"type:varchar(20);default:'PUBLIC'"`
	ViewsCount    int64      `json:"views_count" gorm:"default:0"`
	LikesCount    int64      `json:"likes_count" gorm:"default:0"`
	CommentsCount int64      `json:"comments_count" gorm:"default:0"`
	AuthorID      uint       `json:"author_id" gorm:"index"`
	Author        *User      `json:"author,omitempty"`
	PublishedAt   *time.Time `json:"published_at" gorm:"index"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Tags []Tag `json:"tags,omitempty" gorm:"many2many:post_tags;"`

	// Dependent rows are removed with the post at the schema level
	Likes     []Like     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Bookmarks []Bookmark `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Comments  []Comment  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title      string   `json:"title" validate:"required,min=1,max=200"`
	Content    string   `json:"content" validate:"required,min=1"`
	Status     string   `json:"status" validate:"required,oneof=DRAFT PUBLISHED"`
	Visibility string   `json:"visibility" validate:"required,oneof=PUBLIC PRIVATE"`
	Tags       []string `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=40"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title      string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content    string `json:"content,omitempty" validate:"omitempty,min=1"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=DRAFT PUBLISHED"`
	Visibility string `json:"visibility,omitempty" validate:"omitempty,oneof=PUBLIC PRIVATE"`
}
