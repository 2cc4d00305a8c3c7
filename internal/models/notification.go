package models

import "time"

// Notification types
const (
	NotificationTypeLike       = "LIKE"
	NotificationTypeComment    = "COMMENT"
	NotificationTypeFollow     = "FOLLOW"
	NotificationTypeMention    = "MENTION"
	NotificationTypeNewPost    = "NEW_POST"
	NotificationTypeAdminAlert = "ADMIN_ALERT"
)

// Entity types a notification may reference
const (
	EntityTypePost    = "POST"
	EntityTypeComment = "COMMENT"
	EntityTypeUser    = "USER"
)

// Notification represents a user notification, created only as a side effect
// of another user's action
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"size:30;index"`
	ActorID     uint      `json:"actor_id" gorm:"index"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	EntityType  string    `json:"entity_type" gorm:"size:20"`
	EntityID    uint      `json:"entity_id"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
