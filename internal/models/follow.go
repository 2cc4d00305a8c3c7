package models

import "time"

// Follow represents a directed follow edge between two users
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_following"`
	FollowingID uint      `json:"following_id" gorm:"index;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time `json:"created_at"`
}

// TopAuthor is a user ranked by incoming follow edges
type TopAuthor struct {
	User
	FollowersCount int64 `json:"followers_count"`
}
