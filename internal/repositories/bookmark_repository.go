package repositories

import (
	"context"

	"github.com/blognity/backend/internal/models"
	"gorm.io/gorm"
)

// BookmarkRepository defines the interface for bookmark operations
type BookmarkRepository interface {
	// Toggle flips the bookmark row for (userID, postID) and returns the new
	// bookmarked state.
	Toggle(ctx context.Context, postID, userID uint) (bool, error)
	IsPostBookmarked(userID, postID uint) (bool, error)
	GetBookmarkedPosts(userID uint) ([]models.Post, error)
	GetBookmarkedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error)
}

// PostgresBookmarkRepository implements BookmarkRepository
type PostgresBookmarkRepository struct {
	db *gorm.DB
}

func NewPostgresBookmarkRepository(db *gorm.DB) *PostgresBookmarkRepository {
	return &PostgresBookmarkRepository{db: db}
}

func (r *PostgresBookmarkRepository) Toggle(ctx context.Context, postID, userID uint) (bool, error) {
	res := r.db.WithContext(ctx).Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Bookmark{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}
	if err := r.db.WithContext(ctx).Create(&models.Bookmark{UserID: userID, PostID: postID}).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresBookmarkRepository) IsPostBookmarked(userID, postID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Bookmark{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error
	return count > 0, err
}

// GetBookmarkedPosts retrieves the user's saved posts with authors, newest
// bookmark first
func (r *PostgresBookmarkRepository) GetBookmarkedPosts(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").
		Joins("JOIN bookmarks ON bookmarks.post_id = posts.id").
		Where("bookmarks.user_id = ?", userID).
		Order("bookmarks.created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *PostgresBookmarkRepository) GetBookmarkedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool)
	if len(postIDs) == 0 {
		return result, nil
	}
	var bookmarks []models.Bookmark
	err := r.db.Where("user_id = ? AND post_id IN ?", userID, postIDs).Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}
	for _, b := range bookmarks {
		result[b.PostID] = true
	}
	return result, nil
}
