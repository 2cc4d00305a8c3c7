package repositories

import (
	"context"

	"github.com/blognity/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id uint) (*models.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetAllPosts(ctx context.Context, offset, limit int) ([]models.Post, error)
	// GetAllPostsUnfiltered returns every post regardless of status or
	// visibility, for moderation.
	GetAllPostsUnfiltered(ctx context.Context, offset, limit int) ([]models.Post, error)
	GetPostsByAuthor(ctx context.Context, authorID uint) ([]models.Post, error)
	GetPostsByAuthorIDs(ctx context.Context, authorIDs []uint, offset, limit int) ([]models.Post, error)
	GetExclusivePosts(ctx context.Context) ([]models.Post, error)
	GetTrendingPosts(ctx context.Context, limit int) ([]models.Post, error)
	SearchPosts(ctx context.Context, query string) ([]models.Post, error)
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id uint) error
	IncrementViewsCount(ctx context.Context, id uint) error
	AttachTag(ctx context.Context, postID uint, tag *models.Tag) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post in PostgreSQL
func (r *PostgresPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetPostByID retrieves a post by ID with its author
func (r *PostgresPostRepository) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostBySlug retrieves a post by slug with its author and tags
func (r *PostgresPostRepository) GetPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Preload("Author").Preload("Tags").Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetAllPosts retrieves published public posts, newest first
func (r *PostgresPostRepository) GetAllPosts(ctx context.Context, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Preload("Author").
		Where("status = ? AND visibility = ?", models.StatusPublished, models.VisibilityPublic).
		Order("published_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// GetAllPostsUnfiltered retrieves every post, drafts and private included
func (r *PostgresPostRepository) GetAllPostsUnfiltered(ctx context.Context, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Preload("Author").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// GetPostsByAuthor retrieves an author's published public posts, newest
// first. Drafts and paywalled posts never appear on the public profile.
func (r *PostgresPostRepository) GetPostsByAuthor(ctx context.Context, authorID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Preload("Author").
		Where("author_id = ? AND status = ? AND visibility = ?", authorID, models.StatusPublished, models.VisibilityPublic).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// GetPostsByAuthorIDs retrieves published public posts authored by any of
// the given users, ordered by publication time descending. Paywalled posts
// stay out of the feed; they are reached through the exclusive listing.
func (r *PostgresPostRepository) GetPostsByAuthorIDs(ctx context.Context, authorIDs []uint, offset, limit int) ([]models.Post, error) {
	posts := []models.Post{}
	if len(authorIDs) == 0 {
		return posts, nil
	}
	err := r.db.WithContext(ctx).Preload("Author").
		Where("author_id IN ? AND status = ? AND visibility = ?", authorIDs, models.StatusPublished, models.VisibilityPublic).
		Order("published_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// GetExclusivePosts retrieves published paywalled posts, newest first
func (r *PostgresPostRepository) GetExclusivePosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Preload("Author").Preload("Tags").
		Where("visibility = ? AND status = ?", models.VisibilityPrivate, models.StatusPublished).
		Order("published_at DESC").
		Find(&posts).Error
	return posts, err
}

// GetTrendingPosts retrieves the most liked published public posts
func (r *PostgresPostRepository) GetTrendingPosts(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Preload("Author").
		Where("status = ? AND visibility = ?", models.StatusPublished, models.VisibilityPublic).
		Order("likes_count DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// SearchPosts searches published public posts by title or content
func (r *PostgresPostRepository) SearchPosts(ctx context.Context, query string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Preload("Author").
		Where("status = ? AND visibility = ?", models.StatusPublished, models.VisibilityPublic).
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?)", "%"+query+"%", "%"+query+"%").
		Find(&posts).Error
	return posts, err
}

// UpdatePost updates an existing post in PostgreSQL
func (r *PostgresPostRepository) UpdatePost(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// DeletePost deletes a post by ID. Likes, bookmarks and comments go with it
// through the schema-level cascade.
func (r *PostgresPostRepository) DeletePost(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Post{}, id).Error
}

// IncrementViewsCount bumps the denormalized view counter
func (r *PostgresPostRepository) IncrementViewsCount(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1)).Error
}

// AttachTag links a tag to a post via the join table
func (r *PostgresPostRepository) AttachTag(ctx context.Context, postID uint, tag *models.Tag) error {
	return r.db.WithContext(ctx).Model(&models.Post{ID: postID}).Association("Tags").Append(tag)
}
