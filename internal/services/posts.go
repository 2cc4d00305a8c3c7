package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/blognity/backend/internal/models"
	"github.com/blognity/backend/internal/repositories"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug derives a URL-safe slug from a title: lowercase, runs of
// non-alphanumeric characters collapsed to single hyphens, leading and
// trailing hyphens stripped.
func GenerateSlug(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// PostService owns the post lifecycle: creation with slugging and tag
// attachment, the draft to published transition, gated reads and deletion.
type PostService struct {
	posts repositories.PostRepository
	tags  repositories.TagRepository
	users repositories.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo repositories.PostRepository,
	tagRepo repositories.TagRepository,
	userRepo repositories.UserRepository,
) *PostService {
	return &PostService{
		posts: postRepo,
		tags:  tagRepo,
		users: userRepo,
	}
}

// CreatePost creates a post for the author. Slug uniqueness is enforced by
// the database; a collision is retried once with a millisecond-timestamp
// suffix. Publishing at creation sets the publication timestamp.
func (s *PostService) CreatePost(ctx context.Context, req models.CreatePostRequest, authorID uint) (*models.Post, error) {
	if _, err := s.users.GetUserByID(authorID); err != nil {
		return nil, translate(err)
	}

	post := &models.Post{
		Title:      req.Title,
		Content:    req.Content,
		Slug:       GenerateSlug(req.Title),
		Status:     req.Status,
		Visibility: req.Visibility,
		AuthorID:   authorID,
	}
	if req.Status == models.StatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.posts.CreatePost(ctx, post); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, translate(err)
		}
		post.Slug = fmt.Sprintf("%s-%d", post.Slug, time.Now().UnixMilli())
		if err := s.posts.CreatePost(ctx, post); err != nil {
			return nil, translate(err)
		}
	}

	s.attachTags(ctx, post, req.Tags)
	return post, nil
}

// attachTags upserts and links each tag independently; one failing tag does
// not roll back the post
func (s *PostService) attachTags(ctx context.Context, post *models.Post, tagNames []string) {
	for _, name := range tagNames {
		formatted := strings.ToLower(strings.TrimSpace(name))
		if formatted == "" {
			continue
		}
		tag, err := s.tags.UpsertBySlug(ctx, formatted, GenerateSlug(formatted))
		if err != nil {
			log.Printf("tag upsert failed for %q on post %d: %v", formatted, post.ID, err)
			continue
		}
		if err := s.posts.AttachTag(ctx, post.ID, tag); err != nil {
			log.Printf("tag attach failed for %q on post %d: %v", formatted, post.ID, err)
			continue
		}
		post.Tags = append(post.Tags, *tag)
	}
}

// UpdatePost applies a patch to a post owned by the actor (admins may edit
// any post). PublishedAt is set exactly once, on the first transition into
// published status, and never overwritten afterwards.
func (s *PostService) UpdatePost(ctx context.Context, postID uint, req models.UpdatePostRequest, actorID uint) (*models.Post, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, translate(err)
	}
	if err := s.authorize(post, actorID); err != nil {
		return nil, err
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if req.Visibility != "" {
		post.Visibility = req.Visibility
	}
	if req.Status != "" {
		if req.Status == models.StatusPublished && post.Status != models.StatusPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.Status = req.Status
	}

	post.Author = nil
	if err := s.posts.UpdatePost(ctx, post); err != nil {
		return nil, translate(err)
	}
	return post, nil
}

// DeletePost removes a post. Author or admin only; likes, bookmarks and
// comments cascade with the row.
func (s *PostService) DeletePost(ctx context.Context, postID, actorID uint) error {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return translate(err)
	}
	if err := s.authorize(post, actorID); err != nil {
		return err
	}
	return translate(s.posts.DeletePost(ctx, postID))
}

// GetPostBySlug reads a post for a viewer and bumps its view counter.
// Private (exclusive) posts require paid access, authorship or admin role.
func (s *PostService) GetPostBySlug(ctx context.Context, slug string, viewerID uint) (*models.Post, error) {
	post, err := s.posts.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, translate(err)
	}

	if post.Visibility == models.VisibilityPrivate {
		if viewerID == 0 {
			return nil, ErrUnauthorized
		}
		viewer, err := s.users.GetUserByID(viewerID)
		if err != nil {
			return nil, translate(err)
		}
		if !viewer.HasPaidAccess && viewer.ID != post.AuthorID && !viewer.IsAdmin() {
			return nil, ErrForbidden
		}
	}

	if err := s.posts.IncrementViewsCount(ctx, post.ID); err == nil {
		post.ViewsCount++
	}
	return post, nil
}

func (s *PostService) authorize(post *models.Post, actorID uint) error {
	if actorID == 0 {
		return ErrUnauthorized
	}
	if post.AuthorID == actorID {
		return nil
	}
	actor, err := s.users.GetUserByID(actorID)
	if err != nil {
		return translate(err)
	}
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return nil
}
