package services

import (
	"context"
	"errors"
	"log"

	"github.com/blognity/backend/internal/metrics"
	"github.com/blognity/backend/internal/models"
	"github.com/blognity/backend/internal/repositories"
	"gorm.io/gorm"
)

// InteractionService implements the toggle operations (like, bookmark,
// follow) and comment creation, with notification fan-out on the creating
// side of each toggle.
type InteractionService struct {
	likes     repositories.LikeRepository
	bookmarks repositories.BookmarkRepository
	follows   repositories.FollowRepository
	comments  repositories.CommentRepository
	posts     repositories.PostRepository
	users     repositories.UserRepository
	notifier  *NotificationService
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(
	likeRepo repositories.LikeRepository,
	bookmarkRepo repositories.BookmarkRepository,
	followRepo repositories.FollowRepository,
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	notifier *NotificationService,
) *InteractionService {
	return &InteractionService{
		likes:     likeRepo,
		bookmarks: bookmarkRepo,
		follows:   followRepo,
		comments:  commentRepo,
		posts:     postRepo,
		users:     userRepo,
		notifier:  notifier,
	}
}

// fanOut records a notification best-effort: the triggering mutation has
// already committed, so a failed insert is logged and dropped.
func (s *InteractionService) fanOut(notifType string, actorID, recipientID uint, entityType string, entityID uint) {
	if err := s.notifier.Notify(notifType, actorID, recipientID, entityType, entityID); err != nil {
		log.Printf("notification fan-out failed (type=%s actor=%d recipient=%d): %v", notifType, actorID, recipientID, err)
	}
}

// ToggleLike flips the caller's like on a post and returns the new liked
// state together with the updated counter so the caller can reconcile
// optimistic UI state without re-fetching.
func (s *InteractionService) ToggleLike(ctx context.Context, postID, userID uint) (bool, int64, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return false, 0, translate(err)
	}

	liked, count, err := s.likes.Toggle(ctx, postID, userID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a concurrent toggle race; the unique key is the arbiter.
		// Re-read current state and return it instead of erroring.
		liked, err = s.likes.HasUserLikedPost(postID, userID)
		if err != nil {
			return false, 0, translate(err)
		}
		count, err = s.likes.GetLikesCountByPostID(postID)
		if err != nil {
			return liked, 0, translate(err)
		}
		return liked, count, nil
	}
	if err != nil {
		return false, 0, translate(err)
	}

	metrics.ToggleState("like", liked)
	if liked {
		s.fanOut(models.NotificationTypeLike, userID, post.AuthorID, models.EntityTypePost, post.ID)
	}
	return liked, count, nil
}

// ToggleBookmark flips the caller's bookmark on a post
func (s *InteractionService) ToggleBookmark(ctx context.Context, postID, userID uint) (bool, error) {
	if _, err := s.posts.GetPostByID(ctx, postID); err != nil {
		return false, translate(err)
	}

	bookmarked, err := s.bookmarks.Toggle(ctx, postID, userID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		bookmarked, err = s.bookmarks.IsPostBookmarked(userID, postID)
	}
	if err != nil {
		return false, translate(err)
	}

	metrics.ToggleState("bookmark", bookmarked)
	return bookmarked, nil
}

// ToggleFollow flips the follow edge from follower to followee. Following
// yourself is rejected.
func (s *InteractionService) ToggleFollow(ctx context.Context, followerID, followingID uint) (bool, error) {
	if followerID == followingID {
		return false, ErrSelfFollow
	}
	if _, err := s.users.GetUserByID(followingID); err != nil {
		return false, translate(err)
	}

	following, err := s.follows.Toggle(ctx, followerID, followingID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		following, err = s.follows.IsFollowing(followerID, followingID)
	}
	if err != nil {
		return false, translate(err)
	}

	metrics.ToggleState("follow", following)
	if following {
		s.fanOut(models.NotificationTypeFollow, followerID, followingID, models.EntityTypeUser, followerID)
	}
	return following, nil
}

// AddComment creates a comment, bumps the post's counter and notifies the
// post's author
func (s *InteractionService) AddComment(ctx context.Context, postID, userID uint, content string, parentID *uint) (*models.Comment, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, translate(err)
	}

	comment := &models.Comment{
		PostID:   postID,
		UserID:   userID,
		ParentID: parentID,
		Content:  content,
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, translate(err)
	}

	s.fanOut(models.NotificationTypeComment, userID, post.AuthorID, models.EntityTypePost, post.ID)
	return comment, nil
}
