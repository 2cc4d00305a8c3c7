package services

import (
	"context"
	"testing"

	"github.com/blognity/backend/internal/models"
	"github.com/blognity/backend/internal/repositories"
	"github.com/blognity/backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInteractionFixture(t *testing.T) (*memory.Store, *InteractionService, *NotificationService) {
	t.Helper()
	store := memory.NewStore()
	notifier := NewNotificationService(store.Notifications(), store.Users(), store.Posts())
	svc := NewInteractionService(
		store.Likes(), store.Bookmarks(), store.Follows(), store.Comments(),
		store.Posts(), store.Users(), notifier,
	)
	return store, svc, notifier
}

func seedUser(t *testing.T, store *memory.Store, name, username string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Username: username, Email: username + "@example.com"}
	require.NoError(t, store.Users().CreateUser(user))
	return user
}

func seedPublishedPost(t *testing.T, store *memory.Store, authorID uint, title string) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:    title,
		Content:  "content of " + title,
		Slug:     GenerateSlug(title),
		Status:   models.StatusPublished,
		AuthorID: authorID,
	}
	require.NoError(t, store.Posts().CreatePost(context.Background(), post))
	return post
}

func TestToggleLikeRoundTrip(t *testing.T) {
	store, svc, _ := newInteractionFixture(t)
	author := seedUser(t, store, "Author", "author")
	reader := seedUser(t, store, "Reader", "reader")
	post := seedPublishedPost(t, store, author.ID, "Hello World")

	liked, count, err := svc.ToggleLike(context.Background(), post.ID, reader.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)

	liked, count, err = svc.ToggleLike(context.Background(), post.ID, reader.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(0), count)

	// Counter never goes negative and state matches the join table
	hasLiked, err := store.Likes().HasUserLikedPost(post.ID, reader.ID)
	require.NoError(t, err)
	assert.False(t, hasLiked)
}

func TestToggleLikeNotifiesAuthor(t *testing.T) {
	store, svc, notifier := newInteractionFixture(t)
	author := seedUser(t, store, "Author", "author")
	reader := seedUser(t, store, "Reader", "reader")
	post := seedPublishedPost(t, store, author.ID, "Liked Post")

	_, _, err := svc.ToggleLike(context.Background(), post.ID, reader.ID)
	require.NoError(t, err)

	notifications, total, err := notifier.List(context.Background(), author.ID, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.Equal(t, models.NotificationTypeLike, notifications[0].Type)
	assert.Equal(t, reader.ID, notifications[0].ActorID)
	assert.Equal(t, post.Slug, notifications[0].PostSlug)

	// Unliking must not create another notification
	_, _, err = svc.ToggleLike(context.Background(), post.ID, reader.ID)
	require.NoError(t, err)
	_, total, err = notifier.List(context.Background(), author.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestToggleLikeOwnPostNoNotification(t *testing.T) {
	store, svc, notifier := newInteractionFixture(t)
	author := seedUser(t, store, "Author", "author")
	post := seedPublishedPost(t, store, author.ID, "Self Like")

	liked, count, err := svc.ToggleLike(context.Background(), post.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)

	count2, err := notifier.UnreadCount(author.ID)
	require.NoError(t, err)
	assert.Zero(t, count2)
}

func TestToggleLikeMissingPost(t *testing.T) {
	store, svc, _ := newInteractionFixture(t)
	reader := seedUser(t, store, "Reader", "reader")

	_, _, err := svc.ToggleLike(context.Background(), 999, reader.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleBookmarkRoundTrip(t *testing.T) {
	store, svc, _ := newInteractionFixture(t)
	author := seedUser(t, store, "Author", "author")
	reader := seedUser(t, store, "Reader", "reader")
	post := seedPublishedPost(t, store, author.ID, "Bookmark Me")

	bookmarked, err := svc.ToggleBookmark(context.Background(), post.ID, reader.ID)
	require.NoError(t, err)
	assert.True(t, bookmarked)

	posts, err := store.Bookmarks().GetBookmarkedPosts(reader.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, post.ID, posts[0].ID)

	bookmarked, err = svc.ToggleBookmark(context.Background(), post.ID, reader.ID)
	require.NoError(t, err)
	assert.False(t, bookmarked)

	posts, err = store.Bookmarks().GetBookmarkedPosts(reader.ID)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestToggleFollowSelfRejected(t *testing.T) {
	store, svc, _ := newInteractionFixture(t)
	user := seedUser(t, store, "Solo", "solo")

	_, err := svc.ToggleFollow(context.Background(), user.ID, user.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestToggleFollowNotifiesTarget(t *testing.T) {
	store, svc, notifier := newInteractionFixture(t)
	follower := seedUser(t, store, "Follower", "follower")
	followee := seedUser(t, store, "Followee", "followee")

	following, err := svc.ToggleFollow(context.Background(), follower.ID, followee.ID)
	require.NoError(t, err)
	assert.True(t, following)

	notifications, total, err := notifier.List(context.Background(), followee.ID, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.Equal(t, models.NotificationTypeFollow, notifications[0].Type)
	assert.Equal(t, follower.ID, notifications[0].ActorID)
	assert.Equal(t, "follower", notifications[0].Actor.Username)

	following, err = svc.ToggleFollow(context.Background(), follower.ID, followee.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestToggleFollowMissingTarget(t *testing.T) {
	store, svc, _ := newInteractionFixture(t)
	follower := seedUser(t, store, "Follower", "follower")

	_, err := svc.ToggleFollow(context.Background(), follower.ID, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

// Toggle stubs that always lose the unique-key race; reads pass through to
// the backing store, the state a concurrent winner left behind.

type conflictLikes struct{ repositories.LikeRepository }

func (conflictLikes) Toggle(ctx context.Context, postID, userID uint) (bool, int64, error) {
	return false, 0, gorm.ErrDuplicatedKey
}

type conflictBookmarks struct{ repositories.BookmarkRepository }

func (conflictBookmarks) Toggle(ctx context.Context, postID, userID uint) (bool, error) {
	return false, gorm.ErrDuplicatedKey
}

type conflictFollows struct{ repositories.FollowRepository }

func (conflictFollows) Toggle(ctx context.Context, followerID, followingID uint) (bool, error) {
	return false, gorm.ErrDuplicatedKey
}

func TestToggleLikeConflictReReadsState(t *testing.T) {
	store, _, notifier := newInteractionFixture(t)
	author := seedUser(t, store, "Author", "author")
	reader := seedUser(t, store, "Reader", "reader")
	post := seedPublishedPost(t, store, author.ID, "Contested Post")

	// The concurrent winner already created the row and bumped the counter
	_, _, err := store.Likes().Toggle(context.Background(), post.ID, reader.ID)
	require.NoError(t, err)

	svc := NewInteractionService(
		conflictLikes{store.Likes()}, store.Bookmarks(), store.Follows(), store.Comments(),
		store.Posts(), store.Users(), notifier,
	)

	liked, count, err := svc.ToggleLike(context.Background(), post.ID, reader.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)

	// Counter matches the single committed row, no drift
	stored, err := store.Likes().GetLikesCountByPostID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored)
}

func TestToggleBookmarkConflictReReadsState(t *testing.T) {
	store, _, notifier := newInteractionFixture(t)
	author := seedUser(t, store, "Author", "author")
	reader := seedUser(t, store, "Reader", "reader")
	post := seedPublishedPost(t, store, author.ID, "Contested Bookmark")

	_, err := store.Bookmarks().Toggle(context.Background(), post.ID, reader.ID)
	require.NoError(t, err)

	svc := NewInteractionService(
		store.Likes(), conflictBookmarks{store.Bookmarks()}, store.Follows(), store.Comments(),
		store.Posts(), store.Users(), notifier,
	)

	bookmarked, err := svc.ToggleBookmark(context.Background(), post.ID, reader.ID)
	require.NoError(t, err)
	assert.True(t, bookmarked)
}

func TestToggleFollowConflictReReadsState(t *testing.T) {
	store, _, notifier := newInteractionFixture(t)
	follower := seedUser(t, store, "Follower", "follower")
	followee := seedUser(t, store, "Followee", "followee")

	_, err := store.Follows().Toggle(context.Background(), follower.ID, followee.ID)
	require.NoError(t, err)

	svc := NewInteractionService(
		store.Likes(), store.Bookmarks(), conflictFollows{store.Follows()}, store.Comments(),
		store.Posts(), store.Users(), notifier,
	)

	following, err := svc.ToggleFollow(context.Background(), follower.ID, followee.ID)
	require.NoError(t, err)
	assert.True(t, following)
}

func TestAddCommentBumpsCounterAndNotifies(t *testing.T) {
	store, svc, notifier := newInteractionFixture(t)
	author := seedUser(t, store, "Author", "author")
	reader := seedUser(t, store, "Reader", "reader")
	post := seedPublishedPost(t, store, author.ID, "Discussed Post")

	comment, err := svc.AddComment(context.Background(), post.ID, reader.ID, "great read", nil)
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)

	updated, err := store.Posts().GetPostByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.CommentsCount)

	count, err := notifier.UnreadCount(author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAddCommentMissingPost(t *testing.T) {
	store, svc, _ := newInteractionFixture(t)
	reader := seedUser(t, store, "Reader", "reader")

	_, err := svc.AddComment(context.Background(), 999, reader.ID, "lost", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
