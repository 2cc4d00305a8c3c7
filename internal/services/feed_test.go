package services

import (
	"context"
	"testing"
	"time"

	"github.com/blognity/backend/internal/models"
	"github.com/blognity/backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedFixture(t *testing.T) (*memory.Store, *FeedService, *InteractionService) {
	t.Helper()
	store := memory.NewStore()
	notifier := NewNotificationService(store.Notifications(), store.Users(), store.Posts())
	interactions := NewInteractionService(
		store.Likes(), store.Bookmarks(), store.Follows(), store.Comments(),
		store.Posts(), store.Users(), notifier,
	)
	feed := NewFeedService(store.Posts(), store.Follows(), store.Likes(), store.Bookmarks())
	return store, feed, interactions
}

func publishAt(t *testing.T, store *memory.Store, authorID uint, title string, at time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:       title,
		Content:     "content",
		Slug:        GenerateSlug(title),
		Status:      models.StatusPublished,
		AuthorID:    authorID,
		PublishedAt: &at,
	}
	require.NoError(t, store.Posts().CreatePost(context.Background(), post))
	return post
}

func TestFeedEmptyWithoutFollows(t *testing.T) {
	store, feed, _ := newFeedFixture(t)
	viewer := seedUser(t, store, "Viewer", "viewer")
	writer := seedUser(t, store, "Writer", "writer")
	publishAt(t, store, writer.ID, "Unfollowed Post", time.Now())

	posts, err := feed.ComputeFeed(context.Background(), viewer.ID, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestFeedShowsFolloweePosts(t *testing.T) {
	store, feed, interactions := newFeedFixture(t)
	viewer := seedUser(t, store, "Viewer", "viewer")
	writer := seedUser(t, store, "Writer", "writer")

	_, err := interactions.ToggleFollow(context.Background(), viewer.ID, writer.ID)
	require.NoError(t, err)

	publishAt(t, store, writer.ID, "Post X", time.Now())

	posts, err := feed.ComputeFeed(context.Background(), viewer.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Post X", posts[0].Title)
	require.NotNil(t, posts[0].Author)
	assert.Equal(t, "writer", posts[0].Author.Username)
}

func TestFeedFiltersToFolloweesOnly(t *testing.T) {
	store, feed, interactions := newFeedFixture(t)
	viewer := seedUser(t, store, "Viewer", "viewer")
	followed := seedUser(t, store, "Followed", "followed")
	stranger := seedUser(t, store, "Stranger", "stranger")

	_, err := interactions.ToggleFollow(context.Background(), viewer.ID, followed.ID)
	require.NoError(t, err)

	publishAt(t, store, followed.ID, "From Followed", time.Now())
	publishAt(t, store, stranger.ID, "From Stranger", time.Now())

	posts, err := feed.ComputeFeed(context.Background(), viewer.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "From Followed", posts[0].Title)
}

func TestFeedNewestPublicationFirst(t *testing.T) {
	store, feed, interactions := newFeedFixture(t)
	viewer := seedUser(t, store, "Viewer", "viewer")
	writer := seedUser(t, store, "Writer", "writer")

	_, err := interactions.ToggleFollow(context.Background(), viewer.ID, writer.ID)
	require.NoError(t, err)

	base := time.Now()
	publishAt(t, store, writer.ID, "Oldest", base.Add(-2*time.Hour))
	publishAt(t, store, writer.ID, "Newest", base)
	publishAt(t, store, writer.ID, "Middle", base.Add(-time.Hour))

	posts, err := feed.ComputeFeed(context.Background(), viewer.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "Newest", posts[0].Title)
	assert.Equal(t, "Middle", posts[1].Title)
	assert.Equal(t, "Oldest", posts[2].Title)
}

func TestFeedExcludesDrafts(t *testing.T) {
	store, feed, interactions := newFeedFixture(t)
	viewer := seedUser(t, store, "Viewer", "viewer")
	writer := seedUser(t, store, "Writer", "writer")

	_, err := interactions.ToggleFollow(context.Background(), viewer.ID, writer.ID)
	require.NoError(t, err)

	draft := &models.Post{
		Title:    "Work In Progress",
		Content:  "draft",
		Slug:     "work-in-progress",
		Status:   models.StatusDraft,
		AuthorID: writer.ID,
	}
	require.NoError(t, store.Posts().CreatePost(context.Background(), draft))
	publishAt(t, store, writer.ID, "Shipped", time.Now())

	posts, err := feed.ComputeFeed(context.Background(), viewer.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Shipped", posts[0].Title)
}

func TestFeedExcludesPaywalledPosts(t *testing.T) {
	store, feed, interactions := newFeedFixture(t)
	viewer := seedUser(t, store, "Viewer", "viewer")
	writer := seedUser(t, store, "Writer", "writer")

	_, err := interactions.ToggleFollow(context.Background(), viewer.ID, writer.ID)
	require.NoError(t, err)

	now := time.Now()
	exclusive := &models.Post{
		Title:       "Members Only",
		Content:     "paywalled",
		Slug:        "members-only",
		Status:      models.StatusPublished,
		Visibility:  models.VisibilityPrivate,
		AuthorID:    writer.ID,
		PublishedAt: &now,
	}
	require.NoError(t, store.Posts().CreatePost(context.Background(), exclusive))
	publishAt(t, store, writer.ID, "Open Post", now)

	posts, err := feed.ComputeFeed(context.Background(), viewer.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Open Post", posts[0].Title)
}

func TestEnrichAttachesViewerFlags(t *testing.T) {
	store, feed, interactions := newFeedFixture(t)
	viewer := seedUser(t, store, "Viewer", "viewer")
	writer := seedUser(t, store, "Writer", "writer")

	liked := publishAt(t, store, writer.ID, "Liked", time.Now())
	marked := publishAt(t, store, writer.ID, "Marked", time.Now())
	plain := publishAt(t, store, writer.ID, "Plain", time.Now())

	_, _, err := interactions.ToggleLike(context.Background(), liked.ID, viewer.ID)
	require.NoError(t, err)
	_, err = interactions.ToggleBookmark(context.Background(), marked.ID, viewer.ID)
	require.NoError(t, err)

	posts, err := store.Posts().GetPostsByAuthor(context.Background(), writer.ID)
	require.NoError(t, err)

	enriched, err := feed.Enrich(posts, viewer.ID)
	require.NoError(t, err)

	byID := map[uint]EnrichedPost{}
	for _, p := range enriched {
		byID[p.ID] = p
	}
	assert.True(t, byID[liked.ID].IsLiked)
	assert.False(t, byID[liked.ID].IsBookmarked)
	assert.True(t, byID[marked.ID].IsBookmarked)
	assert.False(t, byID[marked.ID].IsLiked)
	assert.False(t, byID[plain.ID].IsLiked)
	assert.False(t, byID[plain.ID].IsBookmarked)
}

func TestTopAuthorsRankedByFollowers(t *testing.T) {
	store, feed, interactions := newFeedFixture(t)
	popular := seedUser(t, store, "Popular", "popular")
	modest := seedUser(t, store, "Modest", "modest")
	fanA := seedUser(t, store, "FanA", "fana")
	fanB := seedUser(t, store, "FanB", "fanb")

	for _, fan := range []uint{fanA.ID, fanB.ID} {
		_, err := interactions.ToggleFollow(context.Background(), fan, popular.ID)
		require.NoError(t, err)
	}
	_, err := interactions.ToggleFollow(context.Background(), fanA.ID, modest.ID)
	require.NoError(t, err)

	authors, err := feed.TopAuthors(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, authors)
	assert.Equal(t, popular.ID, authors[0].ID)
	assert.Equal(t, int64(2), authors[0].FollowersCount)
}

func TestTrendingOrderedByLikes(t *testing.T) {
	store, feed, interactions := newFeedFixture(t)
	writer := seedUser(t, store, "Writer", "writer")
	fanA := seedUser(t, store, "FanA", "fana")
	fanB := seedUser(t, store, "FanB", "fanb")

	hot := publishAt(t, store, writer.ID, "Hot", time.Now())
	cold := publishAt(t, store, writer.ID, "Cold", time.Now())

	for _, fan := range []uint{fanA.ID, fanB.ID} {
		_, _, err := interactions.ToggleLike(context.Background(), hot.ID, fan)
		require.NoError(t, err)
	}

	posts, err := feed.Trending(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, hot.ID, posts[0].ID)
	assert.Equal(t, cold.ID, posts[1].ID)
}
