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

func newPostFixture(t *testing.T) (*memory.Store, *PostService) {
	t.Helper()
	store := memory.NewStore()
	svc := NewPostService(store.Posts(), store.Tags(), store.Users())
	return store, svc
}

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello, World!", "hello-world"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Already-hyphenated title", "already-hyphenated-title"},
		{"UPPER case 123", "upper-case-123"},
		{"___", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateSlug(tt.title), "title %q", tt.title)
	}
}

func TestCreatePostPublishedSetsPublishedAt(t *testing.T) {
	store, svc := newPostFixture(t)
	author := seedUser(t, store, "Author", "author")

	post, err := svc.CreatePost(context.Background(), models.CreatePostRequest{
		Title:      "My First Post",
		Content:    "body",
		Status:     models.StatusPublished,
		Visibility: models.VisibilityPublic,
	}, author.ID)
	require.NoError(t, err)
	assert.Equal(t, "my-first-post", post.Slug)
	require.NotNil(t, post.PublishedAt)
}

func TestCreatePostDraftLeavesPublishedAtNil(t *testing.T) {
	store, svc := newPostFixture(t)
	author := seedUser(t, store, "Author", "author")

	post, err := svc.CreatePost(context.Background(), models.CreatePostRequest{
		Title:      "Draft Post",
		Content:    "body",
		Status:     models.StatusDraft,
		Visibility: models.VisibilityPublic,
	}, author.ID)
	require.NoError(t, err)
	assert.Nil(t, post.PublishedAt)
}

func TestCreatePostDuplicateTitleGetsDistinctSlug(t *testing.T) {
	store, svc := newPostFixture(t)
	author := seedUser(t, store, "Author", "author")

	req := models.CreatePostRequest{
		Title:      "Same Title",
		Content:    "body",
		Status:     models.StatusPublished,
		Visibility: models.VisibilityPublic,
	}
	first, err := svc.CreatePost(context.Background(), req, author.ID)
	require.NoError(t, err)
	second, err := svc.CreatePost(context.Background(), req, author.ID)
	require.NoError(t, err)

	assert.Equal(t, "same-title", first.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Contains(t, second.Slug, "same-title-")
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	_, svc := newPostFixture(t)

	_, err := svc.CreatePost(context.Background(), models.CreatePostRequest{
		Title:      "Orphan",
		Content:    "body",
		Status:     models.StatusDraft,
		Visibility: models.VisibilityPublic,
	}, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePostAttachesTags(t *testing.T) {
	store, svc := newPostFixture(t)
	author := seedUser(t, store, "Author", "author")

	post, err := svc.CreatePost(context.Background(), models.CreatePostRequest{
		Title:      "Tagged",
		Content:    "body",
		Status:     models.StatusPublished,
		Visibility: models.VisibilityPublic,
		Tags:       []string{"Go", "testing"},
	}, author.ID)
	require.NoError(t, err)
	require.Len(t, post.Tags, 2)

	// The same tag name reuses the existing row
	again, err := svc.CreatePost(context.Background(), models.CreatePostRequest{
		Title:      "Tagged Again",
		Content:    "body",
		Status:     models.StatusPublished,
		Visibility: models.VisibilityPublic,
		Tags:       []string{"go"},
	}, author.ID)
	require.NoError(t, err)
	require.Len(t, again.Tags, 1)
	assert.Equal(t, post.Tags[0].ID, again.Tags[0].ID)
}

func TestUpdatePostPublishTransitionSetsPublishedAtOnce(t *testing.T) {
	store, svc := newPostFixture(t)
	author := seedUser(t, store, "Author", "author")

	post, err := svc.CreatePost(context.Background(), models.CreatePostRequest{
		Title:      "Slow Burn",
		Content:    "body",
		Status:     models.StatusDraft,
		Visibility: models.VisibilityPublic,
	}, author.ID)
	require.NoError(t, err)
	require.Nil(t, post.PublishedAt)

	published, err := svc.UpdatePost(context.Background(), post.ID, models.UpdatePostRequest{
		Status: models.StatusPublished,
	}, author.ID)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstPublishedAt := *published.PublishedAt

	time.Sleep(5 * time.Millisecond)

	// Re-saving an already published post keeps the original timestamp
	edited, err := svc.UpdatePost(context.Background(), post.ID, models.UpdatePostRequest{
		Title:  "Slow Burn (edited)",
		Status: models.StatusPublished,
	}, author.ID)
	require.NoError(t, err)
	require.NotNil(t, edited.PublishedAt)
	assert.True(t, edited.PublishedAt.Equal(firstPublishedAt))
}

func TestUpdatePostForbiddenForNonAuthor(t *testing.T) {
	store, svc := newPostFixture(t)
	author := seedUser(t, store, "Author", "author")
	other := seedUser(t, store, "Other", "other")

	post, err := svc.CreatePost(context.Background(), models.CreatePostRequest{
		Title:      "Mine",
		Content:    "body",
		Status:     models.StatusPublished,
		Visibility: models.VisibilityPublic,
	}, author.ID)
	require.NoError(t, err)

	_, err = svc.UpdatePost(context.Background(), post.ID, models.UpdatePostRequest{Title: "Yours"}, other.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.DeletePost(context.Background(), post.ID, other.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdatePostAdminAllowed(t *testing.T) {
	store, svc := newPostFixture(t)
	author := seedUser(t, store, "Author", "author")
	admin := &models.User{Name: "Admin", Username: "admin", Email: "admin@example.com", Role: models.RoleAdmin}
	require.NoError(t, store.Users().CreateUser(admin))

	post, err := svc.CreatePost(context.Background(), models.CreatePostRequest{
		Title:      "Moderated",
		Content:    "body",
		Status:     models.StatusPublished,
		Visibility: models.VisibilityPublic,
	}, author.ID)
	require.NoError(t, err)

	updated, err := svc.UpdatePost(context.Background(), post.ID, models.UpdatePostRequest{Title: "Moderated (fixed)"}, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "Moderated (fixed)", updated.Title)
}

func TestDeletePostCascadesInteractions(t *testing.T) {
	store, svc := newPostFixture(t)
	author := seedUser(t, store, "Author", "author")
	reader := seedUser(t, store, "Reader", "reader")

	post, err := svc.CreatePost(context.Background(), models.CreatePostRequest{
		Title:      "Short Lived",
		Content:    "body",
		Status:     models.StatusPublished,
		Visibility: models.VisibilityPublic,
	}, author.ID)
	require.NoError(t, err)

	_, _, err = store.Likes().Toggle(context.Background(), post.ID, reader.ID)
	require.NoError(t, err)
	_, err = store.Bookmarks().Toggle(context.Background(), post.ID, reader.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(context.Background(), post.ID, author.ID))

	_, err = store.Posts().GetPostByID(context.Background(), post.ID)
	assert.ErrorIs(t, translate(err), ErrNotFound)

	hasLiked, err := store.Likes().HasUserLikedPost(post.ID, reader.ID)
	require.NoError(t, err)
	assert.False(t, hasLiked)
	bookmarked, err := store.Bookmarks().IsPostBookmarked(reader.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, bookmarked)
}

func TestGetPostBySlugGatesExclusiveContent(t *testing.T) {
	store, svc := newPostFixture(t)
	author := seedUser(t, store, "Author", "author")
	free := seedUser(t, store, "Free", "freerider")
	paying := &models.User{Name: "Member", Username: "member", Email: "member@example.com", HasPaidAccess: true}
	require.NoError(t, store.Users().CreateUser(paying))

	post, err := svc.CreatePost(context.Background(), models.CreatePostRequest{
		Title:      "Members Only",
		Content:    "body",
		Status:     models.StatusPublished,
		Visibility: models.VisibilityPrivate,
	}, author.ID)
	require.NoError(t, err)

	_, err = svc.GetPostBySlug(context.Background(), post.Slug, 0)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.GetPostBySlug(context.Background(), post.Slug, free.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := svc.GetPostBySlug(context.Background(), post.Slug, paying.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)

	// The author always reads their own post
	got, err = svc.GetPostBySlug(context.Background(), post.Slug, author.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
}

func TestGetPostBySlugIncrementsViews(t *testing.T) {
	store, svc := newPostFixture(t)
	author := seedUser(t, store, "Author", "author")

	post, err := svc.CreatePost(context.Background(), models.CreatePostRequest{
		Title:      "Counted",
		Content:    "body",
		Status:     models.StatusPublished,
		Visibility: models.VisibilityPublic,
	}, author.ID)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = svc.GetPostBySlug(context.Background(), post.Slug, 0)
		require.NoError(t, err)
	}

	stored, err := store.Posts().GetPostByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stored.ViewsCount)
}
