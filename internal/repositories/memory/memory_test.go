package memory

import (
	"context"
	"testing"
	"time"

	"github.com/blognity/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAuthorWithPosts(t *testing.T) (*Store, *models.User) {
	t.Helper()
	store := NewStore()
	author := &models.User{Name: "Author", Username: "author", Email: "author@example.com"}
	require.NoError(t, store.Users().CreateUser(author))

	now := time.Now()
	for _, p := range []*models.Post{
		{Title: "Public Piece", Content: "open words", Slug: "public-piece",
			Status: models.StatusPublished, Visibility: models.VisibilityPublic, AuthorID: author.ID, PublishedAt: &now},
		{Title: "Members Only", Content: "paywalled words", Slug: "members-only",
			Status: models.StatusPublished, Visibility: models.VisibilityPrivate, AuthorID: author.ID, PublishedAt: &now},
		{Title: "Secret Draft", Content: "unpublished words", Slug: "secret-draft",
			Status: models.StatusDraft, Visibility: models.VisibilityPublic, AuthorID: author.ID},
	} {
		require.NoError(t, store.Posts().CreatePost(context.Background(), p))
	}
	return store, author
}

func TestGetPostsByAuthorHidesDraftsAndPaywalled(t *testing.T) {
	store, author := seedAuthorWithPosts(t)

	posts, err := store.Posts().GetPostsByAuthor(context.Background(), author.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Public Piece", posts[0].Title)
}

func TestGetPostsByAuthorIDsHidesPaywalled(t *testing.T) {
	store, author := seedAuthorWithPosts(t)

	posts, err := store.Posts().GetPostsByAuthorIDs(context.Background(), []uint{author.ID}, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Public Piece", posts[0].Title)
}

func TestSearchPostsHidesDraftsAndPaywalled(t *testing.T) {
	store, _ := seedAuthorWithPosts(t)

	posts, err := store.Posts().SearchPosts(context.Background(), "words")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Public Piece", posts[0].Title)

	posts, err = store.Posts().SearchPosts(context.Background(), "paywalled")
	require.NoError(t, err)
	assert.Empty(t, posts)
}
