package services

import (
	"context"

	"github.com/blognity/backend/internal/models"
	"github.com/blognity/backend/internal/repositories"
	"github.com/blognity/backend/pkg/cache"
	"github.com/samber/lo"
)

const (
	topAuthorsLimit = 10
	trendingLimit   = 10

	trendingCacheKey   = "posts:trending"
	topAuthorsCacheKey = "users:top-authors"
)

// FeedService composes the personalized feed from the follow graph and the
// ranked fallbacks shown when the graph yields nothing.
type FeedService struct {
	posts     repositories.PostRepository
	follows   repositories.FollowRepository
	likes     repositories.LikeRepository
	bookmarks repositories.BookmarkRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(
	postRepo repositories.PostRepository,
	followRepo repositories.FollowRepository,
	likeRepo repositories.LikeRepository,
	bookmarkRepo repositories.BookmarkRepository,
) *FeedService {
	return &FeedService{
		posts:     postRepo,
		follows:   followRepo,
		likes:     likeRepo,
		bookmarks: bookmarkRepo,
	}
}

// EnrichedPost is a post with the viewer's interaction flags attached
type EnrichedPost struct {
	models.Post
	IsLiked      bool `json:"is_liked"`
	IsBookmarked bool `json:"is_bookmarked"`
}

// ComputeFeed resolves the viewer's followee set and returns their published
// posts, newest publication first, authors attached. An empty followee set
// yields an empty feed; callers fall back to TopAuthors for the suggestion
// prompt.
func (s *FeedService) ComputeFeed(ctx context.Context, userID uint, page, limit int) ([]models.Post, error) {
	followingIDs, err := s.follows.GetFollowingIDs(userID)
	if err != nil {
		return nil, translate(err)
	}
	if len(followingIDs) == 0 {
		return []models.Post{}, nil
	}

	offset := (page - 1) * limit
	posts, err := s.posts.GetPostsByAuthorIDs(ctx, followingIDs, offset, limit)
	if err != nil {
		return nil, translate(err)
	}
	return posts, nil
}

// Enrich attaches the viewer's like/bookmark flags to a post list
func (s *FeedService) Enrich(posts []models.Post, viewerID uint) ([]EnrichedPost, error) {
	postIDs := lo.Map(posts, func(p models.Post, _ int) uint { return p.ID })

	likedMap := map[uint]bool{}
	bookmarkedMap := map[uint]bool{}
	if viewerID > 0 {
		var err error
		if likedMap, err = s.likes.GetLikedPostIDs(viewerID, postIDs); err != nil {
			return nil, translate(err)
		}
		if bookmarkedMap, err = s.bookmarks.GetBookmarkedPostIDs(viewerID, postIDs); err != nil {
			return nil, translate(err)
		}
	}

	return lo.Map(posts, func(p models.Post, _ int) EnrichedPost {
		return EnrichedPost{
			Post:         p,
			IsLiked:      likedMap[p.ID],
			IsBookmarked: bookmarkedMap[p.ID],
		}
	}), nil
}

// TopAuthors ranks users by follower count descending, capped at a fixed
// size, for the "suggested authors" prompt
func (s *FeedService) TopAuthors(ctx context.Context) ([]models.TopAuthor, error) {
	var cached []models.TopAuthor
	if cache.GetJSON(ctx, topAuthorsCacheKey, &cached) {
		return cached, nil
	}

	authors, err := s.follows.GetTopFollowed(topAuthorsLimit)
	if err != nil {
		return nil, translate(err)
	}

	cache.SetJSON(ctx, topAuthorsCacheKey, authors)
	return authors, nil
}

// Trending returns the most liked published posts
func (s *FeedService) Trending(ctx context.Context) ([]models.Post, error) {
	var cached []models.Post
	if cache.GetJSON(ctx, trendingCacheKey, &cached) {
		return cached, nil
	}

	posts, err := s.posts.GetTrendingPosts(ctx, trendingLimit)
	if err != nil {
		return nil, translate(err)
	}

	cache.SetJSON(ctx, trendingCacheKey, posts)
	return posts, nil
}
