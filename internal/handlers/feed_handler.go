package handlers

import (
	"net/http"

	"github.com/blognity/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles the personalized feed and its ranked fallbacks
type FeedHandler struct {
	feedService *services.FeedService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(feedService *services.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// RegisterFeedRoutes registers feed routes on the authenticated group
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
	g.GET("/feed/top-authors", h.GetTopAuthors)
}

// RegisterPublicFeedRoutes registers feed routes readable without a token
func (h *FeedHandler) RegisterPublicFeedRoutes(g *echo.Group) {
	g.GET("/posts/trending", h.GetTrending)
}

// GetFeed returns the viewer's follow-graph feed with their like and
// bookmark flags attached
func (h *FeedHandler) GetFeed(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	page, limit := parsePagination(c, 10)

	posts, err := h.feedService.ComputeFeed(c.Request().Context(), userID, page, limit)
	if err != nil {
		return serviceError(err)
	}

	enriched, err := h.feedService.Enrich(posts, userID)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    enriched,
		"meta":    echo.Map{"page": page, "limit": limit, "count": len(enriched)},
	})
}

// GetTopAuthors returns the most followed users as follow suggestions
func (h *FeedHandler) GetTopAuthors(c echo.Context) error {
	authors, err := h.feedService.TopAuthors(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": authors})
}

// GetTrending returns the most liked published posts
func (h *FeedHandler) GetTrending(c echo.Context) error {
	posts, err := h.feedService.Trending(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": posts})
}
