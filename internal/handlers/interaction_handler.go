package handlers

import (
	"net/http"
	"strconv"

	"github.com/blognity/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// InteractionHandler handles the like, bookmark and follow toggles
type InteractionHandler struct {
	interactionService *services.InteractionService
}

// NewInteractionHandler creates a new InteractionHandler
func NewInteractionHandler(interactionService *services.InteractionService) *InteractionHandler {
	return &InteractionHandler{interactionService: interactionService}
}

// RegisterInteractionRoutes registers toggle routes on the authenticated group
func (h *InteractionHandler) RegisterInteractionRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/like", h.ToggleLike)
	g.POST("/posts/:post_id/bookmark", h.ToggleBookmark)
	g.POST("/users/:user_id/follow", h.ToggleFollow)
}

// ToggleLike flips the caller's like on a post and returns the new state
// with the updated counter
func (h *InteractionHandler) ToggleLike(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	liked, likesCount, err := h.interactionService.ToggleLike(c.Request().Context(), uint(postID), userID)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"liked": liked, "likes_count": likesCount},
	})
}

// ToggleBookmark flips the caller's bookmark on a post
func (h *InteractionHandler) ToggleBookmark(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	bookmarked, err := h.interactionService.ToggleBookmark(c.Request().Context(), uint(postID), userID)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"bookmarked": bookmarked},
	})
}

// ToggleFollow flips the caller's follow edge to another user
func (h *InteractionHandler) ToggleFollow(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	following, err := h.interactionService.ToggleFollow(c.Request().Context(), userID, uint(targetID))
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"following": following},
	})
}
