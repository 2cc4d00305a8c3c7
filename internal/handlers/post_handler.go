package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/blognity/backend/internal/models"
	"github.com/blognity/backend/internal/repositories"
	"github.com/blognity/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// PostHandler handles post lifecycle HTTP requests
type PostHandler struct {
	postService    *services.PostService
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *services.PostService, postRepo repositories.PostRepository, userRepo repositories.UserRepository) *PostHandler {
	return &PostHandler{
		postService:    postService,
		postRepository: postRepo,
		userRepository: userRepo,
	}
}

// RegisterPostRoutes registers post routes on the authenticated group
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.GET("/posts/exclusive", h.GetExclusivePosts)
}

// RegisterPublicPostRoutes registers post routes readable without a token
func (h *PostHandler) RegisterPublicPostRoutes(g *echo.Group) {
	g.GET("/posts", h.ListPosts)
	g.GET("/posts/search", h.SearchPosts)
	g.GET("/posts/:slug", h.GetPostBySlug)
	g.GET("/users/:username/posts", h.GetPostsByAuthor)
}

// CreatePost creates a new post for the authenticated author
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postService.CreatePost(c.Request().Context(), req, userID)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": post})
}

// UpdatePost applies a partial update to a post
func (h *PostHandler) UpdatePost(c echo.Context) error {
	userID := getUserIDFromContext(c)
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postService.UpdatePost(c.Request().Context(), uint(postID), req, userID)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": post})
}

// DeletePost removes a post owned by the caller (or any post for admins)
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID := getUserIDFromContext(c)
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if err := h.postService.DeletePost(c.Request().Context(), uint(postID), userID); err != nil {
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListPosts lists published public posts, newest publication first
func (h *PostHandler) ListPosts(c echo.Context) error {
	page, limit := parsePagination(c, 10)

	posts, err := h.postRepository.GetAllPosts(c.Request().Context(), (page-1)*limit, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    posts,
		"meta":    echo.Map{"page": page, "limit": limit},
	})
}

// GetPostBySlug reads a single post; private posts are gated on paid access
func (h *PostHandler) GetPostBySlug(c echo.Context) error {
	viewerID := getUserIDFromContext(c)

	post, err := h.postService.GetPostBySlug(c.Request().Context(), c.Param("slug"), viewerID)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": post})
}

// GetPostsByAuthor lists an author's posts by username
func (h *PostHandler) GetPostsByAuthor(c echo.Context) error {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	posts, err := h.postRepository.GetPostsByAuthor(c.Request().Context(), user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": posts})
}

// GetExclusivePosts lists published exclusive posts for paying members
func (h *PostHandler) GetExclusivePosts(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authenticated user not found in database")
	}
	if !user.HasPaidAccess && !user.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "Paid membership required")
	}

	posts, err := h.postRepository.GetExclusivePosts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": posts})
}

// SearchPosts searches published posts by title or content
func (h *PostHandler) SearchPosts(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query 'q' is required")
	}

	posts, err := h.postRepository.SearchPosts(c.Request().Context(), query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": posts})
}
