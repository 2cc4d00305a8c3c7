package handlers

import (
	"net/http"
	"strconv"

	"github.com/blognity/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// AdminHandler exposes the moderation panel: user listing, full post
// listing regardless of status, and the support queue
type AdminHandler struct {
	userRepository    repositories.UserRepository
	postRepository    repositories.PostRepository
	contactRepository repositories.ContactMessageRepository
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	contactRepo repositories.ContactMessageRepository,
) *AdminHandler {
	return &AdminHandler{
		userRepository:    userRepo,
		postRepository:    postRepo,
		contactRepository: contactRepo,
	}
}

// RegisterAdminRoutes registers admin routes; the group must carry the
// admin middleware
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/users", h.GetUsers)
	g.DELETE("/users/:id", h.DeleteUser)
	g.GET("/posts", h.GetAllPosts)
	g.GET("/contact-messages", h.GetContactMessages)
	g.PUT("/contact-messages/:id/resolve", h.ResolveContactMessage)
}

// GetUsers lists all registered users
func (h *AdminHandler) GetUsers(c echo.Context) error {
	users, err := h.userRepository.GetUsers()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": users})
}

// DeleteUser removes a user account
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if err := h.userRepository.DeleteUser(uint(userID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// GetAllPosts lists every post regardless of status or visibility
func (h *AdminHandler) GetAllPosts(c echo.Context) error {
	page, limit := parsePagination(c, 20)

	posts, err := h.postRepository.GetAllPostsUnfiltered(c.Request().Context(), (page-1)*limit, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    posts,
		"meta":    echo.Map{"page": page, "limit": limit},
	})
}

// GetContactMessages lists the support queue, newest first
func (h *AdminHandler) GetContactMessages(c echo.Context) error {
	messages, err := h.contactRepository.GetMessages()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": messages})
}

// ResolveContactMessage marks a support message as resolved
func (h *AdminHandler) ResolveContactMessage(c echo.Context) error {
	messageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message ID")
	}

	if err := h.contactRepository.ResolveMessage(uint(messageID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Message not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
