package handlers

import (
	"net/http"

	"github.com/blognity/backend/internal/models"
	"github.com/blognity/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ContactHandler handles the public contact form
type ContactHandler struct {
	contactRepository repositories.ContactMessageRepository
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactRepo repositories.ContactMessageRepository) *ContactHandler {
	return &ContactHandler{contactRepository: contactRepo}
}

// RegisterContactRoutes registers the public contact route
func (h *ContactHandler) RegisterContactRoutes(g *echo.Group) {
	g.POST("/contact", h.CreateMessage)
}

// CreateMessage queues a support message; every message starts pending
func (h *ContactHandler) CreateMessage(c echo.Context) error {
	var req models.CreateContactMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Status:  models.ContactStatusPending,
	}
	if err := h.contactRepository.CreateMessage(message); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": message})
}
