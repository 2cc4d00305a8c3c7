package handlers

import (
	"net/http"

	"github.com/blognity/backend/internal/ai"
	"github.com/labstack/echo/v4"
)

// SummarizeHandler proxies post content to the summarization service
type SummarizeHandler struct {
	aiClient *ai.Client
}

// NewSummarizeHandler creates a new SummarizeHandler
func NewSummarizeHandler(aiClient *ai.Client) *SummarizeHandler {
	return &SummarizeHandler{aiClient: aiClient}
}

// RegisterSummarizeRoutes registers the summarize route on the
// authenticated group
func (h *SummarizeHandler) RegisterSummarizeRoutes(g *echo.Group) {
	g.POST("/summarize", h.Summarize)
}

// Summarize returns a summary of the submitted content; on upstream
// failure the content comes back unchanged
func (h *SummarizeHandler) Summarize(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req struct {
		Content string `json:"content" validate:"required,min=1"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	summary := h.aiClient.Summarize(c.Request().Context(), req.Content)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"summary": summary}})
}
