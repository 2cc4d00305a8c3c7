package handlers

import (
	"net/http"

	"github.com/blognity/backend/internal/payment"
	"github.com/blognity/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// PaymentHandler handles the mock paywall checkout flow: order creation
// and signature verification that unlocks paid access
type PaymentHandler struct {
	userRepository repositories.UserRepository
	keySecret      string
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(userRepo repositories.UserRepository, keySecret string) *PaymentHandler {
	return &PaymentHandler{
		userRepository: userRepo,
		keySecret:      keySecret,
	}
}

// RegisterPaymentRoutes registers payment routes on the authenticated group
func (h *PaymentHandler) RegisterPaymentRoutes(g *echo.Group) {
	g.POST("/payments/order", h.CreateOrder)
	g.POST("/payments/verify", h.VerifyPayment)
}

// CreateOrder creates a gateway order for the membership amount
func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req struct {
		Amount   int64  `json:"amount" validate:"required,gt=0"`
		Currency string `json:"currency,omitempty" validate:"omitempty,len=3"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order := payment.NewOrder(req.Amount, req.Currency)
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": order})
}

// VerifyPayment checks the gateway signature and, when valid, grants the
// caller paid access
func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req struct {
		OrderID   string `json:"order_id" validate:"required"`
		PaymentID string `json:"payment_id" validate:"required"`
		Signature string `json:"signature" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if !payment.VerifySignature(req.OrderID, req.PaymentID, req.Signature, h.keySecret) {
		return echo.NewHTTPError(http.StatusBadRequest, "Payment signature verification failed")
	}

	if err := h.userRepository.SetPaidAccess(userID, true); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"has_paid_access": true},
	})
}
