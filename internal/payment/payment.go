// Package payment implements the mock gateway side of the paywall: order
// creation and out-of-band signature verification. The real gateway is an
// opaque collaborator; only the signature contract matters here.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Order is a gateway order handed to the client for checkout
type Order struct {
	ID        string    `json:"id"`
	Amount    int64     `json:"amount"` // in currency subunits
	Currency  string    `json:"currency"`
	Receipt   string    `json:"receipt"`
	CreatedAt time.Time `json:"created_at"`
}

// NewOrder creates an order for the given amount in major currency units
func NewOrder(amount int64, currency string) Order {
	if currency == "" {
		currency = "INR"
	}
	return Order{
		ID:        "order_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Amount:    amount * 100,
		Currency:  currency,
		Receipt:   "receipt_" + uuid.NewString(),
		CreatedAt: time.Now(),
	}
}

// Sign computes the gateway signature over "orderID|paymentID"
func Sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a webhook signature in constant time
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	expected := Sign(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
