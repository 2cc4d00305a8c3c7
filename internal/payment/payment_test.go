package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOrder(t *testing.T) {
	order := NewOrder(499, "")

	assert.True(t, strings.HasPrefix(order.ID, "order_"))
	assert.True(t, strings.HasPrefix(order.Receipt, "receipt_"))
	assert.Equal(t, int64(49900), order.Amount)
	assert.Equal(t, "INR", order.Currency)

	usd := NewOrder(10, "USD")
	assert.Equal(t, "USD", usd.Currency)
	assert.NotEqual(t, order.ID, usd.ID)
}

func TestVerifySignature(t *testing.T) {
	const secret = "test-key-secret"
	sig := Sign("order_abc", "pay_xyz", secret)

	assert.True(t, VerifySignature("order_abc", "pay_xyz", sig, secret))
	assert.False(t, VerifySignature("order_abc", "pay_other", sig, secret))
	assert.False(t, VerifySignature("order_other", "pay_xyz", sig, secret))
	assert.False(t, VerifySignature("order_abc", "pay_xyz", sig, "wrong-secret"))
	assert.False(t, VerifySignature("order_abc", "pay_xyz", "not-a-signature", secret))
}
