package notify

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlissMahlathi/heavenly/internal/modules/cart"
	"github.com/BlissMahlathi/heavenly/internal/modules/orders"
)

func sampleOrder(t *testing.T) orders.Order {
	t.Helper()
	lines := []cart.Line{
		{ID: "l1", Flavor: "Chicken Mild", Quantity: 2, UnitPriceCents: 2999, TotalCents: 5998},
	}
	raw, err := json.Marshal(lines)
	require.NoError(t, err)

	return orders.Order{
		ID:            "a1b2c3d4-0000-0000-0000-000000000000",
		OrderNumber:   "A1B2C3D4",
		CustomerName:  "Thabo M",
		CustomerPhone: "066 362 1868",
		CartItemsJSON: raw,
		Quantity:      2,
		TotalCents:    5998,

		DeliveryAddress: "Collection",
		PaymentMethod:   "cash",

		Status:    orders.StatusPending,
		CreatedAt: time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestPaymentLabel(t *testing.T) {
	assert.Equal(t, "Cash on Delivery", PaymentLabel("cash"))
	assert.Equal(t, "EFT/PayShap", PaymentLabel("eft"))
}

func TestNewOrderMessageDeterministic(t *testing.T) {
	o := sampleOrder(t)
	a := NewOrderMessage(o, "https://example.com/admin")
	b := NewOrderMessage(o, "https://example.com/admin")
	assert.Equal(t, a, b)
}

func TestNewOrderMessageContent(t *testing.T) {
	o := sampleOrder(t)
	msg := NewOrderMessage(o, "https://example.com/admin")

	assert.True(t, strings.HasPrefix(msg, "NEW PIE ORDER!\n"))
	assert.Contains(t, msg, "ORDER #A1B2C3D4")
	assert.Contains(t, msg, "Customer: Thabo M")
	assert.Contains(t, msg, "- Chicken Mild: 2 pie(s) x R29.99 = R59.98")
	assert.Contains(t, msg, "Total: R59.98 (2 pie(s) total)")
	assert.Contains(t, msg, "Fulfillment: Collection")
	assert.Contains(t, msg, "Payment: Cash on Delivery")
	assert.Contains(t, msg, "No change needed")
	assert.Contains(t, msg, "Manage this order:\nhttps://example.com/admin")

	// optional fields omit their lines entirely
	assert.NotContains(t, msg, "Email:")
	assert.NotContains(t, msg, "Notes:")
}

func TestNewOrderMessageOptionalFields(t *testing.T) {
	o := sampleOrder(t)
	email := "thabo@example.com"
	notes := "no onions"
	tendered, change := 10000, 4002
	o.CustomerEmail = &email
	o.SpecialNotes = &notes
	o.ChangeNeeded = true
	o.CustomerAmountCents = &tendered
	o.CalculatedChangeCents = &change

	msg := NewOrderMessage(o, "")
	assert.Contains(t, msg, "Email: thabo@example.com")
	assert.Contains(t, msg, "Notes: no onions")
	assert.Contains(t, msg, "Customer paying with: R100.00 | Change needed: R40.02")
	assert.NotContains(t, msg, "Manage this order")
}

func TestAdminNotificationMessageFooter(t *testing.T) {
	o := sampleOrder(t)
	msg := AdminNotificationMessage(o)

	assert.True(t, strings.HasPrefix(msg, "NEW PIE ORDER RECEIVED!\n"))
	assert.Contains(t, msg, "--------------------------------")
	assert.Contains(t, msg, "Order Number: A1B2C3D4")
	assert.Contains(t, msg, "Full Order ID: a1b2c3d4-0000-0000-0000-000000000000")
}

func TestOrderNumberFallback(t *testing.T) {
	o := sampleOrder(t)
	o.OrderNumber = ""
	msg := AdminNotificationMessage(o)
	assert.Contains(t, msg, "ORDER #A1B2C3D4")
}

func TestFollowUpMessageCollection(t *testing.T) {
	o := sampleOrder(t)
	msg := FollowUpMessage(o)

	assert.Equal(t, "Hi Thabo M! Your order of 2 pie(s) for R59.98 has been received and is being prepared. It will be ready for collection soon. Thank you!", msg)
}

func TestFollowUpMessageDeliveryWithChange(t *testing.T) {
	o := sampleOrder(t)
	o.DeliveryAddress = "12 Main Rd"
	tendered, change := 10000, 4002
	o.ChangeNeeded = true
	o.CustomerAmountCents = &tendered
	o.CalculatedChangeCents = &change

	msg := FollowUpMessage(o)
	assert.Contains(t, msg, "You're paying with R100.00 and your change will be R40.02. ")
	assert.True(t, strings.HasSuffix(msg, "We'll deliver it to 12 Main Rd soon. Thank you!"))
}
