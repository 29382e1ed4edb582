// Package notify renders order notifications: the persisted admin message,
// the customer-facing WhatsApp deep link and the admin follow-up link.
// Rendering is pure; the same order always yields byte-identical text.
package notify

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BlissMahlathi/heavenly/internal/modules/cart"
	"github.com/BlissMahlathi/heavenly/internal/modules/checkout"
	"github.com/BlissMahlathi/heavenly/internal/modules/orders"
	"github.com/BlissMahlathi/heavenly/pkg/view"
)

// PaymentLabel maps the stored payment method to its customer wording.
func PaymentLabel(method string) string {
	if method == string(cart.PaymentCash) {
		return "Cash on Delivery"
	}
	return "EFT/PayShap"
}

func fulfillmentLabel(address string) string {
	if address == checkout.CollectionMarker {
		return "Collection"
	}
	return "Delivery"
}

func orderLines(o orders.Order) []cart.Line {
	var lines []cart.Line
	if len(o.CartItemsJSON) > 0 {
		_ = json.Unmarshal(o.CartItemsJSON, &lines)
	}
	return lines
}

func itemsBlock(o orders.Order) string {
	lines := orderLines(o)
	if len(lines) == 0 {
		return fmt.Sprintf("- Mixed pies: %d pie(s)", o.Quantity)
	}
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, fmt.Sprintf("- %s: %d pie(s) x %s = %s",
			l.Flavor, l.Quantity, view.Rand(l.UnitPriceCents), view.Rand(l.TotalCents)))
	}
	return strings.Join(parts, "\n")
}

func changeInfo(o orders.Order) string {
	if !o.ChangeNeeded {
		return "No change needed"
	}
	tendered, change := 0, 0
	if o.CustomerAmountCents != nil {
		tendered = *o.CustomerAmountCents
	}
	if o.CalculatedChangeCents != nil {
		change = *o.CalculatedChangeCents
	}
	return fmt.Sprintf("Customer paying with: %s | Change needed: %s",
		view.Rand(tendered), view.Rand(change))
}

// NewOrderMessage renders the WhatsApp alert sent to the shop when an order
// lands. Optional fields (email, notes) omit their lines rather than render
// placeholders.
func NewOrderMessage(o orders.Order, manageURL string) string {
	var sb strings.Builder
	sb.WriteString("NEW PIE ORDER!\n\n")
	fmt.Fprintf(&sb, "ORDER #%s\n\n", orderNumber(o))
	fmt.Fprintf(&sb, "Customer: %s\n", o.CustomerName)
	fmt.Fprintf(&sb, "Phone: %s\n", o.CustomerPhone)
	if o.CustomerEmail != nil && *o.CustomerEmail != "" {
		fmt.Fprintf(&sb, "Email: %s\n", *o.CustomerEmail)
	}
	sb.WriteString("\nOrder Items:\n")
	sb.WriteString(itemsBlock(o))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Total: %s (%d pie(s) total)\n\n", view.Rand(o.TotalCents), o.Quantity)
	fmt.Fprintf(&sb, "Fulfillment: %s\n\n", fulfillmentLabel(o.DeliveryAddress))
	fmt.Fprintf(&sb, "Delivery Address:\n%s\n\n", o.DeliveryAddress)
	fmt.Fprintf(&sb, "Payment: %s\n", PaymentLabel(o.PaymentMethod))
	sb.WriteString(changeInfo(o))
	sb.WriteString("\n")
	if o.SpecialNotes != nil && *o.SpecialNotes != "" {
		fmt.Fprintf(&sb, "\nNotes: %s\n", *o.SpecialNotes)
	}
	if manageURL != "" {
		fmt.Fprintf(&sb, "\nManage this order:\n%s", manageURL)
	}
	return sb.String()
}

// AdminNotificationMessage renders the persisted dashboard notification.
func AdminNotificationMessage(o orders.Order) string {
	var sb strings.Builder
	sb.WriteString("NEW PIE ORDER RECEIVED!\n\n")
	fmt.Fprintf(&sb, "ORDER #%s\n\n", orderNumber(o))
	fmt.Fprintf(&sb, "Customer: %s\n", o.CustomerName)
	fmt.Fprintf(&sb, "Phone: %s\n", o.CustomerPhone)
	if o.CustomerEmail != nil && *o.CustomerEmail != "" {
		fmt.Fprintf(&sb, "Email: %s\n", *o.CustomerEmail)
	}
	sb.WriteString("\nOrder Items:\n")
	sb.WriteString(itemsBlock(o))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Total: %s (%d pie(s) total)\n\n", view.Rand(o.TotalCents), o.Quantity)
	fmt.Fprintf(&sb, "Fulfillment: %s\n\n", fulfillmentLabel(o.DeliveryAddress))
	fmt.Fprintf(&sb, "Delivery Address:\n%s\n\n", o.DeliveryAddress)
	fmt.Fprintf(&sb, "Payment Method: %s\n", PaymentLabel(o.PaymentMethod))
	sb.WriteString(changeInfo(o))
	sb.WriteString("\n")
	if o.SpecialNotes != nil && *o.SpecialNotes != "" {
		fmt.Fprintf(&sb, "\nSpecial Instructions:\n%s\n", *o.SpecialNotes)
	}
	sb.WriteString("\n--------------------------------\n")
	fmt.Fprintf(&sb, "Order Number: %s\n", orderNumber(o))
	fmt.Fprintf(&sb, "Full Order ID: %s\n", o.ID)
	return sb.String()
}

// FollowUpMessage renders the status-update text the admin sends to the
// customer once an order is accepted.
func FollowUpMessage(o orders.Order) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s! Your order of %d pie(s) for %s has been received and is being prepared. ",
		o.CustomerName, o.Quantity, view.Rand(o.TotalCents))
	if o.PaymentMethod == string(cart.PaymentCash) && o.ChangeNeeded &&
		o.CustomerAmountCents != nil && o.CalculatedChangeCents != nil {
		fmt.Fprintf(&sb, "You're paying with %s and your change will be %s. ",
			view.Rand(*o.CustomerAmountCents), view.Rand(*o.CalculatedChangeCents))
	}
	if o.DeliveryAddress == checkout.CollectionMarker {
		sb.WriteString("It will be ready for collection soon. Thank you!")
	} else {
		fmt.Fprintf(&sb, "We'll deliver it to %s soon. Thank you!", o.DeliveryAddress)
	}
	return sb.String()
}

func orderNumber(o orders.Order) string {
	if o.OrderNumber != "" {
		return o.OrderNumber
	}
	id := o.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}
