// Package checkout validates customer submission-readiness and freezes an
// order snapshot from the current cart and form state.
package checkout

import (
	"strings"

	"github.com/BlissMahlathi/heavenly/internal/modules/cart"
)

// CollectionMarker replaces the delivery address when the customer collects.
const CollectionMarker = "Collection"

// Form is the customer input collected before submission.
type Form struct {
	Name        string           `json:"name"`
	Phone       string           `json:"phone"`
	Email       string           `json:"email"`
	Address     string           `json:"address"`
	Fulfillment cart.Fulfillment `json:"fulfillment"`
	Payment     cart.Payment     `json:"payment"`

	ChangeNeeded  bool `json:"change_needed"`
	TenderedCents int  `json:"tendered_cents"`

	Notes string `json:"notes"`
}

// Submission is the frozen order payload produced once validation passes.
// It is immutable from the client's perspective; status changes later come
// from the admin surface.
type Submission struct {
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	CustomerEmail *string     `json:"customer_email"`
	CartItems     []cart.Line `json:"cart_items"`
	Quantity      int         `json:"quantity"`
	TotalCents    int         `json:"total_cents"`

	DeliveryAddress string `json:"delivery_address"`
	PaymentMethod   string `json:"payment_method"`

	ChangeNeeded          bool `json:"change_needed"`
	CustomerAmountCents   *int `json:"customer_amount_cents"`
	CalculatedChangeCents *int `json:"calculated_change_cents"`

	SpecialNotes *string `json:"special_notes"`
	Status       string  `json:"status"`
}

// Validate runs the submission rules in order and reports the first failure.
// Rule order: name, phone, address (delivery only), cart non-empty, tendered
// amount (cash + change only), non-negative change.
func Validate(f Form, c *cart.Cart) *ValidationError {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Rule: "name", Message: "Please fill in all required fields"}
	}
	if strings.TrimSpace(f.Phone) == "" {
		return &ValidationError{Rule: "phone", Message: "Please fill in all required fields"}
	}
	if f.Fulfillment == cart.FulfillmentDelivery && strings.TrimSpace(f.Address) == "" {
		return &ValidationError{Rule: "address", Message: "Please fill in all required fields"}
	}
	if c.Len() == 0 {
		return &ValidationError{Rule: "cart", Message: "Please add at least one item to your cart"}
	}
	if f.Payment == cart.PaymentCash && f.ChangeNeeded && f.TenderedCents <= 0 {
		return &ValidationError{Rule: "tendered", Message: "Please specify the amount you're paying with"}
	}
	if f.ChangeNeeded {
		totals := c.ComputeTotals(f.Fulfillment, f.Payment)
		if cart.ComputeChange(f.TenderedCents, totals.FinalTotalCents) < 0 {
			return &ValidationError{Rule: "change", Message: "The amount you're paying is less than the total"}
		}
	}
	return nil
}

// Freeze builds the immutable submission snapshot. Callers must have passed
// Validate first; Freeze does not re-check.
func Freeze(f Form, c *cart.Cart) Submission {
	totals := c.ComputeTotals(f.Fulfillment, f.Payment)
	lines := c.Snapshot()

	sub := Submission{
		CustomerName:  strings.TrimSpace(f.Name),
		CustomerPhone: strings.TrimSpace(f.Phone),
		CartItems:     lines,
		Quantity:      totals.ItemCount,
		TotalCents:    totals.FinalTotalCents,
		PaymentMethod: string(f.Payment),
		ChangeNeeded:  f.ChangeNeeded,
		Status:        "pending",
	}

	if email := strings.TrimSpace(f.Email); email != "" {
		sub.CustomerEmail = &email
	}
	if f.Fulfillment == cart.FulfillmentDelivery {
		sub.DeliveryAddress = strings.TrimSpace(f.Address)
	} else {
		sub.DeliveryAddress = CollectionMarker
	}
	if f.ChangeNeeded {
		tendered := f.TenderedCents
		change := cart.ComputeChange(tendered, totals.FinalTotalCents)
		sub.CustomerAmountCents = &tendered
		sub.CalculatedChangeCents = &change
	}
	if notes := strings.TrimSpace(f.Notes); notes != "" {
		sub.SpecialNotes = &notes
	}
	return sub
}
