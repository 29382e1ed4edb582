// Package cart implements the in-memory cart engine: line management and
// derived pricing. Totals are never cached, they are recomputed from the
// line list on every read.
package cart

import (
	"sync"

	"github.com/google/uuid"

	"github.com/BlissMahlathi/heavenly/internal/modules/catalog"
)

type Fulfillment string

type Payment string

const (
	FulfillmentDelivery   Fulfillment = "delivery"
	FulfillmentCollection Fulfillment = "collection"

	PaymentCash Payment = "cash"
	PaymentEFT  Payment = "eft"
)

// Flat fees in cents.
const (
	DeliveryFeeCents = 1000
	TransferFeeCents = 200
)

// Line is one user-added cart entry. UnitPriceCents is captured from the
// catalog at add time and never re-read afterwards.
type Line struct {
	ID             string `json:"id"`
	Flavor         string `json:"flavor"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int    `json:"unit_price_cents"`
	TotalCents     int    `json:"total_cents"`
}

// Cart is an insertion-ordered collection of lines. One session's cart is
// shared by every concurrent request carrying that session's cookie (two
// tabs, a double-click), so all access goes through the locked methods;
// Lines is exported for serialization and single-owner use only.
type Cart struct {
	mu    sync.Mutex
	Lines []Line `json:"lines"`
}

type Totals struct {
	SubtotalCents    int `json:"subtotal_cents"`
	DeliveryFeeCents int `json:"delivery_fee_cents"`
	TransferFeeCents int `json:"transfer_fee_cents"`
	FinalTotalCents  int `json:"final_total_cents"`
	ItemCount        int `json:"item_count"`
}

func New() *Cart { return &Cart{} }

// AddItem appends a new line for the named catalog item. Unknown names,
// unavailable items and quantities below 1 are silent no-ops. Repeat
// additions of the same flavor stay on separate lines.
func (c *Cart) AddItem(name string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addLocked(name, qty)
}

// AddBundle expands a deal into individual lines, in list order. The deal's
// display price does not participate in pricing. The expansion is atomic:
// a concurrent reader sees the whole bundle or none of it.
func (c *Cart) AddBundle(d catalog.Deal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, di := range d.Items {
		c.addLocked(di.Name, di.Quantity)
	}
}

func (c *Cart) addLocked(name string, qty int) {
	if qty < 1 {
		return
	}
	it, ok := catalog.Lookup(name)
	if !ok || !it.Available {
		return
	}
	c.Lines = append(c.Lines, Line{
		ID:             uuid.NewString(),
		Flavor:         it.Name,
		Quantity:       qty,
		UnitPriceCents: it.PriceCents,
		TotalCents:     qty * it.PriceCents,
	})
}

// UpdateLineQuantity sets a line's quantity, recomputing its total from the
// captured unit price. A quantity of zero or less removes the line.
func (c *Cart) UpdateLineQuantity(lineID string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if qty <= 0 {
		c.removeLocked(lineID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines[i].Quantity = qty
			c.Lines[i].TotalCents = qty * c.Lines[i].UnitPriceCents
			return
		}
	}
}

// RemoveLine deletes a line; no-op if the id is unknown.
func (c *Cart) RemoveLine(lineID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(lineID)
}

func (c *Cart) removeLocked(lineID string) {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Clear drops every line (after a successful order submission).
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Lines = nil
}

// Snapshot returns a copy of the current lines, safe to hold after the
// cart moves on.
func (c *Cart) Snapshot() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.Lines))
	copy(out, c.Lines)
	return out
}

// Len reports the number of lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.Lines)
}

// ComputeTotals derives pricing from the current lines and the chosen
// fulfillment/payment. The delivery fee applies only to non-empty delivery
// carts; the transfer fee only to EFT payments. Fees are flat.
func (c *Cart) ComputeTotals(f Fulfillment, p Payment) Totals {
	c.mu.Lock()
	defer c.mu.Unlock()

	var t Totals
	for _, l := range c.Lines {
		t.SubtotalCents += l.TotalCents
		t.ItemCount += l.Quantity
	}
	if f == FulfillmentDelivery && len(c.Lines) > 0 {
		t.DeliveryFeeCents = DeliveryFeeCents
	}
	if p == PaymentEFT {
		t.TransferFeeCents = TransferFeeCents
	}
	t.FinalTotalCents = t.SubtotalCents + t.DeliveryFeeCents + t.TransferFeeCents
	return t
}

// ComputeChange returns tendered minus total, in cents. A negative result is
// a validation error for the caller, never clamped here.
func ComputeChange(tenderedCents, finalTotalCents int) int {
	return tenderedCents - finalTotalCents
}
