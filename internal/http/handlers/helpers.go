package handlers

import (
	"github.com/BlissMahlathi/heavenly/internal/modules/cart"
	"github.com/BlissMahlathi/heavenly/internal/modules/notify"
	"github.com/BlissMahlathi/heavenly/internal/modules/orders"
	"github.com/BlissMahlathi/heavenly/pkg/view"
)

func cartPage(c *cart.Cart, t cart.Totals) view.CartPage {
	lines := c.Snapshot()
	p := view.CartPage{
		Lines: make([]view.CartLine, 0, len(lines)),

		SubtotalCents:    t.SubtotalCents,
		Subtotal:         view.Rand(t.SubtotalCents),
		DeliveryFeeCents: t.DeliveryFeeCents,
		DeliveryFee:      view.Rand(t.DeliveryFeeCents),
		TransferFeeCents: t.TransferFeeCents,
		TransferFee:      view.Rand(t.TransferFeeCents),
		FinalTotalCents:  t.FinalTotalCents,
		FinalTotal:       view.Rand(t.FinalTotalCents),
		ItemCount:        t.ItemCount,
	}
	for _, l := range lines {
		p.Lines = append(p.Lines, view.CartLine{
			ID:             l.ID,
			Flavor:         l.Flavor,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
			UnitPrice:      view.Rand(l.UnitPriceCents),
			TotalCents:     l.TotalCents,
			Total:          view.Rand(l.TotalCents),
		})
	}
	return p
}

func orderSummary(o orders.Order) view.OrderSummary {
	return view.OrderSummary{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,

		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		CustomerEmail: o.CustomerEmail,

		Quantity:   o.Quantity,
		TotalCents: o.TotalCents,
		Total:      view.Rand(o.TotalCents),

		DeliveryAddress: o.DeliveryAddress,
		PaymentMethod:   o.PaymentMethod,
		PaymentLabel:    notify.PaymentLabel(o.PaymentMethod),

		ChangeNeeded:          o.ChangeNeeded,
		CustomerAmountCents:   o.CustomerAmountCents,
		CalculatedChangeCents: o.CalculatedChangeCents,
		SpecialNotes:          o.SpecialNotes,

		Status:    o.Status,
		CreatedAt: o.CreatedAt.Format("2006-01-02 15:04"),
	}
}

func normalizeFulfillment(s string) cart.Fulfillment {
	if s == string(cart.FulfillmentDelivery) {
		return cart.FulfillmentDelivery
	}
	return cart.FulfillmentCollection
}

func normalizePayment(s string) cart.Payment {
	if s == string(cart.PaymentEFT) {
		return cart.PaymentEFT
	}
	return cart.PaymentCash
}
