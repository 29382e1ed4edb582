package view

// CartLine is the rendered form of one cart entry.
type CartLine struct {
	ID             string `json:"id"`
	Flavor         string `json:"flavor"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int    `json:"unit_price_cents"`
	UnitPrice      string `json:"unit_price"`
	TotalCents     int    `json:"total_cents"`
	Total          string `json:"total"`
}

// CartPage is the full cart response: lines plus derived totals for the
// chosen fulfillment and payment.
type CartPage struct {
	Lines []CartLine `json:"lines"`

	SubtotalCents    int    `json:"subtotal_cents"`
	Subtotal         string `json:"subtotal"`
	DeliveryFeeCents int    `json:"delivery_fee_cents"`
	DeliveryFee      string `json:"delivery_fee"`
	TransferFeeCents int    `json:"transfer_fee_cents"`
	TransferFee      string `json:"transfer_fee"`
	FinalTotalCents  int    `json:"final_total_cents"`
	FinalTotal       string `json:"final_total"`
	ItemCount        int    `json:"item_count"`
}
