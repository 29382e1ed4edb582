package view

// OrderSummary is the customer-facing acknowledgment after submission, and
// the row shape for the admin dashboard list.
type OrderSummary struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`

	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email,omitempty"`

	Quantity   int    `json:"quantity"`
	TotalCents int    `json:"total_cents"`
	Total      string `json:"total"`

	DeliveryAddress string `json:"delivery_address"`
	PaymentMethod   string `json:"payment_method"`
	PaymentLabel    string `json:"payment_label"`

	ChangeNeeded          bool    `json:"change_needed"`
	CustomerAmountCents   *int    `json:"customer_amount_cents,omitempty"`
	CalculatedChangeCents *int    `json:"calculated_change_cents,omitempty"`
	SpecialNotes          *string `json:"special_notes,omitempty"`

	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// OrderEventRow is one audit entry on the admin order detail.
type OrderEventRow struct {
	ID          string  `json:"id"`
	Action      string  `json:"action"`
	FromStatus  string  `json:"from_status"`
	ToStatus    string  `json:"to_status"`
	ActorUserID string  `json:"actor_user_id"`
	Note        *string `json:"note,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// NotificationRow is one admin inbox entry.
type NotificationRow struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}
