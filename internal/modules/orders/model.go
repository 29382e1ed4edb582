package orders

import "time"

// Order statuses. pending is the only non-terminal state; accepted and
// cancelled are terminal.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusCancelled = "cancelled"
)

type Order struct {
	ID          string `gorm:"primaryKey;type:char(36)"`
	OrderNumber string `gorm:"type:varchar(16);not null"`

	CustomerName  string  `gorm:"type:varchar(255);not null"`
	CustomerPhone string  `gorm:"type:varchar(32);not null"`
	CustomerEmail *string `gorm:"type:varchar(255)"`

	CartItemsJSON []byte `gorm:"column:cart_items;type:json;not null"`
	Quantity      int    `gorm:"not null"`
	TotalCents    int    `gorm:"not null"`

	DeliveryAddress string `gorm:"type:text;not null"`
	PaymentMethod   string `gorm:"type:varchar(8);not null"`

	ChangeNeeded          bool `gorm:"not null"`
	CustomerAmountCents   *int
	CalculatedChangeCents *int

	SpecialNotes *string `gorm:"type:text"`

	Status    string    `gorm:"type:varchar(16);not null;index:ix_orders_status"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Order) TableName() string { return "orders" }

// OrderEvent is the audit row written on every admin status transition.
type OrderEvent struct {
	ID          string  `gorm:"primaryKey;type:char(36)"`
	OrderID     string  `gorm:"type:char(36);not null;index:ix_order_events_order_id"`
	ActorUserID string  `gorm:"type:char(36);not null"`
	Action      string  `gorm:"type:varchar(16);not null"`
	FromStatus  string  `gorm:"type:varchar(16);not null"`
	ToStatus    string  `gorm:"type:varchar(16);not null"`
	Note        *string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (OrderEvent) TableName() string { return "order_events" }
