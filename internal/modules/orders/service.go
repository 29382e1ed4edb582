package orders

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BlissMahlathi/heavenly/internal/modules/checkout"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Create persists a validated submission as a single insert. There is no
// multi-step transaction exposed to the client: the order either exists with
// every field or not at all.
func (s *Service) Create(ctx context.Context, sub checkout.Submission) (Order, error) {
	if len(sub.CartItems) == 0 {
		return Order{}, ErrCartEmpty
	}

	itemsJSON, err := json.Marshal(sub.CartItems)
	if err != nil {
		return Order{}, err
	}

	id := uuid.NewString()
	now := time.Now()
	o := Order{
		ID:          id,
		OrderNumber: orderNumberFromID(id),

		CustomerName:  sub.CustomerName,
		CustomerPhone: sub.CustomerPhone,
		CustomerEmail: sub.CustomerEmail,

		CartItemsJSON: itemsJSON,
		Quantity:      sub.Quantity,
		TotalCents:    sub.TotalCents,

		DeliveryAddress: sub.DeliveryAddress,
		PaymentMethod:   sub.PaymentMethod,

		ChangeNeeded:          sub.ChangeNeeded,
		CustomerAmountCents:   sub.CustomerAmountCents,
		CalculatedChangeCents: sub.CalculatedChangeCents,

		SpecialNotes: sub.SpecialNotes,

		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.db.WithContext(ctx).Create(&o).Error; err != nil {
		return Order{}, err
	}
	return o, nil
}

// orderNumberFromID derives the human-readable order number: the uppercase
// 8-character prefix of the order id.
func orderNumberFromID(id string) string {
	if len(id) < 8 {
		return strings.ToUpper(id)
	}
	return strings.ToUpper(id[:8])
}
