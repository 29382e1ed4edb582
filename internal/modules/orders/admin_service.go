package orders

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService { return &AdminService{db: db} }

type TransitionInput struct {
	OrderID     string
	ActorUserID string // admin user id
	Action      string // accept|cancel
	Note        string
}

// Transition applies a one-way status change from pending. Terminal orders
// are never moved again; there is no revert to pending.
func (s *AdminService) Transition(ctx context.Context, in TransitionInput) (Order, error) {
	if in.OrderID == "" || in.ActorUserID == "" || in.Action == "" {
		return Order{}, ErrNotActionable
	}

	var out Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o Order

		// row lock
		if err := tx.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&o, "id = ?", in.OrderID).Error; err != nil {
			return err
		}

		from := o.Status
		to, err := nextStatus(from, in.Action)
		if err != nil {
			return err
		}

		now := time.Now()
		if err := tx.WithContext(ctx).
			Model(&Order{}).
			Where("id = ? AND status = ?", o.ID, from). // optimistic guard
			Updates(map[string]any{
				"status":     to,
				"updated_at": now,
			}).Error; err != nil {
			return err
		}

		var notePtr *string
		if n := strings.TrimSpace(in.Note); n != "" {
			notePtr = &n
		}

		ev := OrderEvent{
			ID:          uuid.NewString(),
			OrderID:     o.ID,
			ActorUserID: in.ActorUserID,
			Action:      in.Action,
			FromStatus:  from,
			ToStatus:    to,
			Note:        notePtr,
			CreatedAt:   now,
		}
		if err := tx.WithContext(ctx).Create(&ev).Error; err != nil {
			return err
		}

		o.Status = to
		o.UpdatedAt = now
		out = o
		return nil
	})
	return out, err
}

func nextStatus(from, action string) (string, error) {
	if from != StatusPending {
		return "", ErrInvalidTransition
	}
	switch action {
	case "accept":
		return StatusAccepted, nil
	case "cancel":
		return StatusCancelled, nil
	default:
		return "", ErrInvalidTransition
	}
}
