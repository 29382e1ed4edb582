package orders

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// DB returns the underlying database connection for direct queries.
func (r *Repo) DB() *gorm.DB { return r.db }

func (r *Repo) Get(ctx context.Context, id string) (Order, error) {
	var o Order
	err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error
	return o, err
}

type ListParams struct {
	Status string // optional filter; "all" and "" both mean no filter
}

// List returns orders newest first, optionally filtered by status.
func (r *Repo) List(ctx context.Context, in ListParams) ([]Order, error) {
	q := r.db.WithContext(ctx).Model(&Order{})
	status := strings.TrimSpace(in.Status)
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}

	var out []Order
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *Repo) Events(ctx context.Context, orderID string) ([]OrderEvent, error) {
	var ev []OrderEvent
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&ev, "order_id = ?", orderID).Error
	return ev, err
}
