package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminNotification is the dashboard inbox row created alongside an order.
type AdminNotification struct {
	ID        string `gorm:"primaryKey;type:char(36)"`
	OrderID   string `gorm:"type:char(36);not null;index:ix_admin_notifications_order_id"`
	Message   string `gorm:"type:text;not null"`
	IsRead    bool   `gorm:"not null;default:0"`
	CreatedAt time.Time
}

func (AdminNotification) TableName() string { return "admin_notifications" }

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, orderID, message string) (AdminNotification, error) {
	n := AdminNotification{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Message:   message,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&n).Error; err != nil {
		return AdminNotification{}, err
	}
	return n, nil
}

// List returns notifications newest first.
func (r *Repo) List(ctx context.Context) ([]AdminNotification, error) {
	var out []AdminNotification
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *Repo) UnreadCount(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&AdminNotification{}).
		Where("is_read = ?", false).
		Count(&n).Error
	return n, err
}

func (r *Repo) MarkRead(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&AdminNotification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *Repo) MarkAllRead(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&AdminNotification{}).
		Where("is_read = ?", false).
		Update("is_read", true).Error
}
