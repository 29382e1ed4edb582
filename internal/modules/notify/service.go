package notify

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/BlissMahlathi/heavenly/internal/modules/orders"
)

// Service persists admin notifications for new orders. Failures here are
// best-effort: they are logged and swallowed, never rolled back into the
// order-creation path.
type Service struct {
	repo   *Repo
	logger *slog.Logger
}

func NewService(db *gorm.DB, logger *slog.Logger) *Service {
	return &Service{repo: NewRepo(db), logger: logger}
}

// NotifyNewOrder writes the dashboard notification for a freshly created
// order. The returned notification is zero-valued when the insert failed.
func (s *Service) NotifyNewOrder(ctx context.Context, o orders.Order) AdminNotification {
	msg := AdminNotificationMessage(o)
	n, err := s.repo.Create(ctx, o.ID, msg)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "admin_notification_failed",
			slog.String("order_id", o.ID),
			slog.Any("err", err),
		)
		return AdminNotification{}
	}
	return n
}

func (s *Service) Repo() *Repo { return s.repo }
