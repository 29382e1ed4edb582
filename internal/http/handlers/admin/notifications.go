package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BlissMahlathi/heavenly/internal/http/middleware"
	"github.com/BlissMahlathi/heavenly/internal/modules/notify"
	"github.com/BlissMahlathi/heavenly/internal/shared/apperr"
	"github.com/BlissMahlathi/heavenly/pkg/view"
)

// NotificationsHandler serves the dashboard inbox.
type NotificationsHandler struct {
	Repo *notify.Repo
}

func NewNotificationsHandler(db *gorm.DB) *NotificationsHandler {
	return &NotificationsHandler{Repo: notify.NewRepo(db)}
}

func (h *NotificationsHandler) List(c *gin.Context) {
	list, err := h.Repo.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	unread, err := h.Repo.UnreadCount(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	rows := make([]view.NotificationRow, 0, len(list))
	for _, n := range list {
		rows = append(rows, view.NotificationRow{
			ID:        n.ID,
			OrderID:   n.OrderID,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, gin.H{"notifications": rows, "unread_count": unread})
}

func (h *NotificationsHandler) MarkRead(c *gin.Context) {
	if err := h.Repo.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *NotificationsHandler) MarkAllRead(c *gin.Context) {
	if err := h.Repo.MarkAllRead(c.Request.Context()); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
