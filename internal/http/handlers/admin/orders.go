package admin

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BlissMahlathi/heavenly/internal/http/middleware"
	"github.com/BlissMahlathi/heavenly/internal/metrics"
	"github.com/BlissMahlathi/heavenly/internal/modules/events"
	"github.com/BlissMahlathi/heavenly/internal/modules/notify"
	"github.com/BlissMahlathi/heavenly/internal/modules/orders"
	"github.com/BlissMahlathi/heavenly/internal/shared/apperr"
	"github.com/BlissMahlathi/heavenly/pkg/view"
)

// OrdersHandler is the triage surface: list, inspect, accept or cancel.
type OrdersHandler struct {
	Repo    *orders.Repo
	Admin   *orders.AdminService
	Hub     *events.Hub
	Metrics *metrics.ServerMetrics
}

func NewOrdersHandler(db *gorm.DB, hub *events.Hub, m *metrics.ServerMetrics) *OrdersHandler {
	return &OrdersHandler{
		Repo:    orders.NewRepo(db),
		Admin:   orders.NewAdminService(db),
		Hub:     hub,
		Metrics: m,
	}
}

func (h *OrdersHandler) List(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))

	list, err := h.Repo.List(c.Request.Context(), orders.ListParams{Status: status})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	items := make([]view.OrderSummary, 0, len(list))
	for _, o := range list {
		items = append(items, summarize(o))
	}
	c.JSON(http.StatusOK, gin.H{"orders": items, "status": status})
}

func (h *OrdersHandler) Detail(c *gin.Context) {
	id := c.Param("id")

	o, err := h.Repo.Get(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
		return
	}

	ev, err := h.Repo.Events(c.Request.Context(), o.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	rows := make([]view.OrderEventRow, 0, len(ev))
	for _, e := range ev {
		rows = append(rows, view.OrderEventRow{
			ID:          e.ID,
			Action:      e.Action,
			FromStatus:  e.FromStatus,
			ToStatus:    e.ToStatus,
			ActorUserID: e.ActorUserID,
			Note:        e.Note,
			CreatedAt:   e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, gin.H{"order": summarize(o), "events": rows})
}

func (h *OrdersHandler) Accept(c *gin.Context) { h.transition(c, "accept") }
func (h *OrdersHandler) Cancel(c *gin.Context) { h.transition(c, "cancel") }

type transitionInput struct {
	Note string `json:"note"`
}

func (h *OrdersHandler) transition(c *gin.Context, action string) {
	u, _ := middleware.CurrentUser(c)

	var in transitionInput
	_ = c.ShouldBindJSON(&in) // note is optional, body may be empty

	o, err := h.Admin.Transition(c.Request.Context(), orders.TransitionInput{
		OrderID:     c.Param("id"),
		ActorUserID: u.ID,
		Action:      action,
		Note:        in.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			middleware.Fail(c, apperr.NotFoundErr("Order not found."))
		case errors.Is(err, orders.ErrInvalidTransition):
			middleware.Fail(c, apperr.ConflictErr("Order is no longer pending."))
		case errors.Is(err, orders.ErrNotActionable):
			middleware.Fail(c, apperr.InvalidErr("Invalid transition request.", nil))
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}

	h.Hub.Publish(events.Event{Type: events.OrderStatusChanged, OrderID: o.ID, Status: o.Status})
	h.Metrics.OrderActions.WithLabelValues(action).Inc()

	c.JSON(http.StatusOK, gin.H{"order": summarize(o)})
}

// WhatsApp returns the follow-up deep link for an order, targeting the
// customer's phone. Follow-ups exist only for accepted orders; a pending
// or cancelled order has nothing to confirm.
func (h *OrdersHandler) WhatsApp(c *gin.Context) {
	o, err := h.Repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
		return
	}
	if !followUpAllowed(o.Status) {
		middleware.Fail(c, apperr.ConflictErr("Order is not accepted."))
		return
	}

	msg := notify.FollowUpMessage(o)
	c.JSON(http.StatusOK, gin.H{
		"message":      msg,
		"whatsapp_url": notify.WhatsAppLink(o.CustomerPhone, msg),
	})
}

func followUpAllowed(status string) bool {
	return status == orders.StatusAccepted
}

func summarize(o orders.Order) view.OrderSummary {
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
