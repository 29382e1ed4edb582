package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BlissMahlathi/heavenly/internal/http/cartcookie"
	"github.com/BlissMahlathi/heavenly/internal/http/middleware"
	"github.com/BlissMahlathi/heavenly/internal/http/validation"
	"github.com/BlissMahlathi/heavenly/internal/metrics"
	"github.com/BlissMahlathi/heavenly/internal/modules/cart"
	"github.com/BlissMahlathi/heavenly/internal/modules/checkout"
	"github.com/BlissMahlathi/heavenly/internal/modules/events"
	"github.com/BlissMahlathi/heavenly/internal/modules/notify"
	"github.com/BlissMahlathi/heavenly/internal/modules/orders"
	"github.com/BlissMahlathi/heavenly/internal/shared/apperr"
)

// CheckoutHandler runs the two-step submission flow: preview (validate and
// freeze, nothing persisted) then submit (re-validate against the live cart
// and persist).
type CheckoutHandler struct {
	Store   *cart.Store
	CK      *cartcookie.Codec
	Orders  *orders.Service
	Notify  *notify.Service
	Hub     *events.Hub
	Metrics *metrics.ServerMetrics

	ShopWhatsApp string
	ManageURL    string
}

type checkoutInput struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Fulfillment string `json:"fulfillment" binding:"omitempty,oneof=delivery collection"`
	Payment     string `json:"payment" binding:"omitempty,oneof=cash eft"`

	ChangeNeeded  bool `json:"change_needed"`
	TenderedCents int  `json:"tendered_cents"`

	Notes string `json:"notes"`
}

func (in checkoutInput) form() checkout.Form {
	return checkout.Form{
		Name:          in.Name,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		Fulfillment:   normalizeFulfillment(in.Fulfillment),
		Payment:       normalizePayment(in.Payment),
		ChangeNeeded:  in.ChangeNeeded,
		TenderedCents: in.TenderedCents,
		Notes:         in.Notes,
	}
}

// Preview validates the cart+form pair and returns the frozen submission
// without persisting anything. The client shows this as the confirmation
// step and replays the same form to Submit.
func (h *CheckoutHandler) Preview(c *gin.Context) {
	var in checkoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid request data.", validation.FromBindError(err, &in)))
		return
	}
	f := in.form()

	_, crt := resolveCart(c, h.Store, h.CK)
	if verr := checkout.Validate(f, crt); verr != nil {
		middleware.Fail(c, apperr.InvalidErr(verr.Message, map[string]string{verr.Rule: verr.Message}))
		return
	}

	sub := checkout.Freeze(f, crt)
	c.JSON(http.StatusOK, gin.H{
		"submission": sub,
		"totals":     crt.ComputeTotals(f.Fulfillment, f.Payment),
	})
}

// Submit re-validates against the live cart and persists the order. Side
// effects run in a fixed order: notification insert (best effort), event
// publish, deep-link composition, ack payload, cart cleared last.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	var in checkoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid request data.", validation.FromBindError(err, &in)))
		return
	}
	f := in.form()

	cartID, crt := resolveCart(c, h.Store, h.CK)
	if verr := checkout.Validate(f, crt); verr != nil {
		middleware.Fail(c, apperr.InvalidErr(verr.Message, map[string]string{verr.Rule: verr.Message}))
		return
	}

	sub := checkout.Freeze(f, crt)
	o, err := h.Orders.Create(c.Request.Context(), sub)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	n := h.Notify.NotifyNewOrder(c.Request.Context(), o)
	h.Hub.Publish(events.Event{Type: events.OrderCreated, OrderID: o.ID, Status: o.Status})
	if n.ID != "" {
		h.Hub.Publish(events.Event{Type: events.NotificationCreated, OrderID: o.ID})
	}
	h.Metrics.OrdersCreated.Inc()

	msg := notify.NewOrderMessage(o, h.ManageURL)
	link := notify.WhatsAppLink(h.ShopWhatsApp, msg)

	h.Store.Drop(cartID)
	h.CK.Clear(c)

	c.JSON(http.StatusCreated, gin.H{
		"order":        orderSummary(o),
		"whatsapp_url": link,
	})
}

func resolveCart(c *gin.Context, store *cart.Store, ck *cartcookie.Codec) (string, *cart.Cart) {
	id, _ := ck.GetCartID(c)
	newID, crt := store.Get(id)
	if newID != id {
		ck.Set(c, newID)
	}
	return newID, crt
}
