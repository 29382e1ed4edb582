package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BlissMahlathi/heavenly/internal/http/cartcookie"
	"github.com/BlissMahlathi/heavenly/internal/http/middleware"
	"github.com/BlissMahlathi/heavenly/internal/http/validation"
	"github.com/BlissMahlathi/heavenly/internal/modules/cart"
	"github.com/BlissMahlathi/heavenly/internal/modules/catalog"
	"github.com/BlissMahlathi/heavenly/internal/shared/apperr"
)

// CartHandler owns the session cart surface. The cart lives server side,
// keyed by a signed cookie id; every response carries the full cart so the
// client never derives totals itself.
type CartHandler struct {
	Store *cart.Store
	CK    *cartcookie.Codec
}

func NewCartHandler(store *cart.Store, ck *cartcookie.Codec) *CartHandler {
	return &CartHandler{Store: store, CK: ck}
}

// resolve returns the session cart, minting and setting a cookie when the
// request carries none (or a stale one).
func (h *CartHandler) resolve(c *gin.Context) (string, *cart.Cart) {
	return resolveCart(c, h.Store, h.CK)
}

func (h *CartHandler) respond(c *gin.Context, crt *cart.Cart) {
	f := normalizeFulfillment(c.Query("fulfillment"))
	p := normalizePayment(c.Query("payment"))
	c.JSON(http.StatusOK, gin.H{"cart": cartPage(crt, crt.ComputeTotals(f, p))})
}

func (h *CartHandler) Get(c *gin.Context) {
	_, crt := h.resolve(c)
	h.respond(c, crt)
}

// Totals returns just the derived numbers for a fulfillment/payment choice.
func (h *CartHandler) Totals(c *gin.Context) {
	_, crt := h.resolve(c)
	f := normalizeFulfillment(c.Query("fulfillment"))
	p := normalizePayment(c.Query("payment"))
	c.JSON(http.StatusOK, gin.H{"totals": crt.ComputeTotals(f, p)})
}

type addItemInput struct {
	Flavor   string `json:"flavor" binding:"required"`
	Quantity int    `json:"quantity"`
}

// AddItem appends a line. Unknown or unavailable flavors are a silent
// no-op; the caller sees the unchanged cart, not an error.
func (h *CartHandler) AddItem(c *gin.Context) {
	var in addItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid request data.", validation.FromBindError(err, &in)))
		return
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	_, crt := h.resolve(c)
	crt.AddItem(in.Flavor, in.Quantity)
	h.respond(c, crt)
}

type addDealInput struct {
	DealID string `json:"deal_id" binding:"required"`
}

func (h *CartHandler) AddDeal(c *gin.Context) {
	var in addDealInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid request data.", validation.FromBindError(err, &in)))
		return
	}

	d, ok := catalog.DealByID(in.DealID)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Deal not found."))
		return
	}

	_, crt := h.resolve(c)
	crt.AddBundle(d)
	h.respond(c, crt)
}

type updateItemInput struct {
	ID       string `json:"id" binding:"required"`
	Quantity int    `json:"quantity"`
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	var in updateItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid request data.", validation.FromBindError(err, &in)))
		return
	}

	_, crt := h.resolve(c)
	crt.UpdateLineQuantity(in.ID, in.Quantity)
	h.respond(c, crt)
}

type removeItemInput struct {
	ID string `json:"id" binding:"required"`
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	var in removeItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid request data.", validation.FromBindError(err, &in)))
		return
	}

	_, crt := h.resolve(c)
	crt.RemoveLine(in.ID)
	h.respond(c, crt)
}
