package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BlissMahlathi/heavenly/internal/modules/catalog"
	"github.com/BlissMahlathi/heavenly/pkg/view"
)

// CatalogHandler serves the static menu. No database behind it; the shop's
// menu changes with a deploy.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

type catalogItemView struct {
	Name       string `json:"name"`
	PriceCents int    `json:"price_cents"`
	Price      string `json:"price"`
	Category   string `json:"category"`
	Available  bool   `json:"available"`
	IsNew      bool   `json:"is_new,omitempty"`
	IsSpicy    bool   `json:"is_spicy,omitempty"`
}

func (h *CatalogHandler) List(c *gin.Context) {
	items := catalog.List()
	out := make([]catalogItemView, 0, len(items))
	for _, it := range items {
		out = append(out, catalogItemView{
			Name:       it.Name,
			PriceCents: it.PriceCents,
			Price:      view.Rand(it.PriceCents),
			Category:   it.Category,
			Available:  it.Available,
			IsNew:      it.IsNew,
			IsSpicy:    it.IsSpicy,
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": out})
}

func (h *CatalogHandler) Deals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"deals": catalog.Deals()})
}
