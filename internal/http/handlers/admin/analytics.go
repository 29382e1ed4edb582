package admin

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BlissMahlathi/heavenly/internal/http/middleware"
	"github.com/BlissMahlathi/heavenly/internal/modules/analytics"
	"github.com/BlissMahlathi/heavenly/internal/modules/orders"
	"github.com/BlissMahlathi/heavenly/internal/shared/apperr"
	"github.com/BlissMahlathi/heavenly/internal/storage"
	"github.com/BlissMahlathi/heavenly/pkg/view"
)

// AnalyticsHandler computes dashboard numbers and archives monthly reports.
type AnalyticsHandler struct {
	Repo  *orders.Repo
	Store storage.Storage
}

func NewAnalyticsHandler(db *gorm.DB, store storage.Storage) *AnalyticsHandler {
	return &AnalyticsHandler{Repo: orders.NewRepo(db), Store: store}
}

func (h *AnalyticsHandler) Summary(c *gin.Context) {
	list, err := h.Repo.List(c.Request.Context(), orders.ListParams{})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	s := analytics.Summarize(list, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"summary":         s,
		"total_revenue":   view.Rand(s.TotalRevenueCents),
		"avg_order_value": view.Rand(s.AvgOrderValueCents),
	})
}

// MonthlyReport renders the current month's CSV and archives it through the
// configured storage driver.
func (h *AnalyticsHandler) MonthlyReport(c *gin.Context) {
	list, err := h.Repo.List(c.Request.Context(), orders.ListParams{})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	now := time.Now()
	data, err := analytics.MonthlyReportCSV(list, now)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	name := analytics.MonthlyReportName(now)

	res, err := h.Store.Put(c.Request.Context(), bytes.NewReader(data), storage.PutInput{
		Filename:    name,
		ContentType: "text/csv",
		Size:        int64(len(data)),
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filename": name,
		"key":      res.Key,
		"url":      res.URL,
	})
}
