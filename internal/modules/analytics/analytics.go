// Package analytics computes dashboard statistics over fetched orders.
// Everything here is a pure reduction; no queries beyond the order list.
package analytics

import (
	"time"

	"github.com/BlissMahlathi/heavenly/internal/modules/orders"
)

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type DailyPoint struct {
	Date         string `json:"date"` // Mon, Tue, ...
	Orders       int    `json:"orders"`
	RevenueCents int    `json:"revenue_cents"`
}

type Summary struct {
	TotalRevenueCents  int           `json:"total_revenue_cents"`
	TotalOrders        int           `json:"total_orders"`
	TotalPiesSold      int           `json:"total_pies_sold"`
	AvgOrderValueCents int           `json:"avg_order_value_cents"`
	ByStatus           []StatusCount `json:"by_status"`
	Daily              []DailyPoint  `json:"daily"`
}

// Summarize reduces the order list into dashboard numbers. The daily series
// covers the seven days ending at now, oldest first.
func Summarize(list []orders.Order, now time.Time) Summary {
	s := Summary{TotalOrders: len(list)}

	counts := map[string]int{
		orders.StatusPending:   0,
		orders.StatusAccepted:  0,
		orders.StatusCancelled: 0,
	}
	for _, o := range list {
		s.TotalRevenueCents += o.TotalCents
		s.TotalPiesSold += o.Quantity
		counts[o.Status]++
	}
	if s.TotalOrders > 0 {
		s.AvgOrderValueCents = s.TotalRevenueCents / s.TotalOrders
	}

	s.ByStatus = []StatusCount{
		{Status: orders.StatusPending, Count: counts[orders.StatusPending]},
		{Status: orders.StatusAccepted, Count: counts[orders.StatusAccepted]},
		{Status: orders.StatusCancelled, Count: counts[orders.StatusCancelled]},
	}

	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		p := DailyPoint{Date: day.Format("Mon")}
		for _, o := range list {
			if sameDay(o.CreatedAt, day) {
				p.Orders++
				p.RevenueCents += o.TotalCents
			}
		}
		s.Daily = append(s.Daily, p)
	}
	return s
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
