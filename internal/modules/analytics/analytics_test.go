package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlissMahlathi/heavenly/internal/modules/orders"
)

var now = time.Date(2026, 8, 14, 15, 0, 0, 0, time.UTC) // a Friday

func order(total, qty int, status string, created time.Time) orders.Order {
	return orders.Order{
		ID:            "id-" + created.Format("20060102"),
		CustomerName:  "Thabo",
		CustomerPhone: "0663621868",
		Quantity:      qty,
		TotalCents:    total,
		PaymentMethod: "cash",
		Status:        status,
		CreatedAt:     created,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, now)

	assert.Equal(t, 0, s.TotalOrders)
	assert.Equal(t, 0, s.TotalRevenueCents)
	assert.Equal(t, 0, s.AvgOrderValueCents)
	require.Len(t, s.ByStatus, 3)
	require.Len(t, s.Daily, 7)
}

func TestSummarizeTotals(t *testing.T) {
	list := []orders.Order{
		order(5998, 2, orders.StatusPending, now),
		order(7198, 2, orders.StatusAccepted, now.AddDate(0, 0, -1)),
		order(2999, 1, orders.StatusCancelled, now.AddDate(0, 0, -10)),
	}

	s := Summarize(list, now)

	assert.Equal(t, 3, s.TotalOrders)
	assert.Equal(t, 5998+7198+2999, s.TotalRevenueCents)
	assert.Equal(t, 5, s.TotalPiesSold)
	assert.Equal(t, (5998+7198+2999)/3, s.AvgOrderValueCents)

	assert.Equal(t, "pending", s.ByStatus[0].Status)
	assert.Equal(t, 1, s.ByStatus[0].Count)
	assert.Equal(t, "accepted", s.ByStatus[1].Status)
	assert.Equal(t, 1, s.ByStatus[1].Count)
	assert.Equal(t, "cancelled", s.ByStatus[2].Status)
	assert.Equal(t, 1, s.ByStatus[2].Count)
}

func TestSummarizeDailySeries(t *testing.T) {
	list := []orders.Order{
		order(5998, 2, orders.StatusPending, now),
		order(7198, 2, orders.StatusAccepted, now.AddDate(0, 0, -1)),
		order(2999, 1, orders.StatusCancelled, now.AddDate(0, 0, -10)), // outside window
	}

	s := Summarize(list, now)
	require.Len(t, s.Daily, 7)

	// oldest first, ending today
	assert.Equal(t, now.AddDate(0, 0, -6).Format("Mon"), s.Daily[0].Date)
	assert.Equal(t, "Fri", s.Daily[6].Date)

	assert.Equal(t, 1, s.Daily[6].Orders)
	assert.Equal(t, 5998, s.Daily[6].RevenueCents)
	assert.Equal(t, 1, s.Daily[5].Orders)
	assert.Equal(t, 7198, s.Daily[5].RevenueCents)

	var windowTotal int
	for _, p := range s.Daily {
		windowTotal += p.Orders
	}
	assert.Equal(t, 2, windowTotal)
}
