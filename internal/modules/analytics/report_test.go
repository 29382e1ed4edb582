package analytics

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlissMahlathi/heavenly/internal/modules/orders"
)

func TestMonthlyReportName(t *testing.T) {
	n := MonthlyReportName(time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "heavenly-pies-report-2026-8.csv", n)
}

func TestMonthlyReportCSV(t *testing.T) {
	email := "thabo@example.com"
	ref := time.Date(2026, 8, 14, 12, 30, 0, 0, time.UTC)

	inMonth := order(5998, 2, orders.StatusPending, ref)
	inMonth.ID = "abc"
	inMonth.CustomerEmail = &email
	lastMonth := order(2999, 1, orders.StatusAccepted, ref.AddDate(0, -1, 0))
	lastYear := order(2999, 1, orders.StatusAccepted, ref.AddDate(-1, 0, 0))
	noEmail := order(7198, 2, orders.StatusAccepted, ref.AddDate(0, 0, -2))

	data, err := MonthlyReportCSV([]orders.Order{inMonth, lastMonth, lastYear, noEmail}, ref)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two August orders

	assert.Equal(t, []string{"Order ID", "Customer", "Phone", "Email", "Quantity", "Total", "Payment", "Status", "Date"}, rows[0])

	assert.Equal(t, "abc", rows[1][0])
	assert.Equal(t, "thabo@example.com", rows[1][3])
	assert.Equal(t, "R59.98", rows[1][5])
	assert.Equal(t, "pending", rows[1][7])

	assert.Equal(t, "N/A", rows[2][3])
}
