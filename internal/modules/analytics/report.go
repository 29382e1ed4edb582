package analytics

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/BlissMahlathi/heavenly/internal/modules/orders"
	"github.com/BlissMahlathi/heavenly/pkg/view"
)

// MonthlyReportName returns the canonical report filename for a month.
func MonthlyReportName(now time.Time) string {
	return fmt.Sprintf("heavenly-pies-report-%d-%d.csv", now.Year(), int(now.Month()))
}

// MonthlyReportCSV renders the current month's orders as CSV, matching the
// dashboard export columns.
func MonthlyReportCSV(list []orders.Order, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Order ID", "Customer", "Phone", "Email", "Quantity", "Total", "Payment", "Status", "Date"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, o := range list {
		if o.CreatedAt.Year() != now.Year() || o.CreatedAt.Month() != now.Month() {
			continue
		}
		email := "N/A"
		if o.CustomerEmail != nil && *o.CustomerEmail != "" {
			email = *o.CustomerEmail
		}
		row := []string{
			o.ID,
			o.CustomerName,
			o.CustomerPhone,
			email,
			fmt.Sprintf("%d", o.Quantity),
			view.Rand(o.TotalCents),
			o.PaymentMethod,
			o.Status,
			o.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
