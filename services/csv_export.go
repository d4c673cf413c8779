package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/momomaya/pos-backend/models"
)

var salesCSVHeader = []string{
	"Bill Number", "Date", "Time", "Branch", "Payment Method", "Order Total",
	"Item Name", "Quantity", "Unit Price", "Unit Cost", "Subtotal", "Total Cost", "Profit",
}

// SalesCSV renders one row per (order, line item) pair, repeating the
// order-level columns on every item row. Textual fields are double-quoted
// with embedded quotes doubled, which keeps branch names and item names with
// commas intact in any spreadsheet import.
func SalesCSV(orders []models.CompletedOrder) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(salesCSVHeader, ","))
	sb.WriteString("\n")

	for _, order := range orders {
		for _, item := range order.Items {
			subtotal := item.Subtotal()
			totalCost := item.TotalCost()
			fields := []string{
				fmt.Sprintf("%d", order.BillNumber),
				csvQuote(order.Date.Format("2006-01-02")),
				csvQuote(order.Date.Format("15:04:05")),
				csvQuote(order.BranchName),
				csvQuote(string(order.PaymentMethod)),
				formatAmount(order.Total),
				csvQuote(item.Name),
				fmt.Sprintf("%d", item.Quantity),
				formatAmount(item.UnitPrice),
				formatAmount(item.UnitCost),
				formatAmount(subtotal),
				formatAmount(totalCost),
				formatAmount(subtotal - totalCost),
			}
			sb.WriteString(strings.Join(fields, ","))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// ExportFilename builds "<prefix>_<start>_to_<end>.csv" with ISO dates.
func ExportFilename(prefix string, start, end time.Time) string {
	return fmt.Sprintf("%s_%s_to_%s.csv", prefix, start.Format("2006-01-02"), end.Format("2006-01-02"))
}

func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
