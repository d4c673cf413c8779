package services

import (
	"time"

	"github.com/momomaya/pos-backend/models"
	"github.com/momomaya/pos-backend/utils"
)

type ReceiptLine struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// Receipt is the view model handed to the external print/preview surface.
type Receipt struct {
	BranchName     string        `json:"branch_name"`
	BillNumber     int           `json:"bill_number"`
	Date           time.Time     `json:"date"`
	PaymentMethod  string        `json:"payment_method,omitempty"`
	Items          []ReceiptLine `json:"items"`
	Total          float64       `json:"total"`
	TotalFormatted string        `json:"total_formatted"`
}

// BuildReceipt renders a stored bill for printing.
func BuildReceipt(order models.CompletedOrder) Receipt {
	r := receiptFromLines(order.Items, order.BillNumber, order.BranchName)
	r.Date = order.Date
	r.PaymentMethod = string(order.PaymentMethod)
	return r
}

// PreviewReceipt renders the working order before finalize, using the bill
// number the next finalize would assign. Nothing is reserved.
func PreviewReceipt(lines []models.OrderLine, pendingBillNumber int, branchName string) Receipt {
	r := receiptFromLines(lines, pendingBillNumber, branchName)
	r.Date = time.Now()
	return r
}

func receiptFromLines(lines []models.OrderLine, billNumber int, branchName string) Receipt {
	r := Receipt{
		BranchName: branchName,
		BillNumber: billNumber,
		Items:      make([]ReceiptLine, 0, len(lines)),
	}
	for _, line := range lines {
		r.Items = append(r.Items, ReceiptLine{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.Subtotal(),
		})
		r.Total += line.Subtotal()
	}
	r.TotalFormatted = utils.FormatCurrencyINR(r.Total)
	return r
}
