package models

import (
	"errors"
	"time"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentUPI  PaymentMethod = "UPI"
	PaymentCard PaymentMethod = "Card"
)

// AllPaymentMethods in reporting order.
var AllPaymentMethods = []PaymentMethod{PaymentCash, PaymentUPI, PaymentCard}

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCash, PaymentUPI, PaymentCard:
		return true
	}
	return false
}

// DeletionInfo marks a completed order as voided. Date is the deletion time,
// never the order's own date.
type DeletionInfo struct {
	Reason string    `json:"reason"`
	Date   time.Time `json:"date"`
}

// CompletedOrder is a finalized transaction. Everything except DeletionInfo
// is frozen at finalize time; DeletionInfo is written at most once.
type CompletedOrder struct {
	ID            string        `json:"id"`
	BillNumber    int           `json:"bill_number"`
	Items         []OrderLine   `json:"items"`
	Total         float64       `json:"total"`
	Date          time.Time     `json:"date"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	BranchName    string        `json:"branch_name"`
	DeletionInfo  *DeletionInfo `json:"deletion_info,omitempty"`
}

func (o *CompletedOrder) IsDeleted() bool {
	return o.DeletionInfo != nil
}

var ErrAlreadyDeleted = errors.New("bill is already deleted")

// MarkDeleted performs the one-way active -> deleted transition.
func (o *CompletedOrder) MarkDeleted(reason string, at time.Time) error {
	if o.IsDeleted() {
		return ErrAlreadyDeleted
	}
	o.DeletionInfo = &DeletionInfo{Reason: reason, Date: at}
	return nil
}

// TotalCOGS sums per-line cost of goods for this order.
func (o *CompletedOrder) TotalCOGS() float64 {
	cogs := 0.0
	for _, item := range o.Items {
		cogs += item.TotalCost()
	}
	return cogs
}
