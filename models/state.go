package models

import "time"

// State record keys. The ledger keeps two whole-document records (the order
// list and the last assigned bill number) plus the session branch name.
const (
	StateKeyOrders         = "orders"
	StateKeyLastBillNumber = "last_bill_number"
	StateKeyBranchName     = "branch_name"
)

// StateRecord is a named whole-document blob. Each mutation rewrites the
// full value in one transaction, so a single interrupted write can never
// leave half a document behind.
type StateRecord struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
