package models

// OrderLine is one priced entry in the working bill. Lines are value types;
// copying a slice of them is a full snapshot.
type OrderLine struct {
	ID         string `json:"id"`
	MenuItemID string `json:"menu_item_id"`
	// Name is the resolved display name, including preparation/size when the
	// item prices more than one variant.
	Name         string  `json:"name"`
	UnitPrice    float64 `json:"unit_price"`
	UnitCost     float64 `json:"unit_cost"`
	Quantity     int     `json:"quantity"`
	ParentLineID string  `json:"parent_line_id,omitempty"`
}

// IsAddOn reports whether this line's presence and quantity are derived from
// a parent line.
func (l OrderLine) IsAddOn() bool {
	return l.ParentLineID != ""
}

func (l OrderLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

func (l OrderLine) TotalCost() float64 {
	return l.UnitCost * float64(l.Quantity)
}

// OrderTotal sums line subtotals.
func OrderTotal(lines []OrderLine) float64 {
	total := 0.0
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}

// CloneLines deep-copies a line slice; used when freezing an order snapshot.
func CloneLines(lines []OrderLine) []OrderLine {
	out := make([]OrderLine, len(lines))
	copy(out, lines)
	return out
}
