package services

import (
	"sync"

	"github.com/momomaya/pos-backend/models"
	"github.com/momomaya/pos-backend/utils"
)

// OrderBuilder holds the bill currently being assembled. Insertion order is
// display order: add-on lines sit directly under their parent line.
type OrderBuilder struct {
	mu      sync.Mutex
	catalog models.Catalog
	lines   []models.OrderLine
}

func NewOrderBuilder(catalog models.Catalog) *OrderBuilder {
	return &OrderBuilder{catalog: catalog}
}

// AddLines merges each incoming line into the order. A line whose id already
// exists has its quantity incremented; a new add-on line is spliced in right
// after its parent; everything else is appended.
func (b *OrderBuilder) AddLines(lines []models.OrderLine) {
	if len(lines) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, incoming := range lines {
		if idx := b.indexOf(incoming.ID); idx >= 0 {
			b.lines[idx].Quantity += incoming.Quantity
			continue
		}
		if incoming.ParentLineID != "" {
			if parentIdx := b.indexOf(incoming.ParentLineID); parentIdx >= 0 {
				b.lines = append(b.lines, models.OrderLine{})
				copy(b.lines[parentIdx+2:], b.lines[parentIdx+1:])
				b.lines[parentIdx+1] = incoming
				continue
			}
			// Orphan add-on: keep the line rather than losing it, but flag
			// the inconsistency.
			utils.InfoLogger.Warnf("add-on line %s references missing parent %s, appending at end",
				incoming.ID, incoming.ParentLineID)
		}
		b.lines = append(b.lines, incoming)
	}
}

// UpdateQuantity sets a line's quantity. Zero or below removes the line and,
// when its item supports add-ons, every line parented to it. A positive
// quantity propagates to quantity-locked add-ons. Unknown ids are a no-op.
func (b *OrderBuilder) UpdateQuantity(lineID string, quantity int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.indexOf(lineID)
	if idx < 0 {
		return
	}
	line := b.lines[idx]

	if quantity <= 0 {
		cascade := b.catalog.LineSupportsAddOns(line)
		kept := b.lines[:0]
		for _, l := range b.lines {
			if l.ID == lineID {
				continue
			}
			if cascade && l.ParentLineID == lineID {
				continue
			}
			kept = append(kept, l)
		}
		b.lines = kept
		return
	}

	b.lines[idx].Quantity = quantity
	if b.catalog.LineSupportsAddOns(line) {
		for i := range b.lines {
			if b.lines[i].ParentLineID == lineID {
				b.lines[i].Quantity = quantity
			}
		}
	}
}

// ToggleAddOn adds the add-on to the parent line, or removes it when already
// present. The composite line id makes the toggle idempotent: at most one
// add-on of a kind per parent, with a stable id across toggles.
func (b *OrderBuilder) ToggleAddOn(addOn models.AddOnItem, parentLineID string) bool {
	ref := models.AddOnRef{AddOnItemID: addOn.ID, ParentLineID: parentLineID}

	b.mu.Lock()
	parentIdx := b.indexOf(parentLineID)
	present := b.indexOf(ref.LineID()) >= 0
	var parentQty int
	if parentIdx >= 0 {
		parentQty = b.lines[parentIdx].Quantity
	}
	b.mu.Unlock()

	if present {
		b.UpdateQuantity(ref.LineID(), 0)
		return false
	}
	if parentIdx < 0 {
		return false
	}
	b.AddLines([]models.OrderLine{addOn.Line(parentLineID, parentQty)})
	return true
}

// Clear empties the order unconditionally.
func (b *OrderBuilder) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
}

// Lines returns a snapshot of the current order.
func (b *OrderBuilder) Lines() []models.OrderLine {
	b.mu.Lock()
	defer b.mu.Unlock()
	return models.CloneLines(b.lines)
}

func (b *OrderBuilder) Total() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return models.OrderTotal(b.lines)
}

func (b *OrderBuilder) IsEmpty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines) == 0
}

// indexOf assumes b.mu is held.
func (b *OrderBuilder) indexOf(lineID string) int {
	for i, l := range b.lines {
		if l.ID == lineID {
			return i
		}
	}
	return -1
}
