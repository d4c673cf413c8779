package models

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryMomo  Category = "momo"
	CategorySide  Category = "side"
	CategoryDrink Category = "drink"
)

type PreparationType string

const (
	PrepSteamed  PreparationType = "steamed"
	PrepFried    PreparationType = "fried"
	PrepNormal   PreparationType = "normal"
	PrepPeriPeri PreparationType = "peri-peri"
)

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// PriceUnavailable marks a preparation/size combination that is not offered.
const PriceUnavailable = -1

// Listed in menu order so variant names and option lists come out stable
// regardless of map iteration.
var AllPreparations = []PreparationType{PrepSteamed, PrepFried, PrepNormal, PrepPeriPeri}
var AllSizes = []Size{SizeSmall, SizeMedium, SizeLarge}

// PriceMatrix maps preparation -> size -> amount. A missing entry behaves
// like PriceUnavailable for prices and 0 for costs.
type PriceMatrix map[PreparationType]map[Size]float64

// MenuItem is immutable reference data loaded once at startup.
type MenuItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	// SupportsAddOns enables the add-on options for lines of this item and
	// locks linked add-on quantities to the parent line.
	SupportsAddOns bool        `json:"supports_add_ons"`
	Preparations   PriceMatrix `json:"preparations"`
	Costs          PriceMatrix `json:"costs,omitempty"`
}

// PriceFor returns the price for a variant, or PriceUnavailable.
func (m *MenuItem) PriceFor(prep PreparationType, size Size) float64 {
	sizes, ok := m.Preparations[prep]
	if !ok {
		return PriceUnavailable
	}
	price, ok := sizes[size]
	if !ok {
		return PriceUnavailable
	}
	return price
}

// CostFor returns the per-unit cost for a variant, defaulting to 0 when the
// cost matrix is absent or has no usable entry.
func (m *MenuItem) CostFor(prep PreparationType, size Size) float64 {
	if m.Costs == nil {
		return 0
	}
	sizes, ok := m.Costs[prep]
	if !ok {
		return 0
	}
	cost, ok := sizes[size]
	if !ok || cost == PriceUnavailable {
		return 0
	}
	return cost
}

// VariantOption is one selectable preparation/size combination.
type VariantOption struct {
	Preparation PreparationType `json:"preparation"`
	Size        Size            `json:"size"`
	Price       float64         `json:"price"`
}

// VariantOptions lists every offered combination in menu order.
func (m *MenuItem) VariantOptions() []VariantOption {
	var opts []VariantOption
	for _, prep := range AllPreparations {
		for _, size := range AllSizes {
			price := m.PriceFor(prep, size)
			if price == PriceUnavailable {
				continue
			}
			opts = append(opts, VariantOption{Preparation: prep, Size: size, Price: price})
		}
	}
	return opts
}

// offeredPreparations counts preparations with at least one priced size.
func (m *MenuItem) offeredPreparations() int {
	count := 0
	for _, prep := range AllPreparations {
		for _, size := range AllSizes {
			if m.PriceFor(prep, size) != PriceUnavailable {
				count++
				break
			}
		}
	}
	return count
}

// SinglePrice reports whether every offered variant carries the same price,
// returning that price when so. Items like this collapse to one order line
// keyed by the plain menu item id.
func (m *MenuItem) SinglePrice() (float64, bool) {
	price := float64(PriceUnavailable)
	for _, opt := range m.VariantOptions() {
		if price == PriceUnavailable {
			price = opt.Price
			continue
		}
		if opt.Price != price {
			return 0, false
		}
	}
	if price == PriceUnavailable {
		return 0, false
	}
	return price, true
}

// ResolveVariant prices a menu item into an order line for the chosen
// preparation and size. Single-price items keep the plain item name and id so
// repeated selections merge; everything else gets a variant-specific id and a
// name carrying the size, plus the preparation when more than one is offered.
func (m *MenuItem) ResolveVariant(prep PreparationType, size Size) (OrderLine, error) {
	price := m.PriceFor(prep, size)
	if price == PriceUnavailable {
		return OrderLine{}, fmt.Errorf("%s is not available as %s/%s", m.Name, prep, size)
	}

	line := OrderLine{
		MenuItemID: m.ID,
		UnitPrice:  price,
		UnitCost:   m.CostFor(prep, size),
		Quantity:   1,
	}

	if _, single := m.SinglePrice(); single {
		line.ID = m.ID
		line.Name = m.Name
		return line, nil
	}

	line.ID = fmt.Sprintf("%s-%s-%s", m.ID, prep, size)
	if m.offeredPreparations() > 1 {
		line.Name = fmt.Sprintf("%s %s (%s)", titleCase(string(prep)), m.Name, titleCase(string(size)))
	} else {
		line.Name = fmt.Sprintf("%s (%s)", m.Name, titleCase(string(size)))
	}
	return line, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// AddOnRef identifies one kind of add-on attached to one order line. The
// composite form only exists at serialization boundaries.
type AddOnRef struct {
	AddOnItemID  string
	ParentLineID string
}

// LineID renders the deterministic composite id used for the add-on's order
// line, stable across toggles of the same add-on on the same parent.
func (r AddOnRef) LineID() string {
	return fmt.Sprintf("%s-%s", r.AddOnItemID, r.ParentLineID)
}

// AddOnItem is a catalog-level template for an add-on order line. Its price
// may differ from the underlying menu item's (the fries add-on is half
// price); the line id is always composed per AddOnRef.
type AddOnItem struct {
	ID         string  `json:"id"`
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	UnitCost   float64 `json:"unit_cost"`
}

// Line builds the add-on order line for a given parent, quantity-locked to
// the parent's current quantity.
func (a AddOnItem) Line(parentLineID string, parentQuantity int) OrderLine {
	ref := AddOnRef{AddOnItemID: a.ID, ParentLineID: parentLineID}
	return OrderLine{
		ID:           ref.LineID(),
		MenuItemID:   a.MenuItemID,
		Name:         a.Name,
		UnitPrice:    a.UnitPrice,
		UnitCost:     a.UnitCost,
		Quantity:     parentQuantity,
		ParentLineID: parentLineID,
	}
}

// Catalog is the immutable menu loaded at startup.
type Catalog struct {
	items    []MenuItem
	addOns   []AddOnItem
	byID     map[string]*MenuItem
	addOnsBy map[string]AddOnItem
}

func NewCatalog(items []MenuItem, addOns []AddOnItem) Catalog {
	c := Catalog{
		items:    items,
		addOns:   addOns,
		byID:     make(map[string]*MenuItem, len(items)),
		addOnsBy: make(map[string]AddOnItem, len(addOns)),
	}
	for _, a := range addOns {
		c.addOnsBy[a.ID] = a
	}
	for i := range c.items {
		item := &c.items[i]
		// Momo entries historically carried the add-on behaviour; keep that
		// default for catalogs that predate the explicit flag.
		if item.Category == CategoryMomo {
			item.SupportsAddOns = true
		}
		c.byID[item.ID] = item
	}
	return c
}

func (c Catalog) Items() []MenuItem {
	return c.items
}

func (c Catalog) AddOns() []AddOnItem {
	return c.addOns
}

func (c Catalog) FindByID(id string) (*MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

func (c Catalog) FindAddOn(id string) (AddOnItem, bool) {
	a, ok := c.addOnsBy[id]
	return a, ok
}

// LineSupportsAddOns reports whether the menu item behind an order line has
// the add-on capability (quantity lock and cascade included).
func (c Catalog) LineSupportsAddOns(line OrderLine) bool {
	item, ok := c.byID[line.MenuItemID]
	return ok && item.SupportsAddOns
}
