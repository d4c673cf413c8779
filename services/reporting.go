package services

import (
	"sort"

	"github.com/momomaya/pos-backend/models"
)

// FinancialSummary is the headline revenue/profit view over a set of bills.
type FinancialSummary struct {
	TotalRevenue      float64                          `json:"total_revenue"`
	TotalCOGS         float64                          `json:"total_cogs"`
	GrossProfit       float64                          `json:"gross_profit"`
	ProfitMarginPct   float64                          `json:"profit_margin_pct"`
	AverageOrderValue float64                          `json:"average_order_value"`
	TotalOrders       int                              `json:"total_orders"`
	TotalItemsSold    int                              `json:"total_items_sold"`
	PaymentBreakdown  map[models.PaymentMethod]float64 `json:"payment_breakdown"`
}

// Summarize computes the financial summary for the given orders. All three
// payment methods are always present in the breakdown.
func Summarize(orders []models.CompletedOrder) FinancialSummary {
	summary := FinancialSummary{
		TotalOrders:      len(orders),
		PaymentBreakdown: make(map[models.PaymentMethod]float64, len(models.AllPaymentMethods)),
	}
	for _, method := range models.AllPaymentMethods {
		summary.PaymentBreakdown[method] = 0
	}

	for _, order := range orders {
		summary.TotalRevenue += order.Total
		summary.TotalCOGS += order.TotalCOGS()
		summary.PaymentBreakdown[order.PaymentMethod] += order.Total
		for _, item := range order.Items {
			summary.TotalItemsSold += item.Quantity
		}
	}

	summary.GrossProfit = summary.TotalRevenue - summary.TotalCOGS
	if summary.TotalRevenue > 0 {
		summary.ProfitMarginPct = summary.GrossProfit / summary.TotalRevenue * 100
	}
	if len(orders) > 0 {
		summary.AverageOrderValue = summary.TotalRevenue / float64(len(orders))
	}
	return summary
}

// ItemSales aggregates one line-item identity across all given orders.
type ItemSales struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
	COGS     float64 `json:"cogs"`
	Profit   float64 `json:"profit"`
}

type SortKey string

const (
	SortByName     SortKey = "name"
	SortByQuantity SortKey = "quantity"
	SortByRevenue  SortKey = "revenue"
	SortByCOGS     SortKey = "cogs"
	SortByProfit   SortKey = "profit"
)

type SortDirection string

const (
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

type SortConfig struct {
	Key       SortKey       `json:"key"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort matches the report's initial view.
var DefaultSort = SortConfig{Key: SortByProfit, Direction: SortDescending}

// NextSortConfig encodes the header-click rule: re-selecting the current key
// flips direction, a new key starts descending.
func NextSortConfig(current SortConfig, requested SortKey) SortConfig {
	if current.Key == requested && current.Direction == SortDescending {
		return SortConfig{Key: requested, Direction: SortAscending}
	}
	return SortConfig{Key: requested, Direction: SortDescending}
}

// ItemSalesReport groups line items by id, sums their quantity, revenue and
// cost, and sorts per config. Ties keep first-seen input order.
func ItemSalesReport(orders []models.CompletedOrder, cfg SortConfig) []ItemSales {
	var keys []string
	byID := make(map[string]*ItemSales)

	for _, order := range orders {
		for _, item := range order.Items {
			entry, ok := byID[item.ID]
			if !ok {
				entry = &ItemSales{ID: item.ID, Name: item.Name}
				byID[item.ID] = entry
				keys = append(keys, item.ID)
			}
			entry.Quantity += item.Quantity
			entry.Revenue += item.Subtotal()
			entry.COGS += item.TotalCost()
		}
	}

	report := make([]ItemSales, 0, len(keys))
	for _, id := range keys {
		entry := byID[id]
		entry.Profit = entry.Revenue - entry.COGS
		report = append(report, *entry)
	}

	sort.SliceStable(report, func(i, j int) bool {
		if cfg.Direction == SortDescending {
			return itemSalesLess(report[j], report[i], cfg.Key)
		}
		return itemSalesLess(report[i], report[j], cfg.Key)
	})
	return report
}

func itemSalesLess(a, b ItemSales, key SortKey) bool {
	switch key {
	case SortByName:
		return a.Name < b.Name
	case SortByQuantity:
		return a.Quantity < b.Quantity
	case SortByRevenue:
		return a.Revenue < b.Revenue
	case SortByCOGS:
		return a.COGS < b.COGS
	default:
		return a.Profit < b.Profit
	}
}
