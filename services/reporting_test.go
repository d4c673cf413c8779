package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momomaya/pos-backend/models"
)

func reportOrders() []models.CompletedOrder {
	return []models.CompletedOrder{
		{
			BillNumber: 1, Total: 100, Date: time.Now(),
			PaymentMethod: models.PaymentCash, BranchName: "OK Road",
			Items: []models.OrderLine{
				{ID: "chicken-steamed-medium", Name: "Steamed Chicken Momo (Medium)", UnitPrice: 50, UnitCost: 20, Quantity: 2},
			},
		},
		{
			BillNumber: 2, Total: 50, Date: time.Now(),
			PaymentMethod: models.PaymentUPI, BranchName: "OK Road",
			Items: []models.OrderLine{
				{ID: "veg-steamed-small", Name: "Steamed Veg Momo (Small)", UnitPrice: 30, UnitCost: 12, Quantity: 1},
				{ID: "tandoori-mayonnaise", Name: "Tandoori Mayonnaise", UnitPrice: 10, UnitCost: 4, Quantity: 2},
			},
		},
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(reportOrders())

	assert.Equal(t, 150.0, summary.TotalRevenue)
	assert.Equal(t, 60.0, summary.TotalCOGS)
	assert.Equal(t, 90.0, summary.GrossProfit)
	assert.Equal(t, 60.0, summary.ProfitMarginPct)
	assert.Equal(t, 75.0, summary.AverageOrderValue)
	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, 5, summary.TotalItemsSold)
}

func TestSummarizePaymentBreakdownAlwaysComplete(t *testing.T) {
	summary := Summarize(reportOrders())

	assert.Equal(t, 100.0, summary.PaymentBreakdown[models.PaymentCash])
	assert.Equal(t, 50.0, summary.PaymentBreakdown[models.PaymentUPI])
	assert.Equal(t, 0.0, summary.PaymentBreakdown[models.PaymentCard])
	assert.Len(t, summary.PaymentBreakdown, 3)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, 0.0, summary.ProfitMarginPct)
	assert.Equal(t, 0.0, summary.AverageOrderValue)
	assert.Len(t, summary.PaymentBreakdown, 3)
}

func TestItemSalesReportAggregation(t *testing.T) {
	report := ItemSalesReport(reportOrders(), SortConfig{Key: SortByName, Direction: SortAscending})

	require.Len(t, report, 3)
	byID := map[string]ItemSales{}
	for _, e := range report {
		byID[e.ID] = e
	}

	chicken := byID["chicken-steamed-medium"]
	assert.Equal(t, 2, chicken.Quantity)
	assert.Equal(t, 100.0, chicken.Revenue)
	assert.Equal(t, 40.0, chicken.COGS)
	assert.Equal(t, 60.0, chicken.Profit)

	mayo := byID["tandoori-mayonnaise"]
	assert.Equal(t, 2, mayo.Quantity)
	assert.Equal(t, 20.0, mayo.Revenue)
	assert.Equal(t, 8.0, mayo.COGS)
	assert.Equal(t, 12.0, mayo.Profit)
}

func TestItemSalesReportSortDirections(t *testing.T) {
	orders := reportOrders()

	desc := ItemSalesReport(orders, SortConfig{Key: SortByRevenue, Direction: SortDescending})
	require.Len(t, desc, 3)
	assert.Equal(t, "chicken-steamed-medium", desc[0].ID)

	asc := ItemSalesReport(orders, SortConfig{Key: SortByRevenue, Direction: SortAscending})
	assert.Equal(t, "tandoori-mayonnaise", asc[0].ID)
}

func TestItemSalesReportTiesKeepInputOrder(t *testing.T) {
	orders := []models.CompletedOrder{
		{
			Items: []models.OrderLine{
				{ID: "a", Name: "Item A", UnitPrice: 10, Quantity: 1},
				{ID: "b", Name: "Item B", UnitPrice: 10, Quantity: 1},
				{ID: "c", Name: "Item C", UnitPrice: 10, Quantity: 1},
			},
		},
	}

	report := ItemSalesReport(orders, SortConfig{Key: SortByRevenue, Direction: SortDescending})
	require.Len(t, report, 3)
	assert.Equal(t, "a", report[0].ID)
	assert.Equal(t, "b", report[1].ID)
	assert.Equal(t, "c", report[2].ID)
}

func TestNextSortConfig(t *testing.T) {
	cfg := DefaultSort
	assert.Equal(t, SortConfig{Key: SortByProfit, Direction: SortDescending}, cfg)

	// Same key flips direction, and flips back.
	cfg = NextSortConfig(cfg, SortByProfit)
	assert.Equal(t, SortAscending, cfg.Direction)
	cfg = NextSortConfig(cfg, SortByProfit)
	assert.Equal(t, SortDescending, cfg.Direction)

	// A new key starts descending.
	cfg = NextSortConfig(cfg, SortByName)
	assert.Equal(t, SortConfig{Key: SortByName, Direction: SortDescending}, cfg)
}
