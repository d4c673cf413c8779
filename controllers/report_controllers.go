package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/momomaya/pos-backend/services"
	"github.com/momomaya/pos-backend/utils"
)

// ReportController derives sales and profit figures from active bills in a
// date range. All aggregation is pure; only the range query touches storage.
type ReportController struct {
	ledger *services.LedgerStore
}

func NewReportController(ledger *services.LedgerStore) *ReportController {
	return &ReportController{ledger: ledger}
}

// Summary returns revenue, COGS, profit and the payment breakdown.
func (rc *ReportController) Summary(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	orders, err := rc.ledger.QueryActiveByDateRange(start, end)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Financial summary", services.Summarize(orders))
}

// ItemSales returns the per-item sales report. ?sort= picks the column,
// ?dir= the direction; defaults follow the report's initial view.
func (rc *ReportController) ItemSales(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cfg := services.DefaultSort
	if key := c.Query("sort"); key != "" {
		switch services.SortKey(key) {
		case services.SortByName, services.SortByQuantity, services.SortByRevenue, services.SortByCOGS, services.SortByProfit:
			cfg.Key = services.SortKey(key)
		default:
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid sort key %q", key))
			return
		}
	}
	switch c.Query("dir") {
	case "":
	case string(services.SortAscending):
		cfg.Direction = services.SortAscending
	case string(services.SortDescending):
		cfg.Direction = services.SortDescending
	default:
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid sort direction %q", c.Query("dir")))
		return
	}

	orders, err := rc.ledger.QueryActiveByDateRange(start, end)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item sales report", gin.H{
		"sort":  cfg,
		"items": services.ItemSalesReport(orders, cfg),
	})
}

// ExportCSV streams the per-line-item sales export as a download.
func (rc *ReportController) ExportCSV(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	orders, err := rc.ledger.QueryActiveByDateRange(start, end)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	filename := services.ExportFilename("sales", start, end)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(services.SalesCSV(orders)))
}
