package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/momomaya/pos-backend/models"
	"github.com/momomaya/pos-backend/services"
	"github.com/momomaya/pos-backend/utils"
)

// BillController serves the completed-order ledger: lookup, listings and
// soft deletion.
type BillController struct {
	ledger *services.LedgerStore
}

func NewBillController(ledger *services.LedgerStore) *BillController {
	return &BillController{ledger: ledger}
}

func parseBillNumber(c *gin.Context) (int, error) {
	n, err := strconv.Atoi(c.Param("bill_number"))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid bill number %q", c.Param("bill_number"))
	}
	return n, nil
}

// parseDateRange reads start/end query params ("2006-01-02"), defaulting
// both to today.
func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	start, end := now, now

	if s := c.Query("start"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q", s)
		}
		start = parsed
	}
	if s := c.Query("end"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q", s)
		}
		end = parsed
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date before start date")
	}
	return start, end, nil
}

// GetBill finds a bill by number, deleted or not.
func (bc *BillController) GetBill(c *gin.Context) {
	billNumber, err := parseBillNumber(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := bc.ledger.FindByBillNumber(billNumber)
	if errors.Is(err, services.ErrBillNotFound) {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Bill found", gin.H{
		"order":   order,
		"receipt": services.BuildReceipt(order),
	})
}

// ListBills returns active bills in a date range, or deleted ones with
// ?deleted=true. Filtering always uses the bill's own date.
func (bc *BillController) ListBills(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var orders []models.CompletedOrder
	if c.Query("deleted") == "true" {
		orders, err = bc.ledger.QueryDeletedByDateRange(start, end)
	} else {
		orders, err = bc.ledger.QueryActiveByDateRange(start, end)
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Bills", gin.H{
		"count":  len(orders),
		"orders": orders,
	})
}

type deleteBillRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// DeleteBill voids a bill. The reason is mandatory; the record remains
// discoverable afterwards.
func (bc *BillController) DeleteBill(c *gin.Context) {
	billNumber, err := parseBillNumber(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req deleteBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("deletion reason is required"))
		return
	}

	order, err := bc.ledger.SoftDelete(billNumber, req.Reason)
	switch {
	case errors.Is(err, services.ErrBillNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, models.ErrAlreadyDeleted):
		utils.RespondError(c, http.StatusConflict, err)
	case err != nil:
		utils.RespondError(c, http.StatusInternalServerError, err)
	default:
		utils.RespondJSON(c, http.StatusOK, "Bill deleted", order)
	}
}
