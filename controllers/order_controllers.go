package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/momomaya/pos-backend/models"
	"github.com/momomaya/pos-backend/services"
	"github.com/momomaya/pos-backend/utils"
)

// OrderController exposes the working bill: line mutations, add-on toggles,
// receipt preview and finalize.
type OrderController struct {
	builder *services.OrderBuilder
	ledger  *services.LedgerStore
	catalog models.Catalog
}

func NewOrderController(builder *services.OrderBuilder, ledger *services.LedgerStore, catalog models.Catalog) *OrderController {
	return &OrderController{builder: builder, ledger: ledger, catalog: catalog}
}

type orderView struct {
	Lines []models.OrderLine `json:"lines"`
	Total float64            `json:"total"`
}

func (oc *OrderController) currentOrder() orderView {
	lines := oc.builder.Lines()
	return orderView{Lines: lines, Total: models.OrderTotal(lines)}
}

// GetOrder returns the bill being assembled.
func (oc *OrderController) GetOrder(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Current order", oc.currentOrder())
}

type addLineRequest struct {
	ItemID      string `json:"item_id" binding:"required"`
	Preparation string `json:"preparation" binding:"required"`
	Size        string `json:"size" binding:"required"`
	Quantity    int    `json:"quantity"`
}

// AddLine resolves a menu variant and merges it into the order.
func (oc *OrderController) AddLine(c *gin.Context) {
	var req addLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, ok := oc.catalog.FindByID(req.ItemID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("menu item %q not found", req.ItemID))
		return
	}
	line, err := item.ResolveVariant(models.PreparationType(req.Preparation), models.Size(req.Size))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Quantity > 0 {
		line.Quantity = req.Quantity
	}

	oc.builder.AddLines([]models.OrderLine{line})
	utils.RespondJSON(c, http.StatusOK, "Line added", oc.currentOrder())
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateQuantity sets a line's quantity; zero removes it along with its
// add-ons. An unknown line id leaves the order unchanged.
func (oc *OrderController) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	oc.builder.UpdateQuantity(c.Param("line_id"), *req.Quantity)
	utils.RespondJSON(c, http.StatusOK, "Quantity updated", oc.currentOrder())
}

// ToggleAddOn adds or removes an add-on under a parent line.
func (oc *OrderController) ToggleAddOn(c *gin.Context) {
	addOn, ok := oc.catalog.FindAddOn(c.Param("addon_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("add-on %q not found", c.Param("addon_id")))
		return
	}

	parentLineID := c.Param("line_id")
	enabled := oc.builder.ToggleAddOn(addOn, parentLineID)
	message := "Add-on removed"
	if enabled {
		message = "Add-on added"
	}
	utils.RespondJSON(c, http.StatusOK, message, gin.H{
		"enabled": enabled,
		"order":   oc.currentOrder(),
	})
}

// ClearOrder empties the working bill.
func (oc *OrderController) ClearOrder(c *gin.Context) {
	oc.builder.Clear()
	utils.RespondJSON(c, http.StatusOK, "Order cleared", oc.currentOrder())
}

// PreviewReceipt shows the receipt the next finalize would print, using the
// upcoming bill number without reserving it.
func (oc *OrderController) PreviewReceipt(c *gin.Context) {
	if oc.builder.IsEmpty() {
		utils.RespondError(c, http.StatusBadRequest, services.ErrEmptyOrder)
		return
	}

	billNumber, err := oc.ledger.PeekNextBillNumber()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	branch, err := oc.ledger.BranchName()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	receipt := services.PreviewReceipt(oc.builder.Lines(), billNumber, branch)
	utils.RespondJSON(c, http.StatusOK, "Receipt preview", receipt)
}

type finalizeRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// Finalize persists the bill, then hands the stored order and its receipt to
// the caller for printing. The working order is cleared only after the write
// succeeds; a failed write leaves it intact for a retry.
func (oc *OrderController) Finalize(c *gin.Context) {
	var req finalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	method := models.PaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		utils.RespondError(c, http.StatusBadRequest, services.ErrInvalidPayment)
		return
	}
	if oc.builder.IsEmpty() {
		utils.RespondError(c, http.StatusBadRequest, services.ErrEmptyOrder)
		return
	}

	branch, err := oc.ledger.BranchName()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if branch == "" {
		utils.RespondError(c, http.StatusBadRequest, services.ErrBranchNotSet)
		return
	}

	completed, err := oc.ledger.Append(oc.builder.Lines(), method, branch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	oc.builder.Clear()
	utils.RespondJSON(c, http.StatusCreated, "Order finalized", gin.H{
		"order":   completed,
		"receipt": services.BuildReceipt(completed),
	})
}
