package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/momomaya/pos-backend/services"
	"github.com/momomaya/pos-backend/utils"
)

// BranchController manages the session branch name. It must be set before
// the first finalize; every stored bill records the branch active at the
// time.
type BranchController struct {
	ledger *services.LedgerStore
}

func NewBranchController(ledger *services.LedgerStore) *BranchController {
	return &BranchController{ledger: ledger}
}

func (bc *BranchController) GetBranch(c *gin.Context) {
	name, err := bc.ledger.BranchName()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Current branch", gin.H{"name": name})
}

type setBranchRequest struct {
	Name string `json:"name" binding:"required"`
}

func (bc *BranchController) SetBranch(c *gin.Context) {
	var req setBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("branch name is required"))
		return
	}

	if err := bc.ledger.SetBranchName(req.Name); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Branch set", gin.H{"name": req.Name})
}
