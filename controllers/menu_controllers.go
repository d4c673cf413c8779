package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/momomaya/pos-backend/models"
	"github.com/momomaya/pos-backend/utils"
)

// MenuController exposes the read-only catalog.
type MenuController struct {
	catalog models.Catalog
}

func NewMenuController(catalog models.Catalog) *MenuController {
	return &MenuController{catalog: catalog}
}

func (mc *MenuController) ListMenu(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Menu", gin.H{
		"items":   mc.catalog.Items(),
		"add_ons": mc.catalog.AddOns(),
	})
}

// GetVariants lists the selectable preparation/size combinations of an item.
func (mc *MenuController) GetVariants(c *gin.Context) {
	item, ok := mc.catalog.FindByID(c.Param("item_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("menu item %q not found", c.Param("item_id")))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Variants", gin.H{
		"item_id":  item.ID,
		"name":     item.Name,
		"variants": item.VariantOptions(),
	})
}
