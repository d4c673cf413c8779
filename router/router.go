package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/momomaya/pos-backend/controllers"
	"github.com/momomaya/pos-backend/models"
	"github.com/momomaya/pos-backend/services"
	"github.com/momomaya/pos-backend/utils"
)

// SetupRouter wires the single-terminal POS API. One order builder and one
// ledger store serve the whole process.
func SetupRouter(db *gorm.DB, catalog models.Catalog) *gin.Engine {
	r := gin.Default()

	ledger := services.NewLedgerStore(db)
	builder := services.NewOrderBuilder(catalog)

	orderCtrl := controllers.NewOrderController(builder, ledger, catalog)
	billCtrl := controllers.NewBillController(ledger)
	reportCtrl := controllers.NewReportController(ledger)
	branchCtrl := controllers.NewBranchController(ledger)
	menuCtrl := controllers.NewMenuController(catalog)

	r.Use(func(c *gin.Context) {
		utils.InfoLogger.Printf("Incoming request: %s %s from %s", c.Request.Method, c.Request.URL.Path, c.ClientIP())
		c.Next()
	})

	api := r.Group("/api/v1")
	{
		api.GET("/menu", menuCtrl.ListMenu)
		api.GET("/menu/:item_id/variants", menuCtrl.GetVariants)

		api.GET("/order", orderCtrl.GetOrder)
		api.POST("/order/lines", orderCtrl.AddLine)
		api.PATCH("/order/lines/:line_id/quantity", orderCtrl.UpdateQuantity)
		api.POST("/order/lines/:line_id/addons/:addon_id/toggle", orderCtrl.ToggleAddOn)
		api.DELETE("/order", orderCtrl.ClearOrder)
		api.GET("/order/receipt/preview", orderCtrl.PreviewReceipt)
		api.POST("/order/finalize", orderCtrl.Finalize)

		api.GET("/bills", billCtrl.ListBills)
		api.GET("/bills/:bill_number", billCtrl.GetBill)
		api.DELETE("/bills/:bill_number", billCtrl.DeleteBill)

		api.GET("/reports/summary", reportCtrl.Summary)
		api.GET("/reports/items", reportCtrl.ItemSales)
		api.GET("/reports/export", reportCtrl.ExportCSV)

		api.GET("/branch", branchCtrl.GetBranch)
		api.PUT("/branch", branchCtrl.SetBranch)
	}

	return r
}
