package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/momomaya/pos-backend/config"
	"github.com/momomaya/pos-backend/router"
	"github.com/momomaya/pos-backend/services"
	"github.com/momomaya/pos-backend/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := services.NewLedgerStore(db).Migrate(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate ledger state: %v", err)
	}

	catalog, err := config.LoadCatalog()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load menu catalog: %v", err)
	}
	utils.InfoLogger.Printf("Loaded %d menu items, %d add-ons", len(catalog.Items()), len(catalog.AddOns()))

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(db, catalog)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
