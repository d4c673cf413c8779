package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/momomaya/pos-backend/models"
)

// InitDB opens the database connection. A single-counter POS defaults to a
// local sqlite file; DB_DRIVER=mysql switches to a shared server using the
// usual DB_* variables.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}

	switch driver {
	case "sqlite":
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "momomaya.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			getenvDefault("DB_HOST", "127.0.0.1"),
			getenvDefault("DB_PORT", "3306"),
			getenvDefault("DB_NAME", "momomaya"),
		)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// LoadCatalog reads the menu from MENU_FILE, falling back to the built-in
// menu when the variable is unset. The catalog is immutable after this.
func LoadCatalog() (models.Catalog, error) {
	path := os.Getenv("MENU_FILE")
	if path == "" {
		return models.NewCatalog(DefaultMenuItems(), DefaultAddOns()), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("read menu file: %w", err)
	}
	var menu struct {
		Items  []models.MenuItem  `json:"items"`
		AddOns []models.AddOnItem `json:"add_ons"`
	}
	if err := json.Unmarshal(data, &menu); err != nil {
		return models.Catalog{}, fmt.Errorf("parse menu file: %w", err)
	}
	return models.NewCatalog(menu.Items, menu.AddOns), nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
