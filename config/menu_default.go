package config

import "github.com/momomaya/pos-backend/models"

// matrix builds a price matrix with one row per offered preparation.
func matrix(rows map[models.PreparationType][3]float64) models.PriceMatrix {
	m := models.PriceMatrix{}
	for prep, prices := range rows {
		m[prep] = map[models.Size]float64{
			models.SizeSmall:  prices[0],
			models.SizeMedium: prices[1],
			models.SizeLarge:  prices[2],
		}
	}
	return m
}

const na = models.PriceUnavailable

// DefaultMenuItems is the built-in Momomaya menu, used when MENU_FILE is not
// configured. Costs are per-unit cost of goods; items without a costs matrix
// report zero cost.
func DefaultMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			ID: "platter", Name: "Momomaya Must Try Platter", Category: models.CategoryMomo,
			Preparations: matrix(map[models.PreparationType][3]float64{
				models.PrepNormal: {70, 85, 100},
			}),
			Costs: matrix(map[models.PreparationType][3]float64{
				models.PrepNormal: {35, 42, 50},
			}),
		},
		{
			ID: "chicken", Name: "Chicken Momo", Category: models.CategoryMomo,
			Preparations: matrix(map[models.PreparationType][3]float64{
				models.PrepSteamed: {40, 60, 75},
				models.PrepFried:   {50, 70, 85},
			}),
			Costs: matrix(map[models.PreparationType][3]float64{
				models.PrepSteamed: {18, 26, 33},
				models.PrepFried:   {22, 30, 37},
			}),
		},
		{
			ID: "paneer", Name: "Paneer Momo", Category: models.CategoryMomo,
			Preparations: matrix(map[models.PreparationType][3]float64{
				models.PrepSteamed: {40, 60, 75},
				models.PrepFried:   {50, 70, 85},
			}),
			Costs: matrix(map[models.PreparationType][3]float64{
				models.PrepSteamed: {20, 28, 35},
				models.PrepFried:   {24, 32, 39},
			}),
		},
		{
			ID: "veg", Name: "Veg Momo", Category: models.CategoryMomo,
			Preparations: matrix(map[models.PreparationType][3]float64{
				models.PrepSteamed: {30, 50, 60},
				models.PrepFried:   {40, 60, 70},
			}),
			Costs: matrix(map[models.PreparationType][3]float64{
				models.PrepSteamed: {12, 20, 24},
				models.PrepFried:   {16, 24, 28},
			}),
		},
		{
			ID: "chicken-tandoori", Name: "Chicken Tandoori Momo", Category: models.CategoryMomo,
			Preparations: matrix(map[models.PreparationType][3]float64{
				models.PrepNormal: {60, 85, 100},
			}),
			Costs: matrix(map[models.PreparationType][3]float64{
				models.PrepNormal: {28, 40, 48},
			}),
		},
		{
			ID: "kurkure-chicken", Name: "Chicken Kurkure Momo", Category: models.CategoryMomo,
			Preparations: matrix(map[models.PreparationType][3]float64{
				models.PrepNormal: {60, 85, 100},
			}),
		},
		{
			ID: "chicken-pan-fried", Name: "Chicken Pan Fried Momo", Category: models.CategoryMomo,
			Preparations: matrix(map[models.PreparationType][3]float64{
				models.PrepNormal: {60, 85, 100},
			}),
		},
		{
			ID: "cheese-lovers-combo", Name: "Cheese Lovers Combo", Category: models.CategoryMomo,
			Preparations: matrix(map[models.PreparationType][3]float64{
				models.PrepNormal: {75, na, na},
			}),
		},
		{
			ID: "premium-chicken-cheese-lava", Name: "Premium Chicken Cheese Lava Momo", Category: models.CategoryMomo,
			Preparations: matrix(map[models.PreparationType][3]float64{
				models.PrepNormal: {90, na, na},
			}),
		},
		{
			ID: "premium-corn-cheese-lava", Name: "Premium Corn Cheese Lava Momo", Category: models.CategoryMomo,
			Preparations: matrix(map[models.PreparationType][3]float64{
				models.PrepNormal: {90, na, na},
			}),
		},
		{
			ID: "fries", Name: "French Fries", Category: models.CategorySide,
			Preparations: matrix(map[models.PreparationType][3]float64{
				models.PrepNormal: {40, 40, 40},
			}),
			Costs: matrix(map[models.PreparationType][3]float64{
				models.PrepNormal: {15, 15, 15},
			}),
		},
		{
			ID: "tandoori-mayonnaise", Name: "Tandoori Mayonnaise", Category: models.CategorySide,
			Preparations: matrix(map[models.PreparationType][3]float64{
				models.PrepNormal: {10, 10, 10},
			}),
			Costs: matrix(map[models.PreparationType][3]float64{
				models.PrepNormal: {4, 4, 4},
			}),
		},
	}
}

// DefaultAddOns are the add-on templates offered on lines of items that
// support them. The fries add-on is sold at half the standalone price.
func DefaultAddOns() []models.AddOnItem {
	return []models.AddOnItem{
		{ID: "fries-add-on", MenuItemID: "fries", Name: "French Fries (Half Price)", UnitPrice: 20, UnitCost: 15},
		{ID: "tandoori-mayonnaise", MenuItemID: "tandoori-mayonnaise", Name: "Tandoori Mayonnaise", UnitPrice: 10, UnitCost: 4},
	}
}
