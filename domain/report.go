package domain

import (
	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetProfitability = "profitability report retrieved successfully"
	MessageSuccessGetRecipesByMenu = "recipes by menu report retrieved successfully"
	MessageSuccessGetIngredientUse = "ingredient usage report retrieved successfully"
	MessageSuccessGetCategoryStats = "category statistics retrieved successfully"

	MessageFailedGetProfitability = "failed to retrieve profitability report"
	MessageFailedGetRecipesByMenu = "failed to retrieve recipes by menu report"
	MessageFailedGetIngredientUse = "failed to retrieve ingredient usage report"
	MessageFailedGetCategoryStats = "failed to retrieve category statistics"
)

type (
	ProfitabilityRow struct {
		RecipeID    uint            `json:"recipe_id"`
		Name        string          `json:"name"`
		Description string          `json:"description,omitempty"`
		SalePrice   decimal.Decimal `json:"sale_price"`
		TotalCost   decimal.Decimal `json:"total_cost"`
		Profit      decimal.Decimal `json:"profit"`
		MarginPct   decimal.Decimal `json:"margin_pct"`
		Portions    int             `json:"portions"`
	}

	RecipesByMenuRow struct {
		Menu      string          `json:"menu"`
		RecipeID  uint            `json:"recipe_id"`
		Recipe    string          `json:"recipe"`
		SalePrice decimal.Decimal `json:"sale_price"`
		TotalCost decimal.Decimal `json:"total_cost"`
		Profit    decimal.Decimal `json:"profit"`
		Portions  int             `json:"portions"`
	}

	MostUsedIngredientRow struct {
		IngredientID  uint            `json:"ingredient_id"`
		Ingredient    string          `json:"ingredient"`
		Presentation  string          `json:"presentation"`
		CategoryName  string          `json:"category_name,omitempty"`
		TimesUsed     int64           `json:"times_used"`
		TotalQuantity decimal.Decimal `json:"total_quantity"`
		TotalCost     decimal.Decimal `json:"total_cost"`
	}

	IngredientsByCategoryRow struct {
		Category         string          `json:"category"`
		TotalIngredients int64           `json:"total_ingredients"`
		AvgPrice         decimal.Decimal `json:"avg_price"`
		MinPrice         decimal.Decimal `json:"min_price"`
		MaxPrice         decimal.Decimal `json:"max_price"`
	}
)
