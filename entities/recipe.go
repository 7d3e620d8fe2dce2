package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Recipe struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	ImageURL        string          `json:"image_url,omitempty"`
	SalePrice       decimal.Decimal `gorm:"type:decimal(10,2)" json:"sale_price"`
	Instructions    string          `gorm:"type:text" json:"instructions,omitempty"`
	PrepTimeMinutes int             `json:"prep_time_minutes"`
	Portions        int             `json:"portions"`
	MenuID          *uint           `json:"menu_id,omitempty"`
	// TotalCost is denormalized: always the sum of the costs of the
	// recipe's ingredient lines. Written only by the recipe service.
	TotalCost decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_cost"`

	Menu  *Menu              `gorm:"foreignKey:MenuID" json:"menu,omitempty"`
	Lines []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"lines,omitempty"`
	Timestamp
}

type RecipeIngredient struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	RecipeID     uint            `gorm:"uniqueIndex:idx_recipe_ingredient" json:"recipe_id"`
	IngredientID uint            `gorm:"uniqueIndex:idx_recipe_ingredient" json:"ingredient_id"`
	Quantity     decimal.Decimal `gorm:"type:decimal(10,3)" json:"quantity"`
	WastePct     decimal.Decimal `gorm:"type:decimal(5,2)" json:"waste_pct"`
	// Cost reflects the ingredient's price as of the last recompute of
	// this line, not a historical snapshot.
	Cost      decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost"`
	CreatedAt time.Time       `gorm:"type:timestamp" json:"created_at"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}
