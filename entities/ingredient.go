package entities

import (
	"github.com/shopspring/decimal"
)

// Presentation is the unit-of-sale an ingredient is purchased and priced in.
const (
	PresentationPound      = "Pound"
	PresentationUnit       = "Unit"
	PresentationGram       = "Gram"
	PresentationOunce      = "Ounce"
	PresentationKilogram   = "Kilogram"
	PresentationLiter      = "Liter"
	PresentationMilliliter = "Milliliter"
	PresentationTablespoon = "Tablespoon"
)

func Presentations() []string {
	return []string{
		PresentationPound,
		PresentationUnit,
		PresentationGram,
		PresentationOunce,
		PresentationKilogram,
		PresentationLiter,
		PresentationMilliliter,
		PresentationTablespoon,
	}
}

type Ingredient struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `json:"name"`
	CategoryID    *uint           `json:"category_id,omitempty"`
	Presentation  string          `json:"presentation"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"purchase_price"`
	// UnitWeight is the weight of one piece, only meaningful when
	// Presentation is Unit.
	UnitWeight  decimal.NullDecimal `gorm:"type:decimal(10,3)" json:"unit_weight"`
	Description string              `json:"description,omitempty"`
	ImageURL    string              `json:"image_url,omitempty"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Timestamp
}
