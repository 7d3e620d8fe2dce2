package costing

import (
	"Recetario-Backend/domain"
	"Recetario-Backend/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeLineCost prices one recipe ingredient line from the catalog's
// current pricing snapshot.
//
// For a unit-priced ingredient the purchase price covers one piece of
// UnitWeight grams, so the line is charged at the per-gram rate. Every other
// presentation is priced per unit of the same measure as the quantity. A
// positive waste percentage inflates the base cost proportionally. The result
// is rounded half-up to 2 decimal places and has no side effects.
func ComputeLineCost(pricing domain.IngredientPricing, quantity, wastePct decimal.Decimal) (decimal.Decimal, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, domain.ErrInvalidQuantity
	}
	if wastePct.IsNegative() {
		return decimal.Decimal{}, domain.ErrInvalidWastePct
	}

	var base decimal.Decimal
	switch pricing.Presentation {
	case entities.PresentationUnit:
		if !pricing.UnitWeight.Valid || pricing.UnitWeight.Decimal.LessThanOrEqual(decimal.Zero) {
			return decimal.Decimal{}, domain.ErrInvalidIngredientData
		}
		base = pricing.PurchasePrice.Div(pricing.UnitWeight.Decimal).Mul(quantity)
	default:
		base = pricing.PurchasePrice.Mul(quantity)
	}

	final := base
	if wastePct.GreaterThan(decimal.Zero) {
		final = base.Mul(decimal.NewFromInt(1).Add(wastePct.Div(hundred)))
	}

	return final.Round(2), nil
}
