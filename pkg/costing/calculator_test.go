package costing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"Recetario-Backend/domain"
	"Recetario-Backend/entities"
)

func pricing(presentation, price string, unitWeight string) domain.IngredientPricing {
	p := domain.IngredientPricing{
		PurchasePrice: decimal.RequireFromString(price),
		Presentation:  presentation,
	}
	if unitWeight != "" {
		p.UnitWeight = decimal.NewNullDecimal(decimal.RequireFromString(unitWeight))
	}
	return p
}

func TestComputeLineCost(t *testing.T) {
	tests := []struct {
		name     string
		pricing  domain.IngredientPricing
		quantity string
		wastePct string
		want     string
	}{
		{
			name:     "price per measure times quantity",
			pricing:  pricing(entities.PresentationKilogram, "4.50", ""),
			quantity: "2",
			wastePct: "0",
			want:     "9.00",
		},
		{
			name:     "rounds half up to two decimals",
			pricing:  pricing(entities.PresentationLiter, "3.333", ""),
			quantity: "3",
			wastePct: "0",
			want:     "10.00",
		},
		{
			name:     "unit presentation converts through unit weight",
			pricing:  pricing(entities.PresentationUnit, "10.00", "500"),
			quantity: "250",
			wastePct: "0",
			want:     "5.00",
		},
		{
			name:     "waste percentage inflates the base cost",
			pricing:  pricing(entities.PresentationLiter, "2.00", ""),
			quantity: "3",
			wastePct: "10",
			want:     "6.60",
		},
		{
			name:     "fifty percent waste",
			pricing:  pricing(entities.PresentationGram, "4.00", ""),
			quantity: "1",
			wastePct: "50",
			want:     "6.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeLineCost(tt.pricing, decimal.RequireFromString(tt.quantity), decimal.RequireFromString(tt.wastePct))
			if err != nil {
				t.Fatalf("ComputeLineCost returned error: %v", err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("ComputeLineCost = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestComputeLineCostErrors(t *testing.T) {
	tests := []struct {
		name     string
		pricing  domain.IngredientPricing
		quantity string
		wastePct string
		wantErr  error
	}{
		{
			name:     "zero quantity",
			pricing:  pricing(entities.PresentationGram, "1.00", ""),
			quantity: "0",
			wastePct: "0",
			wantErr:  domain.ErrInvalidQuantity,
		},
		{
			name:     "negative quantity",
			pricing:  pricing(entities.PresentationGram, "1.00", ""),
			quantity: "-2",
			wastePct: "0",
			wantErr:  domain.ErrInvalidQuantity,
		},
		{
			name:     "negative waste",
			pricing:  pricing(entities.PresentationGram, "1.00", ""),
			quantity: "1",
			wastePct: "-5",
			wantErr:  domain.ErrInvalidWastePct,
		},
		{
			name:     "unit presentation without unit weight",
			pricing:  pricing(entities.PresentationUnit, "10.00", ""),
			quantity: "100",
			wastePct: "0",
			wantErr:  domain.ErrInvalidIngredientData,
		},
		{
			name:     "unit presentation with zero unit weight",
			pricing:  pricing(entities.PresentationUnit, "10.00", "0"),
			quantity: "100",
			wastePct: "0",
			wantErr:  domain.ErrInvalidIngredientData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeLineCost(tt.pricing, decimal.RequireFromString(tt.quantity), decimal.RequireFromString(tt.wastePct))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ComputeLineCost error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
