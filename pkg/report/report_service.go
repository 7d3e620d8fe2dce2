package report

import (
	"context"

	"github.com/shopspring/decimal"

	"Recetario-Backend/domain"
)

type (
	ReportService interface {
		GetProfitability(ctx context.Context) ([]domain.ProfitabilityRow, error)
		GetRecipesByMenu(ctx context.Context) ([]domain.RecipesByMenuRow, error)
		GetMostUsedIngredients(ctx context.Context) ([]domain.MostUsedIngredientRow, error)
		GetIngredientsByCategory(ctx context.Context) ([]domain.IngredientsByCategoryRow, error)
	}

	reportService struct {
		reportRepository ReportRepository
	}
)

func NewReportService(reportRepository ReportRepository) ReportService {
	return &reportService{reportRepository: reportRepository}
}

var hundred = decimal.NewFromInt(100)

// Margin computes (sale - cost) / sale as a percentage rounded to 2
// decimals. A zero sale price reports a 0% margin instead of dividing by
// zero.
func Margin(salePrice, totalCost decimal.Decimal) decimal.Decimal {
	if salePrice.IsZero() {
		return decimal.Zero
	}
	return salePrice.Sub(totalCost).Div(salePrice).Mul(hundred).Round(2)
}

func (s *reportService) GetProfitability(ctx context.Context) ([]domain.ProfitabilityRow, error) {
	recipes, err := s.reportRepository.GetRecipesForProfitability(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ProfitabilityRow, 0, len(recipes))
	for _, recipe := range recipes {
		rows = append(rows, domain.ProfitabilityRow{
			RecipeID:    recipe.ID,
			Name:        recipe.Name,
			Description: recipe.Description,
			SalePrice:   recipe.SalePrice,
			TotalCost:   recipe.TotalCost,
			Profit:      recipe.SalePrice.Sub(recipe.TotalCost),
			MarginPct:   Margin(recipe.SalePrice, recipe.TotalCost),
			Portions:    recipe.Portions,
		})
	}
	return rows, nil
}

func (s *reportService) GetRecipesByMenu(ctx context.Context) ([]domain.RecipesByMenuRow, error) {
	rows, err := s.reportRepository.GetRecipesByMenu(ctx)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].Profit = rows[i].SalePrice.Sub(rows[i].TotalCost)
	}
	return rows, nil
}

func (s *reportService) GetMostUsedIngredients(ctx context.Context) ([]domain.MostUsedIngredientRow, error) {
	rows, err := s.reportRepository.GetMostUsedIngredients(ctx)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].TotalCost = rows[i].TotalCost.Round(2)
	}
	return rows, nil
}

func (s *reportService) GetIngredientsByCategory(ctx context.Context) ([]domain.IngredientsByCategoryRow, error) {
	rows, err := s.reportRepository.GetIngredientsByCategory(ctx)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].AvgPrice = rows[i].AvgPrice.Round(2)
	}
	return rows, nil
}
