package report

import (
	"context"

	"gorm.io/gorm"

	"Recetario-Backend/domain"
	"Recetario-Backend/entities"
)

type (
	// ReportRepository reads aggregations off the persisted recipe and
	// catalog state. No method here writes anything.
	ReportRepository interface {
		GetRecipesForProfitability(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipesByMenu(ctx context.Context) ([]domain.RecipesByMenuRow, error)
		GetMostUsedIngredients(ctx context.Context) ([]domain.MostUsedIngredientRow, error)
		GetIngredientsByCategory(ctx context.Context) ([]domain.IngredientsByCategoryRow, error)
	}

	reportRepository struct {
		db *gorm.DB
	}
)

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetRecipesForProfitability(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Order("name").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *reportRepository) GetRecipesByMenu(ctx context.Context) ([]domain.RecipesByMenuRow, error) {
	var rows []domain.RecipesByMenuRow
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select("menus.name AS menu, recipes.id AS recipe_id, recipes.name AS recipe, recipes.sale_price, recipes.total_cost, recipes.portions").
		Joins("JOIN menus ON menus.id = recipes.menu_id").
		Order("menus.name, recipes.name").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) GetMostUsedIngredients(ctx context.Context) ([]domain.MostUsedIngredientRow, error) {
	var rows []domain.MostUsedIngredientRow
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Select("ingredients.id AS ingredient_id, ingredients.name AS ingredient, ingredients.presentation, categories.name AS category_name, COUNT(recipe_ingredients.id) AS times_used, COALESCE(SUM(recipe_ingredients.quantity), 0) AS total_quantity, COALESCE(SUM(recipe_ingredients.cost), 0) AS total_cost").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("LEFT JOIN categories ON categories.id = ingredients.category_id").
		Group("ingredients.id, ingredients.name, ingredients.presentation, categories.name").
		Order("times_used DESC, total_quantity DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) GetIngredientsByCategory(ctx context.Context) ([]domain.IngredientsByCategoryRow, error) {
	var rows []domain.IngredientsByCategoryRow
	if err := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Select("categories.name AS category, COUNT(ingredients.id) AS total_ingredients, COALESCE(AVG(ingredients.purchase_price), 0) AS avg_price, COALESCE(MIN(ingredients.purchase_price), 0) AS min_price, COALESCE(MAX(ingredients.purchase_price), 0) AS max_price").
		Joins("LEFT JOIN ingredients ON ingredients.category_id = categories.id").
		Group("categories.id, categories.name").
		Order("categories.name").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
