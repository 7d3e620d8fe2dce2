package recipe

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Recetario-Backend/domain"
	"Recetario-Backend/entities"
)

type (
	// RecipeRepository owns persistence of recipes and their ingredient
	// lines. Mutations that span several rows run through Transaction,
	// which hands the callback a repository bound to the transaction.
	RecipeRepository interface {
		Transaction(ctx context.Context, fn func(tx RecipeRepository) error) error

		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipeForUpdate(ctx context.Context, id uint) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id uint) error
		UpdateImageURL(ctx context.Context, id uint, url string) error
		CountByMenu(ctx context.Context, menuID uint) (int64, error)

		GetLines(ctx context.Context, recipeID uint) ([]*entities.RecipeIngredient, error)
		GetLineByID(ctx context.Context, id uint) (*entities.RecipeIngredient, error)
		LineExists(ctx context.Context, recipeID, ingredientID uint) (bool, error)
		CreateLine(ctx context.Context, line *entities.RecipeIngredient) error
		UpdateLine(ctx context.Context, line *entities.RecipeIngredient) error
		DeleteLine(ctx context.Context, id uint) error
		DeleteLinesByRecipe(ctx context.Context, recipeID uint) error

		IngredientPricing(ctx context.Context, ingredientID uint) (domain.IngredientPricing, error)
		RecomputeTotal(ctx context.Context, recipeID uint) (decimal.Decimal, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Transaction(ctx context.Context, fn func(tx RecipeRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&recipeRepository{db: tx})
	})
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Order("name").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipeForUpdate loads the recipe row holding a row lock for the rest of
// the transaction, so overlapping mutations against the same recipe are
// serialized. The sqlite driver used in tests has no FOR UPDATE; its single
// writer lock covers the same guarantee.
func (r *recipeRepository) GetRecipeForUpdate(ctx context.Context, id uint) (*entities.Recipe, error) {
	tx := r.db.WithContext(ctx)
	if tx.Dialector.Name() == "postgres" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var recipe entities.Recipe
	if err := tx.Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.Recipe{}, id).Error
}

func (r *recipeRepository) UpdateImageURL(ctx context.Context, id uint, url string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Update("image_url", url).Error
}

func (r *recipeRepository) CountByMenu(ctx context.Context, menuID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("menu_id = ?", menuID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) GetLines(ctx context.Context, recipeID uint) ([]*entities.RecipeIngredient, error) {
	var lines []*entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id = ?", recipeID).
		Order("ingredients.name").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *recipeRepository) GetLineByID(ctx context.Context, id uint) (*entities.RecipeIngredient, error) {
	var line entities.RecipeIngredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *recipeRepository) LineExists(ctx context.Context, recipeID, ingredientID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) CreateLine(ctx context.Context, line *entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *recipeRepository) UpdateLine(ctx context.Context, line *entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Save(line).Error
}

func (r *recipeRepository) DeleteLine(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.RecipeIngredient{}, id).Error
}

func (r *recipeRepository) DeleteLinesByRecipe(ctx context.Context, recipeID uint) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&entities.RecipeIngredient{}).Error
}

// IngredientPricing reads the costing engine's view of the catalog: price,
// presentation and unit weight, nothing else.
func (r *recipeRepository) IngredientPricing(ctx context.Context, ingredientID uint) (domain.IngredientPricing, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).
		Select("purchase_price", "presentation", "unit_weight").
		Where("id = ?", ingredientID).
		First(&ingredient).Error; err != nil {
		return domain.IngredientPricing{}, err
	}
	return domain.IngredientPricing{
		PurchasePrice: ingredient.PurchasePrice,
		Presentation:  ingredient.Presentation,
		UnitWeight:    ingredient.UnitWeight,
	}, nil
}

// RecomputeTotal rewrites the recipe's denormalized total_cost as the sum of
// its persisted line costs. Idempotent: with no intervening line mutation a
// second call writes the same value.
func (r *recipeRepository) RecomputeTotal(ctx context.Context, recipeID uint) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Where("recipe_id = ?", recipeID).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&total).Error; err != nil {
		return decimal.Decimal{}, err
	}

	// Line costs carry 2 decimals; rounding squashes any float noise a
	// driver may introduce on the aggregate.
	sum := decimal.Zero.Round(2)
	if total.Valid {
		sum = total.Decimal.Round(2)
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		Update("total_cost", sum).Error; err != nil {
		return decimal.Decimal{}, err
	}
	return sum, nil
}
