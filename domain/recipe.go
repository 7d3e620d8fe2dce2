package domain

import (
	"errors"
	"mime/multipart"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetRecipes      = "recipes retrieved successfully"
	MessageSuccessGetRecipeDetail = "recipe detail retrieved successfully"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessAddLine         = "ingredient added to recipe"
	MessageSuccessUpdateLine      = "recipe ingredient updated"
	MessageSuccessRemoveLine      = "ingredient removed from recipe"
	MessageSuccessReplaceLines    = "recipe ingredients saved"
	MessageSuccessRefreshCosts    = "recipe costs refreshed"

	MessageFailedGetRecipes      = "failed to retrieve recipes"
	MessageFailedGetRecipeDetail = "failed to retrieve recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedAddLine         = "failed to add ingredient to recipe"
	MessageFailedUpdateLine      = "failed to update recipe ingredient"
	MessageFailedRemoveLine      = "failed to remove ingredient from recipe"
	MessageFailedReplaceLines    = "failed to save recipe ingredients"
	MessageFailedRefreshCosts    = "failed to refresh recipe costs"

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrLineNotFound    = errors.New("recipe ingredient not found")
	ErrDuplicateLine   = errors.New("ingredient already added to this recipe")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidWastePct = errors.New("waste percentage cannot be negative")
	ErrInvalidPortions = errors.New("portions must be at least 1")
)

type (
	CreateRecipeRequest struct {
		Name            string                `json:"name" form:"name" validate:"required"`
		Description     string                `json:"description" form:"description" validate:"omitempty"`
		SalePrice       decimal.Decimal       `json:"sale_price" form:"sale_price" validate:"required"`
		Instructions    string                `json:"instructions" form:"instructions" validate:"omitempty"`
		PrepTimeMinutes int                   `json:"prep_time_minutes" form:"prep_time_minutes" validate:"omitempty,min=0"`
		Portions        int                   `json:"portions" form:"portions" validate:"required,min=1"`
		MenuID          *uint                 `json:"menu_id" form:"menu_id" validate:"omitempty"`
		Image           *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
	}

	UpdateRecipeRequest struct {
		Name            string                `json:"name" form:"name" validate:"omitempty"`
		Description     *string               `json:"description" form:"description" validate:"omitempty"`
		SalePrice       *decimal.Decimal      `json:"sale_price" form:"sale_price" validate:"omitempty"`
		Instructions    *string               `json:"instructions" form:"instructions" validate:"omitempty"`
		PrepTimeMinutes *int                  `json:"prep_time_minutes" form:"prep_time_minutes" validate:"omitempty,min=0"`
		Portions        *int                  `json:"portions" form:"portions" validate:"omitempty,min=1"`
		MenuID          *uint                 `json:"menu_id" form:"menu_id" validate:"omitempty"`
		Image           *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
	}

	RecipeResponse struct {
		ID              uint            `json:"id"`
		Name            string          `json:"name"`
		Description     string          `json:"description,omitempty"`
		ImageURL        string          `json:"image_url,omitempty"`
		SalePrice       decimal.Decimal `json:"sale_price"`
		PrepTimeMinutes int             `json:"prep_time_minutes"`
		Portions        int             `json:"portions"`
		MenuID          *uint           `json:"menu_id,omitempty"`
		TotalCost       decimal.Decimal `json:"total_cost"`
	}

	RecipeLineResponse struct {
		ID             uint            `json:"id"`
		IngredientID   uint            `json:"ingredient_id"`
		IngredientName string          `json:"ingredient_name"`
		Presentation   string          `json:"presentation"`
		PurchasePrice  decimal.Decimal `json:"purchase_price"`
		Quantity       decimal.Decimal `json:"quantity"`
		WastePct       decimal.Decimal `json:"waste_pct"`
		Cost           decimal.Decimal `json:"cost"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Lines []RecipeLineResponse `json:"lines"`
	}

	AddLineRequest struct {
		IngredientID uint            `json:"ingredient_id" validate:"required"`
		Quantity     decimal.Decimal `json:"quantity" validate:"required"`
		WastePct     decimal.Decimal `json:"waste_pct"`
	}

	UpdateLineRequest struct {
		Quantity decimal.Decimal `json:"quantity" validate:"required"`
		WastePct decimal.Decimal `json:"waste_pct"`
	}

	AddLineResponse struct {
		ID        uint            `json:"id"`
		Cost      decimal.Decimal `json:"cost"`
		TotalCost decimal.Decimal `json:"total_cost"`
	}

	ReplaceLinesRequest struct {
		Lines []AddLineRequest `json:"lines" validate:"required,dive"`
	}

	UploadRecipeImageRequest struct {
		RecipeID uint                  `json:"recipe_id" form:"recipe_id" validate:"required"`
		Image    *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
