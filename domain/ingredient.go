package domain

import (
	"errors"
	"mime/multipart"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetIngredients   = "ingredients retrieved successfully"
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"
	MessageSuccessUploadImage      = "image uploaded successfully"

	MessageFailedGetIngredients   = "failed to retrieve ingredients"
	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"
	MessageFailedUploadImage      = "failed to upload image"

	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrIngredientInUse    = errors.New("ingredient is used by recipes")
	// ErrInvalidIngredientData marks a unit-priced ingredient whose unit
	// weight is missing or not positive; costs cannot be derived from it.
	ErrInvalidIngredientData = errors.New("unit-priced ingredient requires a positive unit weight")
	ErrInvalidPresentation   = errors.New("unknown presentation")
)

type (
	CreateIngredientRequest struct {
		Name          string              `json:"name" form:"name" validate:"required"`
		CategoryID    *uint               `json:"category_id" form:"category_id" validate:"omitempty"`
		Presentation  string              `json:"presentation" form:"presentation" validate:"required,oneof=Pound Unit Gram Ounce Kilogram Liter Milliliter Tablespoon"`
		PurchasePrice decimal.Decimal     `json:"purchase_price" form:"purchase_price" validate:"required"`
		UnitWeight    decimal.NullDecimal `json:"unit_weight" form:"unit_weight"`
		Description   string              `json:"description" form:"description" validate:"omitempty"`
	}

	UpdateIngredientRequest struct {
		Name          string              `json:"name" form:"name" validate:"omitempty"`
		CategoryID    *uint               `json:"category_id" form:"category_id" validate:"omitempty"`
		Presentation  string              `json:"presentation" form:"presentation" validate:"omitempty,oneof=Pound Unit Gram Ounce Kilogram Liter Milliliter Tablespoon"`
		PurchasePrice *decimal.Decimal    `json:"purchase_price" form:"purchase_price" validate:"omitempty"`
		UnitWeight    decimal.NullDecimal `json:"unit_weight" form:"unit_weight"`
		Description   *string             `json:"description" form:"description" validate:"omitempty"`
	}

	IngredientResponse struct {
		ID            uint                `json:"id"`
		Name          string              `json:"name"`
		CategoryID    *uint               `json:"category_id,omitempty"`
		CategoryName  string              `json:"category_name,omitempty"`
		Presentation  string              `json:"presentation"`
		PurchasePrice decimal.Decimal     `json:"purchase_price"`
		UnitWeight    decimal.NullDecimal `json:"unit_weight"`
		Description   string              `json:"description,omitempty"`
		ImageURL      string              `json:"image_url,omitempty"`
	}

	UploadIngredientImageRequest struct {
		IngredientID uint                  `json:"ingredient_id" form:"ingredient_id" validate:"required"`
		Image        *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	// IngredientPricing is the snapshot the costing engine reads from the
	// catalog: everything needed to price one line, nothing else.
	IngredientPricing struct {
		PurchasePrice decimal.Decimal
		Presentation  string
		UnitWeight    decimal.NullDecimal
	}
)
