package recipe

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Recetario-Backend/domain"
	"Recetario-Backend/entities"
	"Recetario-Backend/internal/utils/storage"
	"Recetario-Backend/pkg/costing"
)

type (
	// RecipeService coordinates recipe and ingredient-line mutations. Every
	// mutation that touches line costs runs in one transaction that locks
	// the recipe row, writes the lines, and resynchronizes total_cost
	// before committing; on any failure nothing is persisted.
	RecipeService interface {
		GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, id uint) (domain.RecipeDetailResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) error
		DeleteRecipe(ctx context.Context, id uint) error
		UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest) (string, error)

		AddIngredientLine(ctx context.Context, recipeID uint, req domain.AddLineRequest) (domain.AddLineResponse, error)
		UpdateIngredientLine(ctx context.Context, lineID uint, req domain.UpdateLineRequest) error
		RemoveIngredientLine(ctx context.Context, lineID uint) error
		ReplaceAllLines(ctx context.Context, recipeID uint, req domain.ReplaceLinesRequest) error
		RefreshRecipeCosts(ctx context.Context, recipeID uint) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

// storeErr lets validation and not-found errors through untouched and maps
// anything else (deadlock, lost connection, failed recompute) to
// ErrTransactionFailure: the transaction rolled back, the caller may retry.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		domain.ErrRecipeNotFound,
		domain.ErrIngredientNotFound,
		domain.ErrLineNotFound,
		domain.ErrDuplicateLine,
		domain.ErrInvalidQuantity,
		domain.ErrInvalidWastePct,
		domain.ErrInvalidIngredientData,
		domain.ErrInvalidPortions,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrTransactionFailure, err)
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:              recipe.ID,
		Name:            recipe.Name,
		Description:     recipe.Description,
		ImageURL:        recipe.ImageURL,
		SalePrice:       recipe.SalePrice,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		Portions:        recipe.Portions,
		MenuID:          recipe.MenuID,
		TotalCost:       recipe.TotalCost,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, toRecipeResponse(recipe))
	}
	return result, nil
}

// GetRecipeDetail returns the recipe with its lines joined to current
// ingredient data. Viewing never rewrites line costs; stale lines stay stale
// until an update or an explicit refresh.
func (s *recipeService) GetRecipeDetail(ctx context.Context, id uint) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	lines, err := s.recipeRepository.GetLines(ctx, id)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	detail := domain.RecipeDetailResponse{
		RecipeResponse: toRecipeResponse(recipe),
		Lines:          make([]domain.RecipeLineResponse, 0, len(lines)),
	}
	for _, line := range lines {
		res := domain.RecipeLineResponse{
			ID:           line.ID,
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			WastePct:     line.WastePct,
			Cost:         line.Cost,
		}
		if line.Ingredient != nil {
			res.IngredientName = line.Ingredient.Name
			res.Presentation = line.Ingredient.Presentation
			res.PurchasePrice = line.Ingredient.PurchasePrice
		}
		detail.Lines = append(detail.Lines, res)
	}
	return detail, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	if req.Portions < 1 {
		return domain.RecipeResponse{}, domain.ErrInvalidPortions
	}

	recipe := &entities.Recipe{
		Name:            req.Name,
		Description:     req.Description,
		SalePrice:       req.SalePrice,
		Instructions:    req.Instructions,
		PrepTimeMinutes: req.PrepTimeMinutes,
		Portions:        req.Portions,
		MenuID:          req.MenuID,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if req.Name != "" {
		recipe.Name = req.Name
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.SalePrice != nil {
		recipe.SalePrice = *req.SalePrice
	}
	if req.Instructions != nil {
		recipe.Instructions = *req.Instructions
	}
	if req.PrepTimeMinutes != nil {
		recipe.PrepTimeMinutes = *req.PrepTimeMinutes
	}
	if req.Portions != nil {
		if *req.Portions < 1 {
			return domain.ErrInvalidPortions
		}
		recipe.Portions = *req.Portions
	}
	if req.MenuID != nil {
		recipe.MenuID = req.MenuID
	}

	return s.recipeRepository.UpdateRecipe(ctx, recipe)
}

// DeleteRecipe removes the recipe and all its lines in one transaction.
func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	err := s.recipeRepository.Transaction(ctx, func(tx RecipeRepository) error {
		if _, err := tx.GetRecipeForUpdate(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecipeNotFound
			}
			return err
		}
		if err := tx.DeleteLinesByRecipe(ctx, id); err != nil {
			return err
		}
		return tx.DeleteRecipe(ctx, id)
	})
	return storeErr(err)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest) (string, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRecipeNotFound
		}
		return "", err
	}

	key := fmt.Sprintf("recipes/%s%s", uuid.New().String(), filepath.Ext(req.Image.Filename))
	url, err := s.s3.UploadFile(ctx, key, req.Image)
	if err != nil {
		return "", err
	}

	if err := s.recipeRepository.UpdateImageURL(ctx, req.RecipeID, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *recipeService) AddIngredientLine(ctx context.Context, recipeID uint, req domain.AddLineRequest) (domain.AddLineResponse, error) {
	var res domain.AddLineResponse

	err := s.recipeRepository.Transaction(ctx, func(tx RecipeRepository) error {
		if _, err := tx.GetRecipeForUpdate(ctx, recipeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecipeNotFound
			}
			return err
		}

		pricing, err := tx.IngredientPricing(ctx, req.IngredientID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrIngredientNotFound
			}
			return err
		}

		exists, err := tx.LineExists(ctx, recipeID, req.IngredientID)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicateLine
		}

		cost, err := costing.ComputeLineCost(pricing, req.Quantity, req.WastePct)
		if err != nil {
			return err
		}

		line := &entities.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: req.IngredientID,
			Quantity:     req.Quantity,
			WastePct:     req.WastePct,
			Cost:         cost,
		}
		if err := tx.CreateLine(ctx, line); err != nil {
			return err
		}

		total, err := tx.RecomputeTotal(ctx, recipeID)
		if err != nil {
			return err
		}

		res = domain.AddLineResponse{ID: line.ID, Cost: cost, TotalCost: total}
		return nil
	})
	if err != nil {
		return domain.AddLineResponse{}, storeErr(err)
	}
	return res, nil
}

// UpdateIngredientLine recomputes the line cost from the ingredient's
// current price: this is the point where catalog price changes reach a line.
func (s *recipeService) UpdateIngredientLine(ctx context.Context, lineID uint, req domain.UpdateLineRequest) error {
	err := s.recipeRepository.Transaction(ctx, func(tx RecipeRepository) error {
		line, err := tx.GetLineByID(ctx, lineID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrLineNotFound
			}
			return err
		}

		if _, err := tx.GetRecipeForUpdate(ctx, line.RecipeID); err != nil {
			return err
		}

		pricing, err := tx.IngredientPricing(ctx, line.IngredientID)
		if err != nil {
			return err
		}

		cost, err := costing.ComputeLineCost(pricing, req.Quantity, req.WastePct)
		if err != nil {
			return err
		}

		line.Quantity = req.Quantity
		line.WastePct = req.WastePct
		line.Cost = cost
		if err := tx.UpdateLine(ctx, line); err != nil {
			return err
		}

		_, err = tx.RecomputeTotal(ctx, line.RecipeID)
		return err
	})
	return storeErr(err)
}

func (s *recipeService) RemoveIngredientLine(ctx context.Context, lineID uint) error {
	err := s.recipeRepository.Transaction(ctx, func(tx RecipeRepository) error {
		line, err := tx.GetLineByID(ctx, lineID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrLineNotFound
			}
			return err
		}

		if _, err := tx.GetRecipeForUpdate(ctx, line.RecipeID); err != nil {
			return err
		}

		if err := tx.DeleteLine(ctx, lineID); err != nil {
			return err
		}

		_, err = tx.RecomputeTotal(ctx, line.RecipeID)
		return err
	})
	return storeErr(err)
}

// ReplaceAllLines is the bulk "save recipe" edit: all existing lines are
// dropped and the supplied set inserted with the same per-line validation as
// AddIngredientLine. Any bad line rolls back the whole batch, leaving the
// prior lines and total untouched.
func (s *recipeService) ReplaceAllLines(ctx context.Context, recipeID uint, req domain.ReplaceLinesRequest) error {
	err := s.recipeRepository.Transaction(ctx, func(tx RecipeRepository) error {
		if _, err := tx.GetRecipeForUpdate(ctx, recipeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecipeNotFound
			}
			return err
		}

		if err := tx.DeleteLinesByRecipe(ctx, recipeID); err != nil {
			return err
		}

		seen := make(map[uint]bool, len(req.Lines))
		for _, lineReq := range req.Lines {
			if seen[lineReq.IngredientID] {
				return domain.ErrDuplicateLine
			}
			seen[lineReq.IngredientID] = true

			pricing, err := tx.IngredientPricing(ctx, lineReq.IngredientID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrIngredientNotFound
				}
				return err
			}

			cost, err := costing.ComputeLineCost(pricing, lineReq.Quantity, lineReq.WastePct)
			if err != nil {
				return err
			}

			line := &entities.RecipeIngredient{
				RecipeID:     recipeID,
				IngredientID: lineReq.IngredientID,
				Quantity:     lineReq.Quantity,
				WastePct:     lineReq.WastePct,
				Cost:         cost,
			}
			if err := tx.CreateLine(ctx, line); err != nil {
				return err
			}
		}

		_, err := tx.RecomputeTotal(ctx, recipeID)
		return err
	})
	return storeErr(err)
}

// RefreshRecipeCosts reprices every line of the recipe at current catalog
// prices and resynchronizes the total. This replaces the old behavior of
// silently repricing on every view.
func (s *recipeService) RefreshRecipeCosts(ctx context.Context, recipeID uint) error {
	err := s.recipeRepository.Transaction(ctx, func(tx RecipeRepository) error {
		if _, err := tx.GetRecipeForUpdate(ctx, recipeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecipeNotFound
			}
			return err
		}

		lines, err := tx.GetLines(ctx, recipeID)
		if err != nil {
			return err
		}

		for _, line := range lines {
			pricing, err := tx.IngredientPricing(ctx, line.IngredientID)
			if err != nil {
				return err
			}
			cost, err := costing.ComputeLineCost(pricing, line.Quantity, line.WastePct)
			if err != nil {
				return err
			}
			line.Cost = cost
			line.Ingredient = nil
			if err := tx.UpdateLine(ctx, line); err != nil {
				return err
			}
		}

		_, err = tx.RecomputeTotal(ctx, recipeID)
		return err
	})
	return storeErr(err)
}
