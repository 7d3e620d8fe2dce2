package ingredient

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"Recetario-Backend/domain"
	"Recetario-Backend/entities"
	"Recetario-Backend/internal/utils/storage"
)

type (
	IngredientService interface {
		GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error)
		GetIngredientByID(ctx context.Context, id uint) (domain.IngredientResponse, error)
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id uint, req domain.UpdateIngredientRequest) error
		DeleteIngredient(ctx context.Context, id uint) error
		UploadIngredientImage(ctx context.Context, req domain.UploadIngredientImageRequest) (string, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		s3                   storage.AwsS3
	}
)

func NewIngredientService(ingredientRepository IngredientRepository, s3 storage.AwsS3) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		s3:                   s3,
	}
}

func validPresentation(presentation string) bool {
	for _, p := range entities.Presentations() {
		if p == presentation {
			return true
		}
	}
	return false
}

// validateUnitWeight rejects unit-priced ingredients without a positive unit
// weight up front, so the costing engine never has to guess at one.
func validateUnitWeight(presentation string, unitWeight decimal.NullDecimal) error {
	if !validPresentation(presentation) {
		return domain.ErrInvalidPresentation
	}
	if presentation != entities.PresentationUnit {
		return nil
	}
	if !unitWeight.Valid || unitWeight.Decimal.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidIngredientData
	}
	return nil
}

func toIngredientResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	res := domain.IngredientResponse{
		ID:            ingredient.ID,
		Name:          ingredient.Name,
		CategoryID:    ingredient.CategoryID,
		Presentation:  ingredient.Presentation,
		PurchasePrice: ingredient.PurchasePrice,
		UnitWeight:    ingredient.UnitWeight,
		Description:   ingredient.Description,
		ImageURL:      ingredient.ImageURL,
	}
	if ingredient.Category != nil {
		res.CategoryName = ingredient.Category.Name
	}
	return res
}

func (s *ingredientService) GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		result = append(result, toIngredientResponse(ingredient))
	}
	return result, nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id uint) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error) {
	if err := validateUnitWeight(req.Presentation, req.UnitWeight); err != nil {
		return domain.IngredientResponse{}, err
	}

	ingredient := &entities.Ingredient{
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		Presentation:  req.Presentation,
		PurchasePrice: req.PurchasePrice,
		UnitWeight:    req.UnitWeight,
		Description:   req.Description,
	}

	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id uint, req domain.UpdateIngredientRequest) error {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	if req.Name != "" {
		ingredient.Name = req.Name
	}
	if req.CategoryID != nil {
		ingredient.CategoryID = req.CategoryID
	}
	if req.Presentation != "" {
		ingredient.Presentation = req.Presentation
	}
	if req.PurchasePrice != nil {
		ingredient.PurchasePrice = *req.PurchasePrice
	}
	if req.UnitWeight.Valid {
		ingredient.UnitWeight = req.UnitWeight
	}
	if req.Description != nil {
		ingredient.Description = *req.Description
	}

	if err := validateUnitWeight(ingredient.Presentation, ingredient.UnitWeight); err != nil {
		return err
	}

	// Price and presentation edits do not touch existing line costs here:
	// lines pick up the new price on their next recompute.
	ingredient.Category = nil
	return s.ingredientRepository.UpdateIngredient(ctx, ingredient)
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id uint) error {
	if _, err := s.ingredientRepository.GetIngredientByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	used, err := s.ingredientRepository.CountRecipeLines(ctx, id)
	if err != nil {
		return err
	}
	if used > 0 {
		return domain.ErrIngredientInUse
	}

	return s.ingredientRepository.DeleteIngredient(ctx, id)
}

func (s *ingredientService) UploadIngredientImage(ctx context.Context, req domain.UploadIngredientImageRequest) (string, error) {
	if _, err := s.ingredientRepository.GetIngredientByID(ctx, req.IngredientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrIngredientNotFound
		}
		return "", err
	}

	key := fmt.Sprintf("ingredients/%s%s", uuid.New().String(), filepath.Ext(req.Image.Filename))
	url, err := s.s3.UploadFile(ctx, key, req.Image)
	if err != nil {
		return "", err
	}

	if err := s.ingredientRepository.UpdateImageURL(ctx, req.IngredientID, url); err != nil {
		return "", err
	}
	return url, nil
}
