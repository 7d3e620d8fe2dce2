package menu

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
	"Recetario-Backend/pkg/ingredient"
	"Recetario-Backend/pkg/recipe"
)

type (
	MenuService interface {
		GetMenus(ctx context.Context) ([]domain.MenuResponse, error)
		CreateMenu(ctx context.Context, req domain.CreateMenuRequest) (domain.MenuResponse, error)
		UpdateMenu(ctx context.Context, id uint, req domain.UpdateMenuRequest) error
		DeleteMenu(ctx context.Context, id uint) error

		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id uint, req domain.UpdateCategoryRequest) error
		DeleteCategory(ctx context.Context, id uint) error
	}

	menuService struct {
		menuRepository       MenuRepository
		ingredientRepository ingredient.IngredientRepository
		recipeRepository     recipe.RecipeRepository
		s3                   storage.AwsS3
	}
)

func NewMenuService(
	menuRepository MenuRepository,
	ingredientRepository ingredient.IngredientRepository,
	recipeRepository recipe.RecipeRepository,
	s3 storage.AwsS3,
) MenuService {
	return &menuService{
		menuRepository:       menuRepository,
		ingredientRepository: ingredientRepository,
		recipeRepository:     recipeRepository,
		s3:                   s3,
	}
}

func (s *menuService) GetMenus(ctx context.Context) ([]domain.MenuResponse, error) {
	menus, err := s.menuRepository.GetMenus(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MenuResponse, 0, len(menus))
	for _, menu := range menus {
		result = append(result, domain.MenuResponse{
			ID:       menu.ID,
			Name:     menu.Name,
			ImageURL: menu.ImageURL,
		})
	}
	return result, nil
}

func (s *menuService) CreateMenu(ctx context.Context, req domain.CreateMenuRequest) (domain.MenuResponse, error) {
	menu := &entities.Menu{Name: req.Name}

	if req.Image != nil {
		key := fmt.Sprintf("menus/%s%s", uuid.New().String(), filepath.Ext(req.Image.Filename))
		url, err := s.s3.UploadFile(ctx, key, req.Image)
		if err != nil {
			return domain.MenuResponse{}, err
		}
		menu.ImageURL = url
	}

	if err := s.menuRepository.CreateMenu(ctx, menu); err != nil {
		return domain.MenuResponse{}, err
	}
	return domain.MenuResponse{ID: menu.ID, Name: menu.Name, ImageURL: menu.ImageURL}, nil
}

func (s *menuService) UpdateMenu(ctx context.Context, id uint, req domain.UpdateMenuRequest) error {
	menu, err := s.menuRepository.GetMenuByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuNotFound
		}
		return err
	}

	if req.Name != "" {
		menu.Name = req.Name
	}
	if req.Image != nil {
		key := fmt.Sprintf("menus/%s%s", uuid.New().String(), filepath.Ext(req.Image.Filename))
		url, err := s.s3.UploadFile(ctx, key, req.Image)
		if err != nil {
			return err
		}
		menu.ImageURL = url
	}

	return s.menuRepository.UpdateMenu(ctx, menu)
}

func (s *menuService) DeleteMenu(ctx context.Context, id uint) error {
	if _, err := s.menuRepository.GetMenuByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuNotFound
		}
		return err
	}

	used, err := s.recipeRepository.CountByMenu(ctx, id)
	if err != nil {
		return err
	}
	if used > 0 {
		return domain.ErrMenuInUse
	}

	return s.menuRepository.DeleteMenu(ctx, id)
}

func (s *menuService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.menuRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, domain.CategoryResponse{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
			ImageURL:    category.ImageURL,
		})
	}
	return result, nil
}

func (s *menuService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error) {
	category := &entities.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if req.Image != nil {
		key := fmt.Sprintf("categories/%s%s", uuid.New().String(), filepath.Ext(req.Image.Filename))
		url, err := s.s3.UploadFile(ctx, key, req.Image)
		if err != nil {
			return domain.CategoryResponse{}, err
		}
		category.ImageURL = url
	}

	if err := s.menuRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}
	return domain.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		ImageURL:    category.ImageURL,
	}, nil
}

func (s *menuService) UpdateCategory(ctx context.Context, id uint, req domain.UpdateCategoryRequest) error {
	category, err := s.menuRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}
	if req.Image != nil {
		key := fmt.Sprintf("categories/%s%s", uuid.New().String(), filepath.Ext(req.Image.Filename))
		url, err := s.s3.UploadFile(ctx, key, req.Image)
		if err != nil {
			return err
		}
		category.ImageURL = url
	}

	return s.menuRepository.UpdateCategory(ctx, category)
}

func (s *menuService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.menuRepository.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	used, err := s.ingredientRepository.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if used > 0 {
		return domain.ErrCategoryInUse
	}

	return s.menuRepository.DeleteCategory(ctx, id)
}
