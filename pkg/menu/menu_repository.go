package menu

import (
	"context"

	"gorm.io/gorm"

	"Recetario-Backend/entities"
)

type (
	MenuRepository interface {
		CreateMenu(ctx context.Context, menu *entities.Menu) error
		GetMenus(ctx context.Context) ([]*entities.Menu, error)
		GetMenuByID(ctx context.Context, id uint) (*entities.Menu, error)
		UpdateMenu(ctx context.Context, menu *entities.Menu) error
		DeleteMenu(ctx context.Context, id uint) error

		CreateCategory(ctx context.Context, category *entities.Category) error
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetCategoryByID(ctx context.Context, id uint) (*entities.Category, error)
		UpdateCategory(ctx context.Context, category *entities.Category) error
		DeleteCategory(ctx context.Context, id uint) error
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) CreateMenu(ctx context.Context, menu *entities.Menu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

func (r *menuRepository) GetMenus(ctx context.Context) ([]*entities.Menu, error) {
	var menus []*entities.Menu
	if err := r.db.WithContext(ctx).Order("name").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *menuRepository) GetMenuByID(ctx context.Context, id uint) (*entities.Menu, error) {
	var menu entities.Menu
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&menu).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) UpdateMenu(ctx context.Context, menu *entities.Menu) error {
	return r.db.WithContext(ctx).Save(menu).Error
}

func (r *menuRepository) DeleteMenu(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.Menu{}, id).Error
}

func (r *menuRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *menuRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *menuRepository) GetCategoryByID(ctx context.Context, id uint) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *menuRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *menuRepository) DeleteCategory(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.Category{}, id).Error
}
