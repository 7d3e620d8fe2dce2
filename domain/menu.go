package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessGetMenus       = "menus retrieved successfully"
	MessageSuccessCreateMenu     = "menu created successfully"
	MessageSuccessUpdateMenu     = "menu updated successfully"
	MessageSuccessDeleteMenu     = "menu deleted successfully"
	MessageSuccessGetCategories  = "categories retrieved successfully"
	MessageSuccessCreateCategory = "category created successfully"
	MessageSuccessUpdateCategory = "category updated successfully"
	MessageSuccessDeleteCategory = "category deleted successfully"

	MessageFailedGetMenus       = "failed to retrieve menus"
	MessageFailedCreateMenu     = "failed to create menu"
	MessageFailedUpdateMenu     = "failed to update menu"
	MessageFailedDeleteMenu     = "failed to delete menu"
	MessageFailedGetCategories  = "failed to retrieve categories"
	MessageFailedCreateCategory = "failed to create category"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"

	ErrMenuNotFound     = errors.New("menu not found")
	ErrMenuInUse        = errors.New("menu is referenced by recipes")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category is referenced by ingredients")
)

type (
	CreateMenuRequest struct {
		Name  string                `json:"name" form:"name" validate:"required"`
		Image *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
	}

	UpdateMenuRequest struct {
		Name  string                `json:"name" form:"name" validate:"omitempty"`
		Image *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
	}

	MenuResponse struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		ImageURL string `json:"image_url,omitempty"`
	}

	CreateCategoryRequest struct {
		Name        string                `json:"name" form:"name" validate:"required"`
		Description string                `json:"description" form:"description" validate:"omitempty"`
		Image       *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
	}

	UpdateCategoryRequest struct {
		Name        string                `json:"name" form:"name" validate:"omitempty"`
		Description string                `json:"description" form:"description" validate:"omitempty"`
		Image       *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
	}

	CategoryResponse struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		ImageURL    string `json:"image_url,omitempty"`
	}
)
