package routes

import (
	"github.com/gofiber/fiber/v2"

	"Recetario-Backend/internal/api/handlers"
	"Recetario-Backend/internal/middleware"
	"Recetario-Backend/pkg/jwt"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	MenuHandler       handlers.MenuHandler
	IngredientHandler handlers.IngredientHandler
	RecipeHandler     handlers.RecipeHandler
	ReportHandler     handlers.ReportHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Menus()
	c.Ingredients()
	c.Recipes()
	c.Reports()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Menus() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	menus := c.App.Group("/api/v1/menus", auth)
	menus.Get("", c.MenuHandler.GetMenus)
	menus.Post("", c.Middleware.AdminOnly(), c.MenuHandler.CreateMenu)
	menus.Put("/:id", c.Middleware.AdminOnly(), c.MenuHandler.UpdateMenu)
	menus.Delete("/:id", c.Middleware.AdminOnly(), c.MenuHandler.DeleteMenu)

	categories := c.App.Group("/api/v1/categories", auth)
	categories.Get("", c.MenuHandler.GetCategories)
	categories.Post("", c.Middleware.AdminOnly(), c.MenuHandler.CreateCategory)
	categories.Put("/:id", c.Middleware.AdminOnly(), c.MenuHandler.UpdateCategory)
	categories.Delete("/:id", c.Middleware.AdminOnly(), c.MenuHandler.DeleteCategory)
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients", c.Middleware.AuthMiddleware(c.JWTService))
	ingredients.Get("", c.IngredientHandler.GetIngredients)
	ingredients.Get("/:id", c.IngredientHandler.GetIngredientDetail)
	ingredients.Post("", c.IngredientHandler.CreateIngredient)
	ingredients.Put("/:id", c.IngredientHandler.UpdateIngredient)
	ingredients.Delete("/:id", c.Middleware.AdminOnly(), c.IngredientHandler.DeleteIngredient)
	ingredients.Post("/image", c.IngredientHandler.UploadIngredientImage)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.Middleware.AdminOnly(), c.RecipeHandler.DeleteRecipe)
	recipes.Post("/image", c.RecipeHandler.UploadRecipeImage)

	// ingredient line operations
	recipes.Post("/:id/ingredients", c.RecipeHandler.AddIngredientLine)
	recipes.Put("/:id/ingredients", c.RecipeHandler.ReplaceAllLines)
	recipes.Put("/ingredients/:line_id", c.RecipeHandler.UpdateIngredientLine)
	recipes.Delete("/ingredients/:line_id", c.RecipeHandler.RemoveIngredientLine)
	recipes.Post("/:id/refresh-costs", c.RecipeHandler.RefreshRecipeCosts)
}

func (c *Config) Reports() {
	reports := c.App.Group("/api/v1/reports", c.Middleware.AuthMiddleware(c.JWTService))
	reports.Get("/profitability", c.ReportHandler.GetProfitability)
	reports.Get("/recipes-by-menu", c.ReportHandler.GetRecipesByMenu)
	reports.Get("/most-used-ingredients", c.ReportHandler.GetMostUsedIngredients)
	reports.Get("/ingredients-by-category", c.ReportHandler.GetIngredientsByCategory)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
