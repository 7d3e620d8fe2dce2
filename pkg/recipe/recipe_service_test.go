package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"Recetario-Backend/domain"
	"Recetario-Backend/entities"
)

func withRecipeTestDatabase(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := db.AutoMigrate(
		&entities.Menu{},
		&entities.Category{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return db, cleanup
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func seedIngredient(t *testing.T, db *gorm.DB, name, presentation, price string, unitWeight string) *entities.Ingredient {
	t.Helper()
	ing := &entities.Ingredient{
		Name:          name,
		Presentation:  presentation,
		PurchasePrice: mustDecimal(t, price),
	}
	if unitWeight != "" {
		ing.UnitWeight = decimal.NewNullDecimal(mustDecimal(t, unitWeight))
	}
	if err := db.Create(ing).Error; err != nil {
		t.Fatalf("failed to seed ingredient: %v", err)
	}
	return ing
}

func seedRecipe(t *testing.T, db *gorm.DB, name, salePrice string) *entities.Recipe {
	t.Helper()
	r := &entities.Recipe{
		Name:      name,
		SalePrice: mustDecimal(t, salePrice),
		Portions:  4,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("failed to seed recipe: %v", err)
	}
	return r
}

func recipeTotal(t *testing.T, db *gorm.DB, id uint) decimal.Decimal {
	t.Helper()
	var r entities.Recipe
	if err := db.First(&r, id).Error; err != nil {
		t.Fatalf("failed to reload recipe: %v", err)
	}
	return r.TotalCost
}

func lineCount(t *testing.T, db *gorm.DB, recipeID uint) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&entities.RecipeIngredient{}).Where("recipe_id = ?", recipeID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count lines: %v", err)
	}
	return count
}

func TestAddIngredientLineKeepsTotalInSync(t *testing.T) {
	db, cleanup := withRecipeTestDatabase(t)
	t.Cleanup(cleanup)
	svc := NewRecipeService(NewRecipeRepository(db), nil)
	ctx := context.Background()

	r := seedRecipe(t, db, "Tacos", "20.00")
	flour := seedIngredient(t, db, "Flour", entities.PresentationPound, "3.00", "")
	cheese := seedIngredient(t, db, "Cheese", entities.PresentationPound, "4.00", "")

	res, err := svc.AddIngredientLine(ctx, r.ID, domain.AddLineRequest{
		IngredientID: flour.ID,
		Quantity:     decimal.NewFromInt(2),
	})
	if err != nil {
		t.Fatalf("add line: %v", err)
	}
	if !res.Cost.Equal(mustDecimal(t, "6.00")) {
		t.Fatalf("expected line cost 6.00, got %s", res.Cost)
	}
	if !res.TotalCost.Equal(mustDecimal(t, "6.00")) {
		t.Fatalf("expected total 6.00, got %s", res.TotalCost)
	}

	res, err = svc.AddIngredientLine(ctx, r.ID, domain.AddLineRequest{
		IngredientID: cheese.ID,
		Quantity:     decimal.NewFromInt(1),
		WastePct:     decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("add line with waste: %v", err)
	}
	if !res.Cost.Equal(mustDecimal(t, "6.00")) {
		t.Fatalf("expected waste-adjusted cost 6.00, got %s", res.Cost)
	}
	if !res.TotalCost.Equal(mustDecimal(t, "12.00")) {
		t.Fatalf("expected total 12.00, got %s", res.TotalCost)
	}

	if got := recipeTotal(t, db, r.ID); !got.Equal(mustDecimal(t, "12.00")) {
		t.Fatalf("persisted total = %s, want 12.00", got)
	}
}

func TestAddIngredientLineUnitPresentation(t *testing.T) {
	db, cleanup := withRecipeTestDatabase(t)
	t.Cleanup(cleanup)
	svc := NewRecipeService(NewRecipeRepository(db), nil)
	ctx := context.Background()

	r := seedRecipe(t, db, "Burgers", "15.00")
	avocado := seedIngredient(t, db, "Avocado", entities.PresentationUnit, "10.00", "2")

	res, err := svc.AddIngredientLine(ctx, r.ID, domain.AddLineRequest{
		IngredientID: avocado.ID,
		Quantity:     decimal.NewFromInt(1),
	})
	if err != nil {
		t.Fatalf("add unit line: %v", err)
	}
	if !res.Cost.Equal(mustDecimal(t, "5.00")) {
		t.Fatalf("expected per-piece cost 5.00, got %s", res.Cost)
	}
}

func TestAddIngredientLineRejectsUnitWithoutWeight(t *testing.T) {
	db, cleanup := withRecipeTestDatabase(t)
	t.Cleanup(cleanup)
	svc := NewRecipeService(NewRecipeRepository(db), nil)
	ctx := context.Background()

	r := seedRecipe(t, db, "Salad", "9.00")
	egg := seedIngredient(t, db, "Egg", entities.PresentationUnit, "5.00", "")

	_, err := svc.AddIngredientLine(ctx, r.ID, domain.AddLineRequest{
		IngredientID: egg.ID,
		Quantity:     decimal.NewFromInt(3),
	})
	if !errors.Is(err, domain.ErrInvalidIngredientData) {
		t.Fatalf("expected ErrInvalidIngredientData, got %v", err)
	}
	if got := lineCount(t, db, r.ID); got != 0 {
		t.Fatalf("expected no lines persisted, got %d", got)
	}
	if got := recipeTotal(t, db, r.ID); !got.IsZero() {
		t.Fatalf("expected total untouched at 0, got %s", got)
	}
}

func TestAddIngredientLineDuplicate(t *testing.T) {
	db, cleanup := withRecipeTestDatabase(t)
	t.Cleanup(cleanup)
	svc := NewRecipeService(NewRecipeRepository(db), nil)
	ctx := context.Background()

	r := seedRecipe(t, db, "Pizza", "18.00")
	flour := seedIngredient(t, db, "Flour", entities.PresentationPound, "3.00", "")

	if _, err := svc.AddIngredientLine(ctx, r.ID, domain.AddLineRequest{
		IngredientID: flour.ID,
		Quantity:     decimal.NewFromInt(2),
	}); err != nil {
		t.Fatalf("first add: %v", err)
	}

	_, err := svc.AddIngredientLine(ctx, r.ID, domain.AddLineRequest{
		IngredientID: flour.ID,
		Quantity:     decimal.NewFromInt(1),
	})
	if !errors.Is(err, domain.ErrDuplicateLine) {
		t.Fatalf("expected ErrDuplicateLine, got %v", err)
	}
	if got := lineCount(t, db, r.ID); got != 1 {
		t.Fatalf("expected 1 line after rejected duplicate, got %d", got)
	}
	if got := recipeTotal(t, db, r.ID); !got.Equal(mustDecimal(t, "6.00")) {
		t.Fatalf("expected total 6.00 after rejected duplicate, got %s", got)
	}
}

func TestAddIngredientLineMissingRecords(t *testing.T) {
	db, cleanup := withRecipeTestDatabase(t)
	t.Cleanup(cleanup)
	svc := NewRecipeService(NewRecipeRepository(db), nil)
	ctx := context.Background()

	r := seedRecipe(t, db, "Soup", "8.00")

	_, err := svc.AddIngredientLine(ctx, 999, domain.AddLineRequest{IngredientID: 1, Quantity: decimal.NewFromInt(1)})
	if !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}

	_, err = svc.AddIngredientLine(ctx, r.ID, domain.AddLineRequest{IngredientID: 999, Quantity: decimal.NewFromInt(1)})
	if !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Fatalf("expected ErrIngredientNotFound, got %v", err)
	}
}

func TestUpdateIngredientLineRepricesAtCurrentPrice(t *testing.T) {
	db, cleanup := withRecipeTestDatabase(t)
	t.Cleanup(cleanup)
	svc := NewRecipeService(NewRecipeRepository(db), nil)
	ctx := context.Background()

	r := seedRecipe(t, db, "Pasta", "14.00")
	tomato := seedIngredient(t, db, "Tomato", entities.PresentationPound, "2.00", "")

	res, err := svc.AddIngredientLine(ctx, r.ID, domain.AddLineRequest{
		IngredientID: tomato.ID,
		Quantity:     decimal.NewFromInt(2),
	})
	if err != nil {
		t.Fatalf("add line: %v", err)
	}

	// Catalog price change reaches the line on its next update.
	if err := db.Model(&entities.Ingredient{}).Where("id = ?", tomato.ID).
		Update("purchase_price", mustDecimal(t, "3.00")).Error; err != nil {
		t.Fatalf("failed to change price: %v", err)
	}

	if err := svc.UpdateIngredientLine(ctx, res.ID, domain.UpdateLineRequest{
		Quantity: decimal.NewFromInt(2),
	}); err != nil {
		t.Fatalf("update line: %v", err)
	}

	var line entities.RecipeIngredient
	if err := db.First(&line, res.ID).Error; err != nil {
		t.Fatalf("reload line: %v", err)
	}
	if !line.Cost.Equal(mustDecimal(t, "6.00")) {
		t.Fatalf("expected repriced cost 6.00, got %s", line.Cost)
	}
	if got := recipeTotal(t, db, r.ID); !got.Equal(mustDecimal(t, "6.00")) {
		t.Fatalf("expected total 6.00, got %s", got)
	}
}

func TestUpdateIngredientLineInvalidQuantityLeavesStateIntact(t *testing.T) {
	db, cleanup := withRecipeTestDatabase(t)
	t.Cleanup(cleanup)
	svc := NewRecipeService(NewRecipeRepository(db), nil)
	ctx := context.Background()

	r := seedRecipe(t, db, "Rice", "10.00")
	rice := seedIngredient(t, db, "Rice", entities.PresentationPound, "2.50", "")

	res, err := svc.AddIngredientLine(ctx, r.ID, domain.AddLineRequest{
		IngredientID: rice.ID,
		Quantity:     decimal.NewFromInt(2),
	})
	if err != nil {
		t.Fatalf("add line: %v", err)
	}

	err = svc.UpdateIngredientLine(ctx, res.ID, domain.UpdateLineRequest{
		Quantity: decimal.NewFromInt(-1),
	})
	if !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}

	var line entities.RecipeIngredient
	if err := db.First(&line, res.ID).Error; err != nil {
		t.Fatalf("reload line: %v", err)
	}
	if !line.Quantity.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("expected quantity unchanged at 2, got %s", line.Quantity)
	}
	if !line.Cost.Equal(mustDecimal(t, "5.00")) {
		t.Fatalf("expected cost unchanged at 5.00, got %s", line.Cost)
	}
	if got := recipeTotal(t, db, r.ID); !got.Equal(mustDecimal(t, "5.00")) {
		t.Fatalf("expected total unchanged at 5.00, got %s", got)
	}
}

func TestRemoveIngredientLine(t *testing.T) {
	db, cleanup := withRecipeTestDatabase(t)
	t.Cleanup(cleanup)
	svc := NewRecipeService(NewRecipeRepository(db), nil)
	ctx := context.Background()

	r := seedRecipe(t, db, "Stew", "16.00")
	beef := seedIngredient(t, db, "Beef", entities.PresentationPound, "6.00", "")
	onion := seedIngredient(t, db, "Onion", entities.PresentationPound, "1.00", "")

	first, err := svc.AddIngredientLine(ctx, r.ID, domain.AddLineRequest{
		IngredientID: beef.ID,
		Quantity:     decimal.NewFromInt(1),
	})
	if err != nil {
		t.Fatalf("add beef: %v", err)
	}
	if _, err := svc.AddIngredientLine(ctx, r.ID, domain.AddLineRequest{
		IngredientID: onion.ID,
		Quantity:     decimal.NewFromInt(2),
	}); err != nil {
		t.Fatalf("add onion: %v", err)
	}

	if err := svc.RemoveIngredientLine(ctx, first.ID); err != nil {
		t.Fatalf("remove line: %v", err)
	}
	if got := lineCount(t, db, r.ID); got != 1 {
		t.Fatalf("expected 1 line left, got %d", got)
	}
	if got := recipeTotal(t, db, r.ID); !got.Equal(mustDecimal(t, "2.00")) {
		t.Fatalf("expected total 2.00, got %s", got)
	}

	if err := svc.RemoveIngredientLine(ctx, 999); !errors.Is(err, domain.ErrLineNotFound) {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}
}

func TestReplaceAllLinesRollsBackOnBadLine(t *testing.T) {
	db, cleanup := withRecipeTestDatabase(t)
	t.Cleanup(cleanup)
	svc := NewRecipeService(NewRecipeRepository(db), nil)
	ctx := context.Background()

	r := seedRecipe(t, db, "Curry", "13.00")
	chicken := seedIngredient(t, db, "Chicken", entities.PresentationPound, "4.00", "")
	if _, err := svc.AddIngredientLine(ctx, r.ID, domain.AddLineRequest{
		IngredientID: chicken.ID,
		Quantity:     decimal.NewFromInt(1),
	}); err != nil {
		t.Fatalf("add line: %v", err)
	}

	err := svc.ReplaceAllLines(ctx, r.ID, domain.ReplaceLinesRequest{
		Lines: []domain.AddLineRequest{
			{IngredientID: chicken.ID, Quantity: decimal.NewFromInt(2)},
			{IngredientID: 999, Quantity: decimal.NewFromInt(1)},
		},
	})
	if !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Fatalf("expected ErrIngredientNotFound, got %v", err)
	}

	// The failed batch must leave the prior line set and total untouched.
	var line entities.RecipeIngredient
	if err := db.Where("recipe_id = ?", r.ID).First(&line).Error; err != nil {
		t.Fatalf("expected prior line to survive: %v", err)
	}
	if !line.Quantity.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("expected prior quantity 1, got %s", line.Quantity)
	}
	if got := recipeTotal(t, db, r.ID); !got.Equal(mustDecimal(t, "4.00")) {
		t.Fatalf("expected total 4.00 after rollback, got %s", got)
	}
}

func TestReplaceAllLinesRejectsInBatchDuplicate(t *testing.T) {
	db, cleanup := withRecipeTestDatabase(t)
	t.Cleanup(cleanup)
	svc := NewRecipeService(NewRecipeRepository(db), nil)
	ctx := context.Background()

	r := seedRecipe(t, db, "Tamales", "11.00")
	corn := seedIngredient(t, db, "Corn", entities.PresentationPound, "2.00", "")

	err := svc.ReplaceAllLines(ctx, r.ID, domain.ReplaceLinesRequest{
		Lines: []domain.AddLineRequest{
			{IngredientID: corn.ID, Quantity: decimal.NewFromInt(1)},
			{IngredientID: corn.ID, Quantity: decimal.NewFromInt(2)},
		},
	})
	if !errors.Is(err, domain.ErrDuplicateLine) {
		t.Fatalf("expected ErrDuplicateLine, got %v", err)
	}
	if got := lineCount(t, db, r.ID); got != 0 {
		t.Fatalf("expected no lines after rollback, got %d", got)
	}
}

func TestRefreshRecipeCostsRepricesEveryLine(t *testing.T) {
	db, cleanup := withRecipeTestDatabase(t)
	t.Cleanup(cleanup)
	svc := NewRecipeService(NewRecipeRepository(db), nil)
	ctx := context.Background()

	r := seedRecipe(t, db, "Enchiladas", "17.00")
	tortilla := seedIngredient(t, db, "Tortilla", entities.PresentationPound, "1.00", "")
	sauce := seedIngredient(t, db, "Sauce", entities.PresentationLiter, "3.00", "")

	if _, err := svc.AddIngredientLine(ctx, r.ID, domain.AddLineRequest{
		IngredientID: tortilla.ID,
		Quantity:     decimal.NewFromInt(2),
	}); err != nil {
		t.Fatalf("add tortilla: %v", err)
	}
	if _, err := svc.AddIngredientLine(ctx, r.ID, domain.AddLineRequest{
		IngredientID: sauce.ID,
		Quantity:     decimal.NewFromInt(1),
	}); err != nil {
		t.Fatalf("add sauce: %v", err)
	}

	if err := db.Model(&entities.Ingredient{}).Where("id = ?", tortilla.ID).
		Update("purchase_price", mustDecimal(t, "2.00")).Error; err != nil {
		t.Fatalf("failed to change price: %v", err)
	}

	// Viewing does not reprice.
	detail, err := svc.GetRecipeDetail(ctx, r.ID)
	if err != nil {
		t.Fatalf("get detail: %v", err)
	}
	if !detail.TotalCost.Equal(mustDecimal(t, "5.00")) {
		t.Fatalf("expected stale total 5.00 before refresh, got %s", detail.TotalCost)
	}

	if err := svc.RefreshRecipeCosts(ctx, r.ID); err != nil {
		t.Fatalf("refresh costs: %v", err)
	}
	if got := recipeTotal(t, db, r.ID); !got.Equal(mustDecimal(t, "7.00")) {
		t.Fatalf("expected refreshed total 7.00, got %s", got)
	}

	// Idempotent: a second refresh with no price change writes the same value.
	if err := svc.RefreshRecipeCosts(ctx, r.ID); err != nil {
		t.Fatalf("second refresh: %v", err)
	}
	if got := recipeTotal(t, db, r.ID); !got.Equal(mustDecimal(t, "7.00")) {
		t.Fatalf("expected total still 7.00, got %s", got)
	}
}

func TestDeleteRecipeRemovesLines(t *testing.T) {
	db, cleanup := withRecipeTestDatabase(t)
	t.Cleanup(cleanup)
	svc := NewRecipeService(NewRecipeRepository(db), nil)
	ctx := context.Background()

	r := seedRecipe(t, db, "Flan", "7.00")
	milk := seedIngredient(t, db, "Milk", entities.PresentationLiter, "1.50", "")
	if _, err := svc.AddIngredientLine(ctx, r.ID, domain.AddLineRequest{
		IngredientID: milk.ID,
		Quantity:     decimal.NewFromInt(1),
	}); err != nil {
		t.Fatalf("add line: %v", err)
	}

	if err := svc.DeleteRecipe(ctx, r.ID); err != nil {
		t.Fatalf("delete recipe: %v", err)
	}

	var count int64
	if err := db.Model(&entities.RecipeIngredient{}).Where("recipe_id = ?", r.ID).Count(&count).Error; err != nil {
		t.Fatalf("count lines: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no orphaned lines, got %d", count)
	}

	if err := svc.DeleteRecipe(ctx, r.ID); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound on second delete, got %v", err)
	}
}

func TestCreateRecipeValidatesPortions(t *testing.T) {
	db, cleanup := withRecipeTestDatabase(t)
	t.Cleanup(cleanup)
	svc := NewRecipeService(NewRecipeRepository(db), nil)
	ctx := context.Background()

	_, err := svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Name:      "Empty",
		SalePrice: mustDecimal(t, "5.00"),
		Portions:  0,
	})
	if !errors.Is(err, domain.ErrInvalidPortions) {
		t.Fatalf("expected ErrInvalidPortions, got %v", err)
	}
}
