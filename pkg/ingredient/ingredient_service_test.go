package ingredient

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

func withIngredientTestDatabase(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := db.AutoMigrate(
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

func price(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestCreateIngredientRequiresUnitWeightForUnit(t *testing.T) {
	db, cleanup := withIngredientTestDatabase(t)
	t.Cleanup(cleanup)
	svc := NewIngredientService(NewIngredientRepository(db), nil)
	ctx := context.Background()

	_, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{
		Name:          "Egg",
		Presentation:  entities.PresentationUnit,
		PurchasePrice: price(t, "5.00"),
	})
	if !errors.Is(err, domain.ErrInvalidIngredientData) {
		t.Fatalf("expected ErrInvalidIngredientData, got %v", err)
	}

	res, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{
		Name:          "Egg",
		Presentation:  entities.PresentationUnit,
		PurchasePrice: price(t, "5.00"),
		UnitWeight:    decimal.NewNullDecimal(price(t, "0.06")),
	})
	if err != nil {
		t.Fatalf("create with weight: %v", err)
	}
	if res.ID == 0 {
		t.Fatalf("expected persisted ingredient to have an id")
	}
}

func TestUpdateIngredientCannotDropUnitWeight(t *testing.T) {
	db, cleanup := withIngredientTestDatabase(t)
	t.Cleanup(cleanup)
	svc := NewIngredientService(NewIngredientRepository(db), nil)
	ctx := context.Background()

	res, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{
		Name:          "Flour",
		Presentation:  entities.PresentationPound,
		PurchasePrice: price(t, "3.00"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Switching to Unit without ever supplying a weight must be rejected.
	err = svc.UpdateIngredient(ctx, res.ID, domain.UpdateIngredientRequest{
		Presentation: entities.PresentationUnit,
	})
	if !errors.Is(err, domain.ErrInvalidIngredientData) {
		t.Fatalf("expected ErrInvalidIngredientData, got %v", err)
	}

	err = svc.UpdateIngredient(ctx, res.ID, domain.UpdateIngredientRequest{
		Presentation: entities.PresentationUnit,
		UnitWeight:   decimal.NewNullDecimal(price(t, "2")),
	})
	if err != nil {
		t.Fatalf("update with weight: %v", err)
	}
}

func TestDeleteIngredientGuardedByRecipeUse(t *testing.T) {
	db, cleanup := withIngredientTestDatabase(t)
	t.Cleanup(cleanup)
	svc := NewIngredientService(NewIngredientRepository(db), nil)
	ctx := context.Background()

	res, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{
		Name:          "Cheese",
		Presentation:  entities.PresentationPound,
		PurchasePrice: price(t, "4.00"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	recipe := &entities.Recipe{Name: "Pizza", SalePrice: price(t, "18.00"), Portions: 2}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("seed recipe: %v", err)
	}
	if err := db.Create(&entities.RecipeIngredient{
		RecipeID:     recipe.ID,
		IngredientID: res.ID,
		Quantity:     decimal.NewFromInt(1),
		Cost:         price(t, "4.00"),
	}).Error; err != nil {
		t.Fatalf("seed line: %v", err)
	}

	if err := svc.DeleteIngredient(ctx, res.ID); !errors.Is(err, domain.ErrIngredientInUse) {
		t.Fatalf("expected ErrIngredientInUse, got %v", err)
	}

	if err := db.Delete(&entities.RecipeIngredient{}, "ingredient_id = ?", res.ID).Error; err != nil {
		t.Fatalf("clear lines: %v", err)
	}
	if err := svc.DeleteIngredient(ctx, res.ID); err != nil {
		t.Fatalf("delete after clearing lines: %v", err)
	}

	if err := svc.DeleteIngredient(ctx, res.ID); !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Fatalf("expected ErrIngredientNotFound, got %v", err)
	}
}

func TestGetIngredientsOrderedWithCategory(t *testing.T) {
	db, cleanup := withIngredientTestDatabase(t)
	t.Cleanup(cleanup)
	svc := NewIngredientService(NewIngredientRepository(db), nil)
	ctx := context.Background()

	produce := &entities.Category{Name: "Produce"}
	if err := db.Create(produce).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	for _, name := range []string{"Tomato", "Avocado"} {
		if _, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{
			Name:          name,
			CategoryID:    &produce.ID,
			Presentation:  entities.PresentationPound,
			PurchasePrice: price(t, "2.00"),
		}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	list, err := svc.GetIngredients(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(list))
	}
	if list[0].Name != "Avocado" || list[1].Name != "Tomato" {
		t.Fatalf("expected name ordering, got %s, %s", list[0].Name, list[1].Name)
	}
	if list[0].CategoryName != "Produce" {
		t.Fatalf("expected category name resolved, got %q", list[0].CategoryName)
	}
}
