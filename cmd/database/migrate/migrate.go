package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"Recetario-Backend/entities"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Menu{}, &entities.Category{}); err != nil {
		log.Fatalf("Error migrating menu tables: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}, &entities.RecipeIngredient{}); err != nil {
		log.Fatalf("Error migrating recipe tables: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
