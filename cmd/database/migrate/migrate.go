package migration

import (
	"fmt"
	"log"

	"plateplan-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []struct {
		name  string
		model interface{}
	}{
		{"user", &entities.User{}},
		{"transaction", &entities.Transaction{}},
		{"household", &entities.Household{}},
		{"household member", &entities.HouseholdMember{}},
		{"recipe", &entities.Recipe{}},
		{"meal plan", &entities.MealPlan{}},
		{"shopping list", &entities.ShoppingList{}},
		{"pantry item", &entities.PantryItem{}},
		{"grocery price", &entities.GroceryPrice{}},
		{"recipe feedback", &entities.RecipeFeedback{}},
		{"meal plan feedback", &entities.MealPlanFeedback{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			log.Fatalf("Error migrating %s database: %v", m.name, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
