package shopping

import (
	"testing"

	"plateplan-backend/domain"

	"github.com/stretchr/testify/assert"
)

func planWith(ingredients ...domain.Ingredient) map[string]domain.DayMeals {
	return map[string]domain.DayMeals{
		"monday": {
			Breakfast: &domain.GeneratedRecipe{
				Title:       "Test Meal",
				Ingredients: ingredients,
			},
		},
	}
}

func TestConsolidateDisjointIngredients(t *testing.T) {
	plans := []map[string]domain.DayMeals{
		planWith(
			domain.Ingredient{Name: "chicken breast", Amount: "500", Unit: "g"},
			domain.Ingredient{Name: "rice", Amount: "2", Unit: "cup"},
		),
		planWith(
			domain.Ingredient{Name: "salmon", Amount: "400", Unit: "g"},
		),
	}

	items := consolidate(plans, nil)

	assert.Len(t, items, 3)
	assert.Equal(t, "chicken breast", items[0].Name)
	assert.Equal(t, "500", items[0].Amount)
	assert.Equal(t, "g", items[0].Unit)
	assert.Equal(t, "salmon", items[2].Name)
	assert.Equal(t, "400", items[2].Amount)
}

func TestConsolidateMergesSameUnit(t *testing.T) {
	plans := []map[string]domain.DayMeals{
		planWith(domain.Ingredient{Name: "carrot", Amount: "2", Unit: "whole"}),
		planWith(domain.Ingredient{Name: "carrot", Amount: "3", Unit: "whole"}),
	}

	items := consolidate(plans, nil)

	assert.Len(t, items, 1)
	assert.Equal(t, "carrot", items[0].Name)
	assert.Equal(t, "5", items[0].Amount)
	assert.Equal(t, "whole", items[0].Unit)
}

func TestConsolidateUnitMismatchConcatenates(t *testing.T) {
	plans := []map[string]domain.DayMeals{
		planWith(domain.Ingredient{Name: "flour", Amount: "200", Unit: "g"}),
		planWith(domain.Ingredient{Name: "flour", Amount: "1", Unit: "cup"}),
	}

	items := consolidate(plans, nil)

	assert.Len(t, items, 1)
	assert.Equal(t, "200 g + 1 cup", items[0].Amount)
	assert.Empty(t, items[0].Unit)
}

func TestConsolidateNonNumericAmountConcatenates(t *testing.T) {
	plans := []map[string]domain.DayMeals{
		planWith(domain.Ingredient{Name: "salt", Amount: "a pinch", Unit: "tsp"}),
		planWith(domain.Ingredient{Name: "salt", Amount: "1", Unit: "tsp"}),
	}

	items := consolidate(plans, nil)

	assert.Len(t, items, 1)
	assert.Equal(t, "a pinch tsp + 1 tsp", items[0].Amount)
	assert.Empty(t, items[0].Unit)
}

func TestConsolidateMergesAcrossCase(t *testing.T) {
	plans := []map[string]domain.DayMeals{
		planWith(domain.Ingredient{Name: "Tomato", Amount: "2", Unit: "whole"}),
		planWith(domain.Ingredient{Name: "tomato", Amount: "4", Unit: "whole"}),
	}

	items := consolidate(plans, nil)

	assert.Len(t, items, 1)
	assert.Equal(t, "6", items[0].Amount)
}

func TestConsolidateExcludesPantryItems(t *testing.T) {
	plans := []map[string]domain.DayMeals{
		planWith(
			domain.Ingredient{Name: "Olive Oil", Amount: "2", Unit: "tbsp"},
			domain.Ingredient{Name: "chicken breast", Amount: "500", Unit: "g"},
		),
	}
	pantry := map[string]bool{"olive oil": true}

	items := consolidate(plans, pantry)

	assert.Len(t, items, 1)
	assert.Equal(t, "chicken breast", items[0].Name)
}

func TestConsolidateCollectsAllSlots(t *testing.T) {
	plans := []map[string]domain.DayMeals{
		{
			"monday": {
				Breakfast: &domain.GeneratedRecipe{Ingredients: []domain.Ingredient{{Name: "eggs", Amount: "2", Unit: "whole"}}},
				Lunch:     &domain.GeneratedRecipe{Ingredients: []domain.Ingredient{{Name: "bread", Amount: "2", Unit: "slice"}}},
				Dinner:    &domain.GeneratedRecipe{Ingredients: []domain.Ingredient{{Name: "salmon", Amount: "200", Unit: "g"}}},
				Snacks: []domain.GeneratedRecipe{
					{Ingredients: []domain.Ingredient{{Name: "banana", Amount: "1", Unit: "whole"}}},
				},
			},
		},
	}

	items := consolidate(plans, nil)

	assert.Len(t, items, 4)
}

func TestConsolidateSkipsEmptyNames(t *testing.T) {
	plans := []map[string]domain.DayMeals{
		planWith(
			domain.Ingredient{Name: "", Amount: "1", Unit: "cup"},
			domain.Ingredient{Name: "rice", Amount: "1", Unit: "cup"},
		),
	}

	items := consolidate(plans, nil)

	assert.Len(t, items, 1)
	assert.Equal(t, "rice", items[0].Name)
}

func TestCategorizeIngredient(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"chicken breast", "Meat & Seafood"},
		{"cheddar cheese", "Dairy"},
		{"banana", "Fruits"},
		{"baby spinach", "Vegetables"},
		{"basmati rice", "Pantry & Grains"},
		{"kale", "Other"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, CategorizeIngredient(tc.name), tc.name)
	}
}

func TestConsolidateIsDeterministicAcrossDays(t *testing.T) {
	plan := map[string]domain.DayMeals{
		"monday": {
			Dinner: &domain.GeneratedRecipe{
				Title:       "Flatbread",
				Ingredients: []domain.Ingredient{{Name: "flour", Amount: "200", Unit: "g"}},
			},
		},
		"tuesday": {
			Dinner: &domain.GeneratedRecipe{
				Title:       "Pancakes",
				Ingredients: []domain.Ingredient{{Name: "flour", Amount: "1", Unit: "cup"}},
			},
		},
	}

	for i := 0; i < 100; i++ {
		items := consolidate([]map[string]domain.DayMeals{plan}, nil)

		assert.Len(t, items, 1)
		assert.Equal(t, "200 g + 1 cup", items[0].Amount, "merge order must follow day order")
		assert.Equal(t, "", items[0].Unit)
	}
}
