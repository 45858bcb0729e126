package shopping

import (
	"strconv"
	"strings"

	"plateplan-backend/domain"
)

// consolidate merges the ingredient lists of every recipe in the given
// weekly plans into one entry per distinct lowercase ingredient name,
// then drops entries whose name appears in the pantry set.
//
// Merge rules, per accumulated entry:
//   - unit matches exactly and both amounts parse as floats: amounts add.
//   - anything else (unit mismatch, or either amount non-numeric): the
//     amounts combine into a "<existing> + <new amount> <new unit>"
//     display string and the unit field blanks. Ugly but lossless.
//
// Malformed ingredients never abort the whole list.
func consolidate(plans []map[string]domain.DayMeals, pantryNames map[string]bool) []domain.ShoppingListItem {
	entries := make(map[string]*domain.ShoppingListItem)
	var order []string

	for _, plan := range plans {
		// Day order fixes the merge order, so unit-mismatch concat
		// strings and item positions come out the same every run.
		for _, day := range domain.DayNames {
			meals, ok := plan[day]
			if !ok {
				continue
			}
			for _, recipe := range slotRecipes(meals) {
				for _, ingredient := range recipe.Ingredients {
					name := strings.TrimSpace(ingredient.Name)
					if name == "" {
						continue
					}
					key := strings.ToLower(name)

					entry, exists := entries[key]
					if !exists {
						entries[key] = &domain.ShoppingListItem{
							Name:     name,
							Amount:   ingredient.Amount,
							Unit:     ingredient.Unit,
							Category: CategorizeIngredient(name),
						}
						order = append(order, key)
						continue
					}

					mergeInto(entry, ingredient.Amount, ingredient.Unit)
				}
			}
		}
	}

	items := make([]domain.ShoppingListItem, 0, len(order))
	for _, key := range order {
		if pantryNames[key] {
			continue
		}
		items = append(items, *entries[key])
	}
	return items
}

func slotRecipes(meals domain.DayMeals) []*domain.GeneratedRecipe {
	recipes := make([]*domain.GeneratedRecipe, 0, 3+len(meals.Snacks))
	for _, recipe := range []*domain.GeneratedRecipe{meals.Breakfast, meals.Lunch, meals.Dinner} {
		if recipe != nil {
			recipes = append(recipes, recipe)
		}
	}
	for i := range meals.Snacks {
		recipes = append(recipes, &meals.Snacks[i])
	}
	return recipes
}

func mergeInto(entry *domain.ShoppingListItem, amount string, unit string) {
	if entry.Unit == unit {
		existing, errA := strconv.ParseFloat(strings.TrimSpace(entry.Amount), 64)
		added, errB := strconv.ParseFloat(strings.TrimSpace(amount), 64)
		if errA == nil && errB == nil {
			entry.Amount = strconv.FormatFloat(existing+added, 'f', -1, 64)
			return
		}
	}

	entry.Amount = displayAmount(entry.Amount, entry.Unit) + " + " + displayAmount(amount, unit)
	entry.Unit = ""
}

func displayAmount(amount string, unit string) string {
	if unit == "" {
		return amount
	}
	return amount + " " + unit
}
