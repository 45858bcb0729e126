package shopping

import "strings"

type categoryKeywords struct {
	category string
	keywords []string
}

// Keyword tables checked in order; the first keyword contained in the
// ingredient name wins. Unmatched names land in "Other".
var categories = []categoryKeywords{
	{
		category: "Meat & Seafood",
		keywords: []string{"chicken", "beef", "pork", "turkey", "lamb", "fish", "salmon", "tuna", "shrimp", "bacon", "sausage", "ham"},
	},
	{
		category: "Dairy",
		keywords: []string{"milk", "cheese", "yogurt", "butter", "cream", "egg"},
	},
	{
		category: "Fruits",
		keywords: []string{"apple", "banana", "orange", "lemon", "lime", "berry", "berries", "grape", "mango", "peach", "pear", "melon"},
	},
	{
		category: "Vegetables",
		keywords: []string{"onion", "garlic", "tomato", "potato", "carrot", "broccoli", "spinach", "lettuce", "pepper", "cucumber", "celery", "zucchini", "mushroom", "cabbage"},
	},
	{
		category: "Pantry & Grains",
		keywords: []string{"rice", "pasta", "flour", "bread", "oat", "sugar", "salt", "oil", "sauce", "bean", "lentil", "cereal", "vinegar", "stock", "broth", "spice", "honey"},
	},
}

// CategorizeIngredient assigns a display-grouping category to an
// ingredient name. Deterministic: same name, same category.
func CategorizeIngredient(name string) string {
	lower := strings.ToLower(name)
	for _, group := range categories {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				return group.category
			}
		}
	}
	return "Other"
}
