package grocery

import "plateplan-backend/domain"

// Static price observations used when no fresher rows exist in the
// database. Stand-in data until a real store integration lands.
var staticPrices = map[string][]domain.StorePrice{
	"chicken breast": {
		{Store: "Walmart", Price: 3.49, Unit: "lb", Availability: "in_stock"},
		{Store: "Kroger", Price: 3.99, Unit: "lb", Availability: "in_stock"},
		{Store: "Aldi", Price: 2.89, Unit: "lb", Availability: "in_stock"},
		{Store: "Whole Foods", Price: 6.99, Unit: "lb", Availability: "in_stock"},
	},
	"ground beef": {
		{Store: "Walmart", Price: 4.48, Unit: "lb", Availability: "in_stock"},
		{Store: "Kroger", Price: 4.99, Unit: "lb", Availability: "in_stock"},
		{Store: "Aldi", Price: 3.95, Unit: "lb", Availability: "limited"},
	},
	"salmon": {
		{Store: "Kroger", Price: 9.99, Unit: "lb", Availability: "in_stock"},
		{Store: "Whole Foods", Price: 12.99, Unit: "lb", Availability: "in_stock"},
		{Store: "Walmart", Price: 8.48, Unit: "lb", Availability: "limited"},
	},
	"milk": {
		{Store: "Walmart", Price: 3.18, Unit: "gallon", Availability: "in_stock"},
		{Store: "Kroger", Price: 3.29, Unit: "gallon", Availability: "in_stock"},
		{Store: "Aldi", Price: 2.95, Unit: "gallon", Availability: "in_stock"},
		{Store: "Target", Price: 3.39, Unit: "gallon", Availability: "in_stock"},
	},
	"eggs": {
		{Store: "Aldi", Price: 2.49, Unit: "dozen", Availability: "in_stock"},
		{Store: "Walmart", Price: 2.72, Unit: "dozen", Availability: "in_stock"},
		{Store: "Kroger", Price: 2.99, Unit: "dozen", Availability: "in_stock"},
	},
	"cheddar cheese": {
		{Store: "Aldi", Price: 3.15, Unit: "8oz", Availability: "in_stock"},
		{Store: "Walmart", Price: 3.48, Unit: "8oz", Availability: "in_stock"},
		{Store: "Whole Foods", Price: 5.49, Unit: "8oz", Availability: "in_stock"},
	},
	"butter": {
		{Store: "Aldi", Price: 3.29, Unit: "lb", Availability: "in_stock"},
		{Store: "Walmart", Price: 3.96, Unit: "lb", Availability: "in_stock"},
		{Store: "Kroger", Price: 4.19, Unit: "lb", Availability: "in_stock"},
	},
	"bread": {
		{Store: "Walmart", Price: 1.98, Unit: "loaf", Availability: "in_stock"},
		{Store: "Aldi", Price: 1.65, Unit: "loaf", Availability: "in_stock"},
		{Store: "Target", Price: 2.29, Unit: "loaf", Availability: "in_stock"},
	},
	"rice": {
		{Store: "Walmart", Price: 2.18, Unit: "2lb", Availability: "in_stock"},
		{Store: "Aldi", Price: 1.95, Unit: "2lb", Availability: "in_stock"},
		{Store: "Kroger", Price: 2.49, Unit: "2lb", Availability: "in_stock"},
	},
	"pasta": {
		{Store: "Aldi", Price: 0.95, Unit: "16oz", Availability: "in_stock"},
		{Store: "Walmart", Price: 1.24, Unit: "16oz", Availability: "in_stock"},
		{Store: "Kroger", Price: 1.49, Unit: "16oz", Availability: "in_stock"},
	},
	"flour": {
		{Store: "Walmart", Price: 2.64, Unit: "5lb", Availability: "in_stock"},
		{Store: "Aldi", Price: 2.35, Unit: "5lb", Availability: "in_stock"},
	},
	"olive oil": {
		{Store: "Aldi", Price: 5.99, Unit: "500ml", Availability: "in_stock"},
		{Store: "Walmart", Price: 6.48, Unit: "500ml", Availability: "in_stock"},
		{Store: "Whole Foods", Price: 9.99, Unit: "500ml", Availability: "in_stock"},
	},
	"onion": {
		{Store: "Walmart", Price: 0.98, Unit: "lb", Availability: "in_stock"},
		{Store: "Aldi", Price: 0.85, Unit: "lb", Availability: "in_stock"},
		{Store: "Kroger", Price: 1.09, Unit: "lb", Availability: "in_stock"},
	},
	"garlic": {
		{Store: "Walmart", Price: 0.62, Unit: "head", Availability: "in_stock"},
		{Store: "Kroger", Price: 0.69, Unit: "head", Availability: "in_stock"},
	},
	"tomato": {
		{Store: "Aldi", Price: 1.29, Unit: "lb", Availability: "in_stock"},
		{Store: "Walmart", Price: 1.48, Unit: "lb", Availability: "in_stock"},
		{Store: "Whole Foods", Price: 2.49, Unit: "lb", Availability: "in_stock"},
	},
	"potato": {
		{Store: "Walmart", Price: 0.78, Unit: "lb", Availability: "in_stock"},
		{Store: "Aldi", Price: 0.69, Unit: "lb", Availability: "in_stock"},
	},
	"carrot": {
		{Store: "Aldi", Price: 0.89, Unit: "lb", Availability: "in_stock"},
		{Store: "Walmart", Price: 0.98, Unit: "lb", Availability: "in_stock"},
		{Store: "Kroger", Price: 1.19, Unit: "lb", Availability: "in_stock"},
	},
	"broccoli": {
		{Store: "Walmart", Price: 1.88, Unit: "lb", Availability: "in_stock"},
		{Store: "Kroger", Price: 1.99, Unit: "lb", Availability: "in_stock"},
		{Store: "Aldi", Price: 1.69, Unit: "lb", Availability: "limited"},
	},
	"spinach": {
		{Store: "Aldi", Price: 1.95, Unit: "10oz", Availability: "in_stock"},
		{Store: "Walmart", Price: 2.24, Unit: "10oz", Availability: "in_stock"},
	},
	"banana": {
		{Store: "Walmart", Price: 0.58, Unit: "lb", Availability: "in_stock"},
		{Store: "Aldi", Price: 0.49, Unit: "lb", Availability: "in_stock"},
		{Store: "Kroger", Price: 0.59, Unit: "lb", Availability: "in_stock"},
	},
	"apple": {
		{Store: "Aldi", Price: 1.19, Unit: "lb", Availability: "in_stock"},
		{Store: "Walmart", Price: 1.34, Unit: "lb", Availability: "in_stock"},
		{Store: "Whole Foods", Price: 2.29, Unit: "lb", Availability: "in_stock"},
	},
}

// Distances from a nominal household location, in km.
var storeDistances = map[string]float64{
	"Walmart":     3.2,
	"Kroger":      1.2,
	"Aldi":        2.5,
	"Target":      4.1,
	"Whole Foods": 5.6,
}
