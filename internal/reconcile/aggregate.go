package reconcile

import (
	"log"
	"sort"

	"forkcast/internal/forecast"
	"forkcast/internal/recipes"
)

// AggregateRequirements totals the ingredient demand across the forecast
// horizon. The returned order slice is the first-touch insertion order of
// the ingredients; downstream sorts use it for stable tie-breaks.
//
// Menu item keys without a recipe are skipped, not fatal.
func AggregateRequirements(
	days []forecast.DayForecast,
	catalog *recipes.Catalog,
) (map[string]*Requirement, []string) {

	requirements := make(map[string]*Requirement)
	var order []string
	unknown := make(map[string]bool)

	for _, day := range days {
		// Map iteration is randomized; walk keys sorted so the
		// insertion order is the same on every run.
		keys := make([]string, 0, len(day.Quantities))
		for key := range day.Quantities {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			quantity := day.Quantities[key]

			recipe, ok := catalog.Recipe(key)
			if !ok {
				unknown[key] = true
				continue
			}

			for _, ing := range recipe.Ingredients {
				req, exists := requirements[ing.Item]
				if !exists {
					req = &Requirement{Unit: ing.Unit}
					requirements[ing.Item] = req
					order = append(order, ing.Item)
				}

				req.Amount += ing.Amount * float64(quantity)

				if !containsString(req.MenuItems, recipe.Name) {
					req.MenuItems = append(req.MenuItems, recipe.Name)
				}
			}
		}
	}

	for key := range unknown {
		log.Printf("aggregate: no recipe for menu item %q, skipping", key)
	}

	return requirements, order
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
