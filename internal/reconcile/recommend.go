package reconcile

import (
	"fmt"
	"math"
	"strings"
	"time"

	"forkcast/internal/recipes"
)

// DedupKey builds the campaign identifier for a menu item on a given day.
// One recommendation per menu item per calendar day.
func DedupKey(menuName string, day time.Time) string {
	normalized := strings.ReplaceAll(strings.ToLower(menuName), " ", "_")
	return normalized + "_" + day.Format("2006-01-02")
}

// Recommend finds menu items whose ingredients are ALL in excess and
// proposes a promotion for each, sized by the scarcest excess ingredient.
// Items whose dedup key reports an already-started campaign are
// suppressed, which makes repeated runs idempotent.
//
// A producible quantity of zero is not filtered out; the recommendation
// is emitted as-is.
func Recommend(
	excesses []Item,
	catalog *recipes.Catalog,
	started func(dedupKey string) (bool, error),
	today time.Time,
) ([]Recommendation, error) {

	excessByName := make(map[string]Item, len(excesses))
	for _, it := range excesses {
		excessByName[it.Item] = it
	}

	var recommendations []Recommendation

	for _, key := range catalog.Keys() {
		recipe, ok := catalog.Recipe(key)
		if !ok || len(recipe.Ingredients) == 0 {
			continue
		}

		// Partial coverage does not count: every ingredient must be
		// in the excess set.
		allInExcess := true
		details := make([]IngredientExcess, 0, len(recipe.Ingredients))
		producible := math.MaxInt

		for _, ing := range recipe.Ingredients {
			excess, ok := excessByName[ing.Item]
			if !ok {
				allInExcess = false
				break
			}

			details = append(details, IngredientExcess{
				Ingredient: ing.Item,
				Excess:     fmt.Sprintf("%d %s", excess.Difference, excess.Unit),
			})

			// Amount is validated positive at catalog load.
			qty := int(math.Floor(float64(excess.Difference) / ing.Amount))
			if qty < producible {
				producible = qty
			}
		}

		if !allInExcess {
			continue
		}

		dedupKey := DedupKey(recipe.Name, today)

		exists, err := started(dedupKey)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		recommendations = append(recommendations, Recommendation{
			MenuItem:           recipe.Name,
			Reason:             fmt.Sprintf("Can make %d additional items", producible),
			PotentialQuantity:  producible,
			IngredientExcesses: details,
			CampaignStartedID:  dedupKey,
		})
	}

	return recommendations, nil
}
