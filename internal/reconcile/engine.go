package reconcile

import (
	"sort"

	"forkcast/internal/inventory"
)

// ExcessThreshold is the amount above the requirement an ingredient must
// reach to count as excess. Differences in (0, ExcessThreshold] are
// neutral.
const ExcessThreshold = 20

// Reconcile diffs the aggregated requirements against the effective
// inventory snapshot. Ingredients absent from the snapshot count as zero
// on hand. Inventory entries with no demand never appear.
//
// Shortages come back ordered worst-first (most negative difference),
// excesses largest surplus first; ties keep aggregation insertion order.
func Reconcile(
	requirements map[string]*Requirement,
	order []string,
	snapshot map[string]inventory.EffectiveItem,
) (shortages, excesses []Item) {

	for _, name := range order {
		req := requirements[name]

		var current, ordered int
		if entry, ok := snapshot[name]; ok {
			current = entry.Amount
			ordered = entry.Ordered
		}

		difference := float64(current) - req.Amount

		item := Item{
			Item:           name,
			CurrentAmount:  current,
			RequiredAmount: int(req.Amount),
			Difference:     int(difference),
			Unit:           req.Unit,
			MenuItems:      req.MenuItems,
			OrderedAmount:  ordered,
		}

		switch {
		case difference < 0:
			shortages = append(shortages, item)
		case difference > ExcessThreshold:
			excesses = append(excesses, item)
		}
	}

	sort.SliceStable(shortages, func(i, j int) bool {
		return shortages[i].Difference < shortages[j].Difference
	})
	sort.SliceStable(excesses, func(i, j int) bool {
		return excesses[i].Difference > excesses[j].Difference
	})

	return shortages, excesses
}
