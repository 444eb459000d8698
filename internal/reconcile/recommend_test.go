package reconcile

import (
	"testing"
	"time"

	"forkcast/internal/recipes"
)

var testDay = time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC)

func noCampaigns(dedupKey string) (bool, error) { return false, nil }

func TestRecommend_BottleneckIngredient(t *testing.T) {
	catalog := testCatalog(t, map[string]recipes.Recipe{
		"pizza_sales": {
			Name: "Pizza",
			Ingredients: []recipes.Ingredient{
				{Item: "cheese", Amount: 2, Unit: "kg"},
				{Item: "dough", Amount: 1, Unit: "kg"},
			},
		},
	})

	excesses := []Item{
		{Item: "cheese", Difference: 10, Unit: "kg"},
		{Item: "dough", Difference: 3, Unit: "kg"},
	}

	recs, err := Recommend(excesses, catalog, noCampaigns, testDay)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}

	rec := recs[0]
	if rec.MenuItem != "Pizza" {
		t.Errorf("expected Pizza, got %q", rec.MenuItem)
	}
	// min(floor(10/2), floor(3/1)) = min(5, 3) = 3
	if rec.PotentialQuantity != 3 {
		t.Errorf("expected producible quantity 3, got %d", rec.PotentialQuantity)
	}
	if len(rec.IngredientExcesses) != 2 {
		t.Errorf("expected 2 ingredient excess details, got %d", len(rec.IngredientExcesses))
	}
	if rec.IngredientExcesses[0].Excess != "10 kg" {
		t.Errorf("expected excess text '10 kg', got %q", rec.IngredientExcesses[0].Excess)
	}
}

func TestRecommend_PartialCoverageNotRecommended(t *testing.T) {
	catalog := testCatalog(t, map[string]recipes.Recipe{
		"pizza_sales": {
			Name: "Pizza",
			Ingredients: []recipes.Ingredient{
				{Item: "cheese", Amount: 2, Unit: "kg"},
				{Item: "dough", Amount: 1, Unit: "kg"},
			},
		},
	})

	// dough missing from the excess set: no recommendation no matter how
	// much cheese is left over.
	excesses := []Item{
		{Item: "cheese", Difference: 500, Unit: "kg"},
	}

	recs, err := Recommend(excesses, catalog, noCampaigns, testDay)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("partial ingredient coverage must not recommend, got %v", recs)
	}
}

func TestRecommend_DedupKeyFormat(t *testing.T) {
	key := DedupKey("Ice Cream", testDay)
	if key != "ice_cream_2024-06-03" {
		t.Errorf("expected ice_cream_2024-06-03, got %q", key)
	}
}

func TestRecommend_SuppressesStartedCampaigns(t *testing.T) {
	catalog := testCatalog(t, map[string]recipes.Recipe{
		"pizza_sales": {
			Name: "Pizza",
			Ingredients: []recipes.Ingredient{
				{Item: "cheese", Amount: 1, Unit: "kg"},
			},
		},
		"salad_sales": {
			Name: "Salad",
			Ingredients: []recipes.Ingredient{
				{Item: "lettuce", Amount: 1, Unit: "kg"},
			},
		},
	})

	excesses := []Item{
		{Item: "cheese", Difference: 30, Unit: "kg"},
		{Item: "lettuce", Difference: 25, Unit: "kg"},
	}

	started := map[string]bool{}
	lookup := func(dedupKey string) (bool, error) { return started[dedupKey], nil }

	first, err := Recommend(excesses, catalog, lookup, testDay)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 recommendations on first run, got %d", len(first))
	}

	// Record the first run's campaigns; the second run must be empty.
	for _, rec := range first {
		started[rec.CampaignStartedID] = true
	}

	second, err := Recommend(excesses, catalog, lookup, testDay)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(second) != 0 {
		t.Errorf("expected no recommendations on repeated run, got %v", second)
	}
}

func TestRecommend_ZeroQuantityStillEmitted(t *testing.T) {
	catalog := testCatalog(t, map[string]recipes.Recipe{
		"pizza_sales": {
			Name: "Pizza",
			Ingredients: []recipes.Ingredient{
				{Item: "cheese", Amount: 50, Unit: "kg"},
			},
		},
	})

	// Excess of 21 with 50 needed per unit truncates to 0 producible.
	excesses := []Item{
		{Item: "cheese", Difference: 21, Unit: "kg"},
	}

	recs, err := Recommend(excesses, catalog, noCampaigns, testDay)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected zero-quantity recommendation to be emitted, got %d", len(recs))
	}
	if recs[0].PotentialQuantity != 0 {
		t.Errorf("expected producible quantity 0, got %d", recs[0].PotentialQuantity)
	}
}

func TestRecommend_CatalogOrderIsStable(t *testing.T) {
	catalog := testCatalog(t, map[string]recipes.Recipe{
		"salad_sales": {
			Name: "Salad",
			Ingredients: []recipes.Ingredient{
				{Item: "lettuce", Amount: 1, Unit: "kg"},
			},
		},
		"burger_sales": {
			Name: "Burger",
			Ingredients: []recipes.Ingredient{
				{Item: "lettuce", Amount: 1, Unit: "kg"},
			},
		},
	})

	excesses := []Item{
		{Item: "lettuce", Difference: 40, Unit: "kg"},
	}

	recs, err := Recommend(excesses, catalog, noCampaigns, testDay)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	// Catalog iterates keys sorted: burger_sales before salad_sales.
	if recs[0].MenuItem != "Burger" || recs[1].MenuItem != "Salad" {
		t.Errorf("expected [Burger Salad], got [%s %s]", recs[0].MenuItem, recs[1].MenuItem)
	}
}
