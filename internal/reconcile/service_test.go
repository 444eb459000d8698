package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"forkcast/internal/core"
	"forkcast/internal/forecast"
	"forkcast/internal/inventory"
	"forkcast/internal/recipes"
)

// --------------------------------------------------
// Mock collaborators
// --------------------------------------------------

type mockRestaurants struct {
	name string
	err  error
}

func (m *mockRestaurants) RestaurantName(ctx context.Context, restaurantID string) (string, error) {
	return m.name, m.err
}

type mockLedger struct {
	snapshot map[string]inventory.EffectiveItem
}

func (m *mockLedger) Effective(ctx context.Context, restaurantID string) (map[string]inventory.EffectiveItem, error) {
	return m.snapshot, nil
}

type mockOracle struct {
	days []forecast.DayForecast
	err  error
}

func (m *mockOracle) Predict(ctx context.Context, days int) ([]forecast.DayForecast, error) {
	return m.days, m.err
}

type mockCampaigns struct {
	started map[string]bool
}

func (m *mockCampaigns) HasStarted(ctx context.Context, restaurantID, dedupKey string) (bool, error) {
	return m.started[dedupKey], nil
}

func pipelineCatalog(t *testing.T) *recipes.Catalog {
	t.Helper()
	return testCatalog(t, map[string]recipes.Recipe{
		"burger_sales": {
			Name: "Burger",
			Ingredients: []recipes.Ingredient{
				{Item: "beef", Amount: 1, Unit: "kg"},
			},
		},
		"salad_sales": {
			Name: "Salad",
			Ingredients: []recipes.Ingredient{
				{Item: "lettuce", Amount: 1, Unit: "kg"},
			},
		},
	})
}

func forecastDays(t *testing.T, n int, quantities map[string]int) []forecast.DayForecast {
	t.Helper()
	days := make([]forecast.DayForecast, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, day(t, quantities))
	}
	return days
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestInventoryForecast_FullPipeline(t *testing.T) {
	service := NewService(
		&mockRestaurants{name: "Bella Vista"},
		&mockLedger{snapshot: map[string]inventory.EffectiveItem{
			// 10 burgers/day over 3 days needs 30 beef; 80 on hand is
			// an excess of 50.
			"beef": {Amount: 80, Unit: "kg"},
			// lettuce has zero demand and stays out of both lists.
			"lettuce": {Amount: 0, Unit: "kg"},
		}},
		&mockOracle{days: forecastDays(t, 3, map[string]int{
			"burger_sales": 10,
			"salad_sales":  0,
		})},
		&mockCampaigns{},
		pipelineCatalog(t),
	)
	service.now = func() time.Time { return testDay }

	resp, err := service.InventoryForecast(context.Background(), "rest-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resp.RestaurantName != "Bella Vista" {
		t.Errorf("expected restaurant name, got %q", resp.RestaurantName)
	}

	if len(resp.ForecastSummary.Shortages) != 0 {
		t.Errorf("expected no shortages, got %v", resp.ForecastSummary.Shortages)
	}
	if len(resp.ForecastSummary.Excesses) != 1 {
		t.Fatalf("expected 1 excess, got %d", len(resp.ForecastSummary.Excesses))
	}

	excess := resp.ForecastSummary.Excesses[0]
	if excess.Item != "beef" || excess.Difference != 50 {
		t.Errorf("expected beef excess of 50, got %s %d", excess.Item, excess.Difference)
	}

	// Burger is fully coverable by the beef excess; Salad is not (lettuce
	// is neutral, not excess).
	if len(resp.PromotionRecommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(resp.PromotionRecommendations))
	}
	rec := resp.PromotionRecommendations[0]
	if rec.MenuItem != "Burger" {
		t.Errorf("expected Burger recommendation, got %q", rec.MenuItem)
	}
	if rec.PotentialQuantity != 50 {
		t.Errorf("expected producible quantity 50, got %d", rec.PotentialQuantity)
	}
	if rec.CampaignStartedID != "burger_2024-06-03" {
		t.Errorf("unexpected dedup key %q", rec.CampaignStartedID)
	}
	if resp.PromotableMenuItemsCount != 1 {
		t.Errorf("expected promotable count 1, got %d", resp.PromotableMenuItemsCount)
	}
}

func TestInventoryForecast_UnknownRestaurant(t *testing.T) {
	service := NewService(
		&mockRestaurants{err: core.ErrRestaurantNotFound},
		&mockLedger{},
		&mockOracle{},
		&mockCampaigns{},
		pipelineCatalog(t),
	)

	_, err := service.InventoryForecast(context.Background(), "missing")
	if !errors.Is(err, core.ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
	}
}

func TestInventoryForecast_NoForecastData(t *testing.T) {
	service := NewService(
		&mockRestaurants{name: "Bella Vista"},
		&mockLedger{},
		&mockOracle{days: nil},
		&mockCampaigns{},
		pipelineCatalog(t),
	)

	_, err := service.InventoryForecast(context.Background(), "rest-1")
	if !errors.Is(err, ErrForecastUnavailable) {
		t.Fatalf("expected ErrForecastUnavailable, got %v", err)
	}
}

func TestInventoryForecast_CatalogUnavailable(t *testing.T) {
	service := NewService(
		&mockRestaurants{name: "Bella Vista"},
		&mockLedger{},
		&mockOracle{days: forecastDays(t, 1, map[string]int{"burger_sales": 5})},
		&mockCampaigns{},
		nil, // catalog failed to load at startup
	)

	_, err := service.InventoryForecast(context.Background(), "rest-1")
	if !errors.Is(err, recipes.ErrUnavailable) {
		t.Fatalf("expected recipes.ErrUnavailable, got %v", err)
	}
}

func TestInventoryForecast_StartedCampaignSuppressed(t *testing.T) {
	service := NewService(
		&mockRestaurants{name: "Bella Vista"},
		&mockLedger{snapshot: map[string]inventory.EffectiveItem{
			"beef": {Amount: 80, Unit: "kg"},
		}},
		&mockOracle{days: forecastDays(t, 3, map[string]int{"burger_sales": 10})},
		&mockCampaigns{started: map[string]bool{"burger_2024-06-03": true}},
		pipelineCatalog(t),
	)
	service.now = func() time.Time { return testDay }

	resp, err := service.InventoryForecast(context.Background(), "rest-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(resp.PromotionRecommendations) != 0 {
		t.Errorf("expected started campaign to be suppressed, got %v", resp.PromotionRecommendations)
	}
	// The excess itself still shows up in the summary.
	if len(resp.ForecastSummary.Excesses) != 1 {
		t.Errorf("expected the beef excess to remain, got %v", resp.ForecastSummary.Excesses)
	}
}
