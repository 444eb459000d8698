package reconcile

import (
	"context"
	"time"

	"forkcast/internal/core"
	"forkcast/internal/forecast"
	"forkcast/internal/inventory"
	"forkcast/internal/recipes"
)

// InventoryLedger provides the effective inventory snapshot (on-hand plus
// outstanding orders) per ingredient.
type InventoryLedger interface {
	Effective(ctx context.Context, restaurantID string) (map[string]inventory.EffectiveItem, error)
}

// CampaignStore answers whether a campaign with the given dedup key has
// already been started for the restaurant.
type CampaignStore interface {
	HasStarted(ctx context.Context, restaurantID, dedupKey string) (bool, error)
}

type Service struct {
	restaurants core.RestaurantReader
	ledger      InventoryLedger
	oracle      forecast.Oracle
	campaigns   CampaignStore
	catalog     *recipes.Catalog

	now func() time.Time
}

func NewService(
	restaurants core.RestaurantReader,
	ledger InventoryLedger,
	oracle forecast.Oracle,
	campaigns CampaignStore,
	catalog *recipes.Catalog,
) *Service {
	return &Service{
		restaurants: restaurants,
		ledger:      ledger,
		oracle:      oracle,
		campaigns:   campaigns,
		catalog:     catalog,
		now:         time.Now,
	}
}

// --------------------------------------------------
// Inventory-forecast reconciliation pipeline
// --------------------------------------------------
//
// aggregate -> reconcile -> recommend, synchronously within one request.
func (s *Service) InventoryForecast(
	ctx context.Context,
	restaurantID string,
) (*Response, error) {

	restaurantName, err := s.restaurants.RestaurantName(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.ledger.Effective(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	days, err := s.oracle.Predict(ctx, forecast.DefaultHorizonDays)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, ErrForecastUnavailable
	}

	if s.catalog.Len() == 0 {
		return nil, recipes.ErrUnavailable
	}

	requirements, order := AggregateRequirements(days, s.catalog)
	shortages, excesses := Reconcile(requirements, order, snapshot)

	recommendations, err := Recommend(
		excesses,
		s.catalog,
		func(dedupKey string) (bool, error) {
			return s.campaigns.HasStarted(ctx, restaurantID, dedupKey)
		},
		s.now(),
	)
	if err != nil {
		return nil, err
	}

	if shortages == nil {
		shortages = []Item{}
	}
	if excesses == nil {
		excesses = []Item{}
	}
	if recommendations == nil {
		recommendations = []Recommendation{}
	}

	return &Response{
		RestaurantID:             restaurantID,
		RestaurantName:           restaurantName,
		ForecastSummary:          Summary{Shortages: shortages, Excesses: excesses},
		PromotionRecommendations: recommendations,
		PromotableMenuItemsCount: len(recommendations),
	}, nil
}
