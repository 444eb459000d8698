package reconcile

import "errors"

var (
	// ErrForecastUnavailable is surfaced when the oracle returns no data;
	// the pipeline never computes against a partial forecast.
	ErrForecastUnavailable = errors.New("no forecast data available")
)

// Requirement is the aggregated demand for one ingredient across the
// forecast horizon.
type Requirement struct {
	Amount    float64
	Unit      string
	MenuItems []string
}

// Item is one reconciled ingredient. Difference = current - required;
// negative means shortage, positive means excess.
type Item struct {
	Item           string   `json:"item"`
	CurrentAmount  int      `json:"current_amount"`
	RequiredAmount int      `json:"required_amount"`
	Difference     int      `json:"difference"`
	Unit           string   `json:"unit"`
	MenuItems      []string `json:"menu_items"`
	OrderedAmount  int      `json:"ordered_amount"`
}

type Summary struct {
	Shortages []Item `json:"shortages"`
	Excesses  []Item `json:"excesses"`
}

type IngredientExcess struct {
	Ingredient string `json:"ingredient"`
	Excess     string `json:"excess"`
}

type Recommendation struct {
	MenuItem           string             `json:"menu_item"`
	Reason             string             `json:"reason"`
	PotentialQuantity  int                `json:"potential_quantity"`
	IngredientExcesses []IngredientExcess `json:"ingredient_excesses"`
	CampaignStartedID  string             `json:"campaign_started_id"`
}

type Response struct {
	RestaurantID             string           `json:"restaurant_id"`
	RestaurantName           string           `json:"restaurant_name"`
	ForecastSummary          Summary          `json:"forecast_summary"`
	PromotionRecommendations []Recommendation `json:"promotion_recommendations"`
	PromotableMenuItemsCount int              `json:"promotable_menu_items_count"`
}
