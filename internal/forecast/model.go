package forecast

import (
	"context"
	"time"
)

// DayForecast holds the predicted sales per menu item key for one day.
// Quantities are rounded to whole units and never negative.
type DayForecast struct {
	Date       time.Time
	Quantities map[string]int
}

// Oracle produces the sales forecast the reconciliation pipeline runs
// against. An empty result means no forecast is available.
type Oracle interface {
	Predict(ctx context.Context, days int) ([]DayForecast, error)
}

// Item is one (day, menu item) prediction as served by the forecast
// endpoint.
type Item struct {
	Date              string  `json:"date"`
	ItemID            int     `json:"item_id"`
	ItemName          string  `json:"item_name"`
	PredictedQuantity float64 `json:"predicted_quantity"`
	Confidence        float64 `json:"confidence"`
}

type Response struct {
	Items []Item `json:"items"`
}
