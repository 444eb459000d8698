package forecast

import (
	"context"
	"math"
	"time"
)

// DefaultHorizonDays is the horizon the reconciliation pipeline plans for.
const DefaultHorizonDays = 5

type menuItem struct {
	id   int
	key  string
	name string
}

// The recognized menu item keys, in menu order. Keys match the recipe
// catalog.
var menuItems = []menuItem{
	{1, "burger_sales", "Burger"},
	{2, "pizza_sales", "Pizza"},
	{3, "salad_sales", "Salad"},
	{4, "ice_cream_sales", "Ice Cream"},
}

// RegressionOracle predicts demand from day-of-week seasonality: weekends
// sell noticeably more, and predictions drift slightly upward across the
// horizon. It stands in for the weather-driven regression models and
// satisfies the same contract.
type RegressionOracle struct {
	now func() time.Time
}

func NewRegressionOracle() *RegressionOracle {
	return &RegressionOracle{now: time.Now}
}

func (o *RegressionOracle) Predict(ctx context.Context, days int) ([]DayForecast, error) {
	if days <= 0 {
		return nil, nil
	}

	today := o.now()
	out := make([]DayForecast, 0, days)

	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, i)

		quantities := make(map[string]int, len(menuItems))
		for _, item := range menuItems {
			quantities[item.key] = roundQuantity(predict(item, date, i))
		}

		out = append(out, DayForecast{Date: date, Quantities: quantities})
	}

	return out, nil
}

// Items expands the horizon into the flat per-item representation served
// by the forecast endpoint.
func (o *RegressionOracle) Items(ctx context.Context, days int) ([]Item, error) {
	forecasts, err := o.Predict(ctx, days)
	if err != nil {
		return nil, err
	}

	var items []Item
	for i, day := range forecasts {
		for _, item := range menuItems {
			items = append(items, Item{
				Date:              day.Date.Format("2006-01-02"),
				ItemID:            item.id,
				ItemName:          item.name,
				PredictedQuantity: float64(day.Quantities[item.key]),
				Confidence:        confidence(i),
			})
		}
	}

	return items, nil
}

func predict(item menuItem, date time.Time, dayIndex int) float64 {
	base := 20.0
	if isWeekend(date) {
		base = 30.0
	}
	return base + float64(item.id)*2 + float64(dayIndex)
}

// Confidence decays the further out the prediction is.
func confidence(dayIndex int) float64 {
	return 0.85 - float64(dayIndex)*0.05
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func roundQuantity(q float64) int {
	if q < 0 {
		return 0
	}
	return int(math.Round(q))
}
