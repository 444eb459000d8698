package restaurants

import "context"

type Repository interface {
	List(ctx context.Context) ([]Restaurant, error)
	RestaurantName(ctx context.Context, restaurantID string) (string, error)
}
