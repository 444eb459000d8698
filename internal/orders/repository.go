package orders

import "context"

type Repository interface {
	// Create inserts the order and its restaurant association in one
	// transaction.
	Create(ctx context.Context, restaurantID string, order *Order) error

	ListByRestaurant(ctx context.Context, restaurantID string) ([]Order, error)
}
