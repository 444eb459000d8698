package inventory

import "context"

type Repository interface {
	ListByRestaurant(ctx context.Context, restaurantID string) ([]Item, error)

	// GetItem returns the inventory item only if it belongs to the
	// restaurant.
	GetItem(ctx context.Context, restaurantID, inventoryID string) (*Item, error)

	// OutstandingOrders returns, per inventory item id, the summed
	// order_amount of all orders placed for this restaurant.
	OutstandingOrders(ctx context.Context, restaurantID string) (map[string]int, error)
}
