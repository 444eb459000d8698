package orders

import (
	"context"
	"errors"

	"forkcast/internal/core"
	"forkcast/internal/inventory"
)

var ErrInvalidAmount = errors.New("order amount must be positive")

type Service struct {
	repo          Repository
	inventoryRepo inventory.Repository
	restaurants   core.RestaurantReader
}

func NewService(
	repo Repository,
	inventoryRepo inventory.Repository,
	restaurants core.RestaurantReader,
) *Service {
	return &Service{
		repo:          repo,
		inventoryRepo: inventoryRepo,
		restaurants:   restaurants,
	}
}

// --------------------------------------------------
// Create order
// --------------------------------------------------
func (s *Service) CreateOrder(
	ctx context.Context,
	restaurantID string,
	req CreateRequest,
) (*Order, error) {

	if req.OrderAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	if _, err := s.restaurants.RestaurantName(ctx, restaurantID); err != nil {
		return nil, err
	}

	// The item must exist and belong to this restaurant.
	item, err := s.inventoryRepo.GetItem(ctx, restaurantID, req.InventoryID)
	if err != nil {
		return nil, err
	}

	order := &Order{
		InventoryID: req.InventoryID,
		OrderAmount: req.OrderAmount,
		ItemName:    item.Item,
		Unit:        item.Unit,
	}

	if err := s.repo.Create(ctx, restaurantID, order); err != nil {
		return nil, err
	}

	return order, nil
}

// --------------------------------------------------
// List orders
// --------------------------------------------------
func (s *Service) ListOrders(
	ctx context.Context,
	restaurantID string,
) ([]Order, error) {

	if _, err := s.restaurants.RestaurantName(ctx, restaurantID); err != nil {
		return nil, err
	}

	return s.repo.ListByRestaurant(ctx, restaurantID)
}
