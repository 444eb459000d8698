package inventory

import (
	"context"

	"forkcast/internal/core"
)

type Service struct {
	repo        Repository
	restaurants core.RestaurantReader
}

func NewService(repo Repository, restaurants core.RestaurantReader) *Service {
	return &Service{
		repo:        repo,
		restaurants: restaurants,
	}
}

// --------------------------------------------------
// List inventory with outstanding order amounts
// --------------------------------------------------
func (s *Service) ListInventory(
	ctx context.Context,
	restaurantID string,
) (*ListResponse, error) {

	if _, err := s.restaurants.RestaurantName(ctx, restaurantID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	outstanding, err := s.repo.OutstandingOrders(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	views := make([]ItemView, 0, len(items))
	for _, it := range items {
		views = append(views, ItemView{
			ID:            it.ID,
			Item:          it.Item,
			Amount:        it.Amount,
			Unit:          it.Unit,
			OrderedAmount: outstanding[it.ID],
		})
	}

	return &ListResponse{RestaurantID: restaurantID, Items: views}, nil
}

// --------------------------------------------------
// Effective inventory snapshot (on-hand + ordered)
// --------------------------------------------------
func (s *Service) Effective(
	ctx context.Context,
	restaurantID string,
) (map[string]EffectiveItem, error) {

	items, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	outstanding, err := s.repo.OutstandingOrders(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	snapshot := make(map[string]EffectiveItem, len(items))
	for _, it := range items {
		ordered := outstanding[it.ID]
		snapshot[it.Item] = EffectiveItem{
			Amount:  it.Amount + ordered,
			OnHand:  it.Amount,
			Ordered: ordered,
			Unit:    it.Unit,
		}
	}

	return snapshot, nil
}
