package core

import (
	"context"
	"errors"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantReader is the read-only restaurant lookup shared by the
// feature packages. Implemented by restaurants.PostgresRepository.
type RestaurantReader interface {
	// RestaurantName returns the display name for the restaurant, or
	// ErrRestaurantNotFound if the id is unknown.
	RestaurantName(ctx context.Context, restaurantID string) (string, error)
}
