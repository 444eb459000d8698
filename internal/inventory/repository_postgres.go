package inventory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrItemNotFound = errors.New("inventory item not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// List inventory for a restaurant
// --------------------------------------------------
func (r *PostgresRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID string,
) ([]Item, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, item, amount, unit
		FROM inventory
		WHERE restaurant_id = $1
		ORDER BY item
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.RestaurantID, &it.Item, &it.Amount, &it.Unit); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// --------------------------------------------------
// Get one item, scoped to the restaurant
// --------------------------------------------------
func (r *PostgresRepository) GetItem(
	ctx context.Context,
	restaurantID string,
	inventoryID string,
) (*Item, error) {

	var it Item
	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, item, amount, unit
		FROM inventory
		WHERE id = $1 AND restaurant_id = $2
	`, inventoryID, restaurantID).Scan(
		&it.ID,
		&it.RestaurantID,
		&it.Item,
		&it.Amount,
		&it.Unit,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	return &it, nil
}

// --------------------------------------------------
// Outstanding order amounts per inventory item
// --------------------------------------------------
func (r *PostgresRepository) OutstandingOrders(
	ctx context.Context,
	restaurantID string,
) (map[string]int, error) {

	rows, err := r.db.Query(ctx, `
		SELECT o.inventory_id, COALESCE(SUM(o.order_amount), 0)
		FROM orders o
		JOIN restaurant_orders ro ON ro.order_id = o.id
		WHERE ro.restaurant_id = $1
		GROUP BY o.inventory_id
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	outstanding := make(map[string]int)
	for rows.Next() {
		var inventoryID string
		var amount int
		if err := rows.Scan(&inventoryID, &amount); err != nil {
			return nil, err
		}
		outstanding[inventoryID] = amount
	}

	return outstanding, rows.Err()
}
