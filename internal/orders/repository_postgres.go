package orders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"forkcast/internal/ids"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create order + restaurant association
// --------------------------------------------------
func (r *PostgresRepository) Create(
	ctx context.Context,
	restaurantID string,
	order *Order,
) error {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	order.ID = ids.New()

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (id, inventory_id, order_amount)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`,
		order.ID,
		order.InventoryID,
		order.OrderAmount,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO restaurant_orders (restaurant_id, order_id)
		VALUES ($1, $2)
	`, restaurantID, order.ID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// List orders for a restaurant, with item details
// --------------------------------------------------
func (r *PostgresRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID string,
) ([]Order, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			o.id,
			o.inventory_id,
			o.order_amount,
			o.created_at,
			o.updated_at,
			i.item,
			i.unit
		FROM orders o
		JOIN restaurant_orders ro ON ro.order_id = o.id
		JOIN inventory i ON i.id = o.inventory_id
		WHERE ro.restaurant_id = $1
		ORDER BY o.created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.InventoryID,
			&o.OrderAmount,
			&o.CreatedAt,
			&o.UpdatedAt,
			&o.ItemName,
			&o.Unit,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}
