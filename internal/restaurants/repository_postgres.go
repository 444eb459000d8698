package restaurants

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"forkcast/internal/core"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// List all restaurants
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]Restaurant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name
		FROM restaurants
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []Restaurant
	for rows.Next() {
		var res Restaurant
		if err := rows.Scan(&res.ID, &res.Name); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, res)
	}

	return restaurants, rows.Err()
}

// --------------------------------------------------
// Restaurant existence check (core.RestaurantReader)
// --------------------------------------------------
func (r *PostgresRepository) RestaurantName(
	ctx context.Context,
	restaurantID string,
) (string, error) {

	var name string
	err := r.db.QueryRow(ctx, `
		SELECT name
		FROM restaurants
		WHERE id = $1
	`, restaurantID).Scan(&name)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", core.ErrRestaurantNotFound
	}
	if err != nil {
		return "", err
	}

	return name, nil
}
