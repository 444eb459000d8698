package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// RESTAURANTS
	// -------------------------------
	restaurantsSQL := `
		CREATE TABLE IF NOT EXISTS restaurants (
			id VARCHAR(32) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, restaurantsSQL); err != nil {
		return err
	}

	// -------------------------------
	// INVENTORY
	// -------------------------------
	inventorySQL := `
		CREATE TABLE IF NOT EXISTS inventory (
			id VARCHAR(32) PRIMARY KEY,
			restaurant_id VARCHAR(32) NOT NULL REFERENCES restaurants(id),
			item VARCHAR(255) NOT NULL,
			amount INTEGER NOT NULL,
			unit VARCHAR(50) NOT NULL DEFAULT 'units',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, inventorySQL); err != nil {
		return err
	}

	indexInventorySQL := `
		CREATE INDEX IF NOT EXISTS idx_inventory_restaurant
		ON inventory (restaurant_id)
	`
	if _, err := pool.Exec(ctx, indexInventorySQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS
	// -------------------------------
	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id VARCHAR(32) PRIMARY KEY,
			inventory_id VARCHAR(32) NOT NULL REFERENCES inventory(id),
			order_amount INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	restaurantOrdersSQL := `
		CREATE TABLE IF NOT EXISTS restaurant_orders (
			restaurant_id VARCHAR(32) NOT NULL REFERENCES restaurants(id),
			order_id VARCHAR(32) NOT NULL REFERENCES orders(id),
			PRIMARY KEY (restaurant_id, order_id)
		)
	`
	if _, err := pool.Exec(ctx, restaurantOrdersSQL); err != nil {
		return err
	}

	// -------------------------------
	// CAMPAIGNS
	// -------------------------------
	campaignsSQL := `
		CREATE TABLE IF NOT EXISTS campaigns (
			id VARCHAR(32) PRIMARY KEY,
			restaurant_id VARCHAR(32) NOT NULL REFERENCES restaurants(id),
			name VARCHAR(255),
			campaign_started_id VARCHAR(255),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, campaignsSQL); err != nil {
		return err
	}

	// Older deployments predate the name and dedup columns.
	campaignColumnsSQL := `
		ALTER TABLE campaigns
		ADD COLUMN IF NOT EXISTS name VARCHAR(255);

		ALTER TABLE campaigns
		ADD COLUMN IF NOT EXISTS campaign_started_id VARCHAR(255)
	`
	if _, err := pool.Exec(ctx, campaignColumnsSQL); err != nil {
		log.Println("Note: campaign columns may already exist")
	}

	indexCampaignsSQL := `
		CREATE INDEX IF NOT EXISTS idx_campaigns_started
		ON campaigns (restaurant_id, campaign_started_id)
	`
	if _, err := pool.Exec(ctx, indexCampaignsSQL); err != nil {
		return err
	}

	// -------------------------------
	// CUSTOMERS + ASSOCIATIONS
	// -------------------------------
	customersSQL := `
		CREATE TABLE IF NOT EXISTS customers (
			id VARCHAR(32) PRIMARY KEY,
			name VARCHAR(255) NOT NULL
		)
	`
	if _, err := pool.Exec(ctx, customersSQL); err != nil {
		return err
	}

	restaurantCustomersSQL := `
		CREATE TABLE IF NOT EXISTS restaurant_customers (
			restaurant_id VARCHAR(32) NOT NULL REFERENCES restaurants(id),
			customer_id VARCHAR(32) NOT NULL REFERENCES customers(id),
			PRIMARY KEY (restaurant_id, customer_id)
		)
	`
	if _, err := pool.Exec(ctx, restaurantCustomersSQL); err != nil {
		return err
	}

	// -------------------------------
	// CONVERSATIONS + MESSAGES
	// -------------------------------
	conversationsSQL := `
		CREATE TABLE IF NOT EXISTS conversations (
			id VARCHAR(32) PRIMARY KEY,
			campaign_id VARCHAR(32) NOT NULL REFERENCES campaigns(id),
			customer_id VARCHAR(32) NOT NULL REFERENCES customers(id),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, conversationsSQL); err != nil {
		return err
	}

	messagesSQL := `
		CREATE TABLE IF NOT EXISTS messages (
			id VARCHAR(32) PRIMARY KEY,
			conversation_id VARCHAR(32) NOT NULL REFERENCES conversations(id),
			role VARCHAR(50) NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, messagesSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
