package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"forkcast/internal/ids"
)

type seedCustomer struct {
	Name string `json:"name"`
}

type seedInventoryItem struct {
	Item   string `json:"item"`
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
}

type seedMessage struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

type seedConversation struct {
	Campaign string        `json:"campaign"`
	Customer string        `json:"customer"`
	Messages []seedMessage `json:"messages"`
}

type seedCampaign struct {
	Name string `json:"name"`
}

type seedRestaurant struct {
	Name          string              `json:"name"`
	Inventory     []seedInventoryItem `json:"inventory"`
	Customers     []seedCustomer      `json:"customers"`
	Campaigns     []seedCampaign      `json:"campaigns"`
	Conversations []seedConversation  `json:"conversations"`
}

type seedFile struct {
	Restaurants []seedRestaurant `json:"restaurants"`
}

// Seed loads the demo dataset from path. It is a no-op when the
// database already contains restaurants.
func Seed(ctx context.Context, pool *pgxpool.Pool, path string) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Println("Database already seeded, skipping")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file seedFile
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}
	if len(file.Restaurants) == 0 {
		return errors.New("seed file contains no restaurants")
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, r := range file.Restaurants {
		restaurantID := ids.New()
		if _, err := tx.Exec(ctx,
			`INSERT INTO restaurants (id, name) VALUES ($1, $2)`,
			restaurantID, r.Name,
		); err != nil {
			return err
		}

		for _, item := range r.Inventory {
			unit := item.Unit
			if unit == "" {
				unit = "units"
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO inventory (id, restaurant_id, item, amount, unit)
				 VALUES ($1, $2, $3, $4, $5)`,
				ids.New(), restaurantID, item.Item, item.Amount, unit,
			); err != nil {
				return err
			}
		}

		customerIDs := make(map[string]string, len(r.Customers))
		for _, c := range r.Customers {
			customerID := ids.New()
			if _, err := tx.Exec(ctx,
				`INSERT INTO customers (id, name) VALUES ($1, $2)`,
				customerID, c.Name,
			); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO restaurant_customers (restaurant_id, customer_id)
				 VALUES ($1, $2)`,
				restaurantID, customerID,
			); err != nil {
				return err
			}
			customerIDs[c.Name] = customerID
		}

		campaignIDs := make(map[string]string, len(r.Campaigns))
		for _, c := range r.Campaigns {
			campaignID := ids.New()
			if _, err := tx.Exec(ctx,
				`INSERT INTO campaigns (id, restaurant_id, name)
				 VALUES ($1, $2, $3)`,
				campaignID, restaurantID, c.Name,
			); err != nil {
				return err
			}
			campaignIDs[c.Name] = campaignID
		}

		for _, conv := range r.Conversations {
			campaignID, ok := campaignIDs[conv.Campaign]
			if !ok {
				return fmt.Errorf("seed conversation references unknown campaign %q", conv.Campaign)
			}
			customerID, ok := customerIDs[conv.Customer]
			if !ok {
				return fmt.Errorf("seed conversation references unknown customer %q", conv.Customer)
			}

			conversationID := ids.New()
			if _, err := tx.Exec(ctx,
				`INSERT INTO conversations (id, campaign_id, customer_id)
				 VALUES ($1, $2, $3)`,
				conversationID, campaignID, customerID,
			); err != nil {
				return err
			}

			for _, m := range conv.Messages {
				if _, err := tx.Exec(ctx,
					`INSERT INTO messages (id, conversation_id, role, message)
					 VALUES ($1, $2, $3, $4)`,
					ids.New(), conversationID, m.Role, m.Message,
				); err != nil {
					return err
				}
			}
		}

		log.Printf("Seeded restaurant %s (%d inventory items, %d customers)",
			r.Name, len(r.Inventory), len(r.Customers))
	}

	return tx.Commit(ctx)
}
