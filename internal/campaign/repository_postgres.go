package campaign

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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
// Campaigns
// --------------------------------------------------

func (r *PostgresRepository) Create(ctx context.Context, campaign *Campaign) error {
	campaign.ID = ids.New()

	return r.db.QueryRow(ctx, `
		INSERT INTO campaigns (id, restaurant_id, name, campaign_started_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`,
		campaign.ID,
		campaign.RestaurantID,
		campaign.Name,
		campaign.CampaignStartedID,
	).Scan(&campaign.CreatedAt)
}

func (r *PostgresRepository) FindByStartedID(
	ctx context.Context,
	restaurantID string,
	startedID string,
) (*Campaign, error) {

	var c Campaign
	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, name, campaign_started_id, created_at
		FROM campaigns
		WHERE restaurant_id = $1 AND campaign_started_id = $2
	`, restaurantID, startedID).Scan(
		&c.ID,
		&c.RestaurantID,
		&c.Name,
		&c.CampaignStartedID,
		&c.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// HasStarted implements reconcile.CampaignStore.
func (r *PostgresRepository) HasStarted(
	ctx context.Context,
	restaurantID string,
	dedupKey string,
) (bool, error) {

	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM campaigns
			WHERE restaurant_id = $1 AND campaign_started_id = $2
		)
	`, restaurantID, dedupKey).Scan(&exists)

	return exists, err
}

func (r *PostgresRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID string,
) ([]Campaign, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, name, campaign_started_id, created_at
		FROM campaigns
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []Campaign
	for rows.Next() {
		var c Campaign
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.CampaignStartedID, &c.CreatedAt); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}

	return campaigns, rows.Err()
}

// --------------------------------------------------
// Customers
// --------------------------------------------------

func (r *PostgresRepository) CustomerIDs(
	ctx context.Context,
	restaurantID string,
) ([]string, error) {

	rows, err := r.db.Query(ctx, `
		SELECT customer_id
		FROM restaurant_customers
		WHERE restaurant_id = $1
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customerIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		customerIDs = append(customerIDs, id)
	}

	return customerIDs, rows.Err()
}

func (r *PostgresRepository) GetCustomer(
	ctx context.Context,
	customerID string,
) (*Customer, error) {

	var c Customer
	err := r.db.QueryRow(ctx, `
		SELECT id, name
		FROM customers
		WHERE id = $1
	`, customerID).Scan(&c.ID, &c.Name)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *PostgresRepository) CustomersByIDs(
	ctx context.Context,
	customerIDs []string,
) ([]Customer, error) {

	if len(customerIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name
		FROM customers
		WHERE id = ANY($1)
		ORDER BY name
	`, customerIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

// --------------------------------------------------
// Conversations + messages
// --------------------------------------------------

func (r *PostgresRepository) ConversationsByCampaign(
	ctx context.Context,
	campaignID string,
) ([]Conversation, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, campaign_id, customer_id
		FROM conversations
		WHERE campaign_id = $1
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversations []Conversation
	for rows.Next() {
		var conv Conversation
		if err := rows.Scan(&conv.ID, &conv.CampaignID, &conv.CustomerID); err != nil {
			return nil, err
		}
		conversations = append(conversations, conv)
	}

	return conversations, rows.Err()
}

func (r *PostgresRepository) MessagesByConversation(
	ctx context.Context,
	conversationID string,
) ([]Message, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, role, message, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Role, &m.Message, &m.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

func (r *PostgresRepository) CreateConversation(
	ctx context.Context,
	campaignID string,
	customerID string,
) (string, error) {

	id := ids.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO conversations (id, campaign_id, customer_id)
		VALUES ($1, $2, $3)
	`, id, campaignID, customerID)

	return id, err
}

func (r *PostgresRepository) CreateMessage(
	ctx context.Context,
	conversationID string,
	role string,
	message string,
) error {

	_, err := r.db.Exec(ctx, `
		INSERT INTO messages (id, conversation_id, role, message)
		VALUES ($1, $2, $3, $4)
	`, ids.New(), conversationID, role, message)

	return err
}
