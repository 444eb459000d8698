package campaign

import "time"

type Campaign struct {
	ID                string    `json:"id"`
	RestaurantID      string    `json:"restaurant_id"`
	Name              string    `json:"name"`
	CampaignStartedID *string   `json:"campaign_started_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type Conversation struct {
	ID           string    `json:"id"`
	CampaignID   string    `json:"campaign_id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Messages     []Message `json:"messages"`
	LastMessage  string    `json:"last_message"`
	LastUpdated  time.Time `json:"last_updated"`
	Unread       bool      `json:"unread"`
}

// CampaignView is a campaign with its conversations as served by the
// promotion endpoint.
type CampaignView struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	CreatedAt     time.Time      `json:"created_at"`
	Conversations []Conversation `json:"conversations"`
}

type ViewResponse struct {
	RestaurantID   string         `json:"restaurant_id"`
	RestaurantName string         `json:"restaurant_name"`
	Campaigns      []CampaignView `json:"campaigns"`
	Customers      []Customer     `json:"customers"`
}

// --------------------------------------------------
// Campaign start request/result
// --------------------------------------------------

type StartRequest struct {
	Name              string `json:"name"`
	CampaignStartedID string `json:"campaign_started_id"`
}

type StartResult struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Message       string `json:"message"`
	AlreadyExists bool   `json:"already_exists,omitempty"`
	SuccessCount  int    `json:"success_count,omitempty"`
	FailedCount   int    `json:"failed_count,omitempty"`
	TotalMessages int    `json:"total_messages,omitempty"`
}

// DispatchSummary counts the per-customer message dispatches of one
// campaign batch. Partial failures never abort the batch.
type DispatchSummary struct {
	Total   int
	Success int
	Failed  int
}
