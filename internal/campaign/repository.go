package campaign

import "context"

type Repository interface {
	Create(ctx context.Context, campaign *Campaign) error
	FindByStartedID(ctx context.Context, restaurantID, startedID string) (*Campaign, error)
	HasStarted(ctx context.Context, restaurantID, dedupKey string) (bool, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]Campaign, error)

	CustomerIDs(ctx context.Context, restaurantID string) ([]string, error)
	GetCustomer(ctx context.Context, customerID string) (*Customer, error)
	CustomersByIDs(ctx context.Context, customerIDs []string) ([]Customer, error)

	ConversationsByCampaign(ctx context.Context, campaignID string) ([]Conversation, error)
	MessagesByConversation(ctx context.Context, conversationID string) ([]Message, error)
	CreateConversation(ctx context.Context, campaignID, customerID string) (string, error)
	CreateMessage(ctx context.Context, conversationID, role, message string) error
}
