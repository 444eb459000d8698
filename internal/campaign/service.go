package campaign

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"forkcast/internal/core"
)

// maxConcurrentSends bounds the campaign fan-out worker pool.
const maxConcurrentSends = 5

type Service struct {
	repo        Repository
	restaurants core.RestaurantReader
	promo       PromoWriter

	now func() time.Time
}

func NewService(
	repo Repository,
	restaurants core.RestaurantReader,
	promo PromoWriter,
) *Service {
	return &Service{
		repo:        repo,
		restaurants: restaurants,
		promo:       promo,
		now:         time.Now,
	}
}

// --------------------------------------------------
// Start campaign + message fan-out
// --------------------------------------------------
func (s *Service) StartCampaign(
	ctx context.Context,
	restaurantID string,
	req StartRequest,
) (*StartResult, error) {

	if _, err := s.restaurants.RestaurantName(ctx, restaurantID); err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = "Campaign " + s.now().Format("2006-01-02 15:04")
	}

	newCampaign := &Campaign{
		RestaurantID: restaurantID,
		Name:         name,
	}
	if req.CampaignStartedID != "" {
		newCampaign.CampaignStartedID = &req.CampaignStartedID

		// Same dedup key, same day: never send the batch twice.
		existing, err := s.repo.FindByStartedID(ctx, restaurantID, req.CampaignStartedID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return &StartResult{
				ID:   existing.ID,
				Name: existing.Name,
				Message: fmt.Sprintf(
					"Campaign with this identifier already exists (created on %s)",
					existing.CreatedAt.Format("2006-01-02"),
				),
				AlreadyExists: true,
			}, nil
		}
	}

	if err := s.repo.Create(ctx, newCampaign); err != nil {
		return nil, err
	}

	customerIDs, err := s.repo.CustomerIDs(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	log.Printf("starting campaign %q for %d customers", newCampaign.Name, len(customerIDs))

	if len(customerIDs) == 0 {
		return &StartResult{
			ID:      newCampaign.ID,
			Name:    newCampaign.Name,
			Message: "Campaign created but no customers found to send messages to",
		}, nil
	}

	summary := s.sendToAll(ctx, customerIDs, newCampaign.ID)

	return &StartResult{
		ID:            newCampaign.ID,
		Name:          newCampaign.Name,
		SuccessCount:  summary.Success,
		FailedCount:   summary.Failed,
		TotalMessages: summary.Total,
		Message: fmt.Sprintf(
			"Campaign created and %d messages sent successfully", summary.Success,
		),
	}, nil
}

// sendToAll dispatches one promo message per customer through a bounded
// worker pool. A failed dispatch only increments the failure count; the
// rest of the batch proceeds.
func (s *Service) sendToAll(
	ctx context.Context,
	customerIDs []string,
	campaignID string,
) DispatchSummary {

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		summary = DispatchSummary{Total: len(customerIDs)}
	)

	sem := make(chan struct{}, maxConcurrentSends)

	for _, customerID := range customerIDs {
		wg.Add(1)
		sem <- struct{}{}

		go func(customerID string) {
			defer wg.Done()
			defer func() { <-sem }()

			err := s.sendOne(ctx, customerID, campaignID)

			mu.Lock()
			if err != nil {
				summary.Failed++
			} else {
				summary.Success++
			}
			mu.Unlock()

			if err != nil {
				log.Printf("campaign %s: dispatch to customer %s failed: %v",
					campaignID, customerID, err)
			}
		}(customerID)
	}

	wg.Wait()
	log.Printf("campaign %s: %d/%d messages sent", campaignID, summary.Success, summary.Total)

	return summary
}

func (s *Service) sendOne(
	ctx context.Context,
	customerID string,
	campaignID string,
) error {

	customer, err := s.repo.GetCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return fmt.Errorf("customer %s not found", customerID)
	}

	message, err := s.promo.PromoMessage(ctx, customer.Name)
	if err != nil {
		return fmt.Errorf("fetch promo message: %w", err)
	}

	conversationID, err := s.repo.CreateConversation(ctx, campaignID, customerID)
	if err != nil {
		return err
	}

	return s.repo.CreateMessage(ctx, conversationID, "system", message)
}

// --------------------------------------------------
// Promotion management view
// --------------------------------------------------
func (s *Service) RestaurantCampaigns(
	ctx context.Context,
	restaurantID string,
) (*ViewResponse, error) {

	restaurantName, err := s.restaurants.RestaurantName(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	resp := &ViewResponse{
		RestaurantID:   restaurantID,
		RestaurantName: restaurantName,
		Campaigns:      []CampaignView{},
		Customers:      []Customer{},
	}

	customerIDSet := make(map[string]bool)

	for _, c := range campaigns {
		view := CampaignView{
			ID:            c.ID,
			Name:          c.Name,
			Description:   "Promotional campaign",
			CreatedAt:     c.CreatedAt,
			Conversations: []Conversation{},
		}
		if view.Name == "" {
			view.Name = "Campaign " + shortID(c.ID)
		}

		conversations, err := s.repo.ConversationsByCampaign(ctx, c.ID)
		if err != nil {
			return nil, err
		}

		for _, conv := range conversations {
			customerIDSet[conv.CustomerID] = true

			messages, err := s.repo.MessagesByConversation(ctx, conv.ID)
			if err != nil {
				return nil, err
			}
			if messages == nil {
				messages = []Message{}
			}

			conv.Messages = messages
			if len(messages) > 0 {
				last := messages[len(messages)-1]
				conv.LastMessage = truncate(last.Message, 50)
				conv.LastUpdated = last.Timestamp
			} else {
				conv.LastUpdated = s.now()
			}

			view.Conversations = append(view.Conversations, conv)
		}

		resp.Campaigns = append(resp.Campaigns, view)
	}

	customerIDs := make([]string, 0, len(customerIDSet))
	for id := range customerIDSet {
		customerIDs = append(customerIDs, id)
	}

	customers, err := s.repo.CustomersByIDs(ctx, customerIDs)
	if err != nil {
		return nil, err
	}
	if customers != nil {
		resp.Customers = customers
	}

	// Fill customer names on the conversations now that we have them.
	nameByID := make(map[string]string, len(customers))
	for _, c := range customers {
		nameByID[c.ID] = c.Name
	}
	for i := range resp.Campaigns {
		for j := range resp.Campaigns[i].Conversations {
			conv := &resp.Campaigns[i].Conversations[j]
			if name, ok := nameByID[conv.CustomerID]; ok {
				conv.CustomerName = name
			} else {
				conv.CustomerName = "Unknown"
			}
		}
	}

	return resp, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
