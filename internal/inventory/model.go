package inventory

// Item is one inventory row for a restaurant.
type Item struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Item         string `json:"item"`
	Amount       int    `json:"amount"`
	Unit         string `json:"unit"`
}

// ItemView is an inventory row as served by the inventory endpoint,
// including the quantity already on order.
type ItemView struct {
	ID            string `json:"id"`
	Item          string `json:"item"`
	Amount        int    `json:"amount"`
	Unit          string `json:"unit"`
	OrderedAmount int    `json:"ordered_amount"`
}

type ListResponse struct {
	RestaurantID string     `json:"restaurant_id"`
	Items        []ItemView `json:"items"`
}

// EffectiveItem is the reconciliation engine's view of one ingredient:
// on-hand stock plus outstanding (placed but unreceived) orders.
type EffectiveItem struct {
	Amount  int    // on-hand + ordered
	OnHand  int
	Ordered int
	Unit    string
}
