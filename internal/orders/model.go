package orders

import "time"

type Order struct {
	ID          string    `json:"id"`
	InventoryID string    `json:"inventory_id"`
	OrderAmount int       `json:"order_amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ItemName    string    `json:"item_name"`
	Unit        string    `json:"unit"`
}

type CreateRequest struct {
	InventoryID string `json:"inventory_id"`
	OrderAmount int    `json:"order_amount"`
}

type ListResponse struct {
	Orders []Order `json:"orders"`
}
