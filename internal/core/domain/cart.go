package domain

import "time"

// CartEntry is one selected menu item in a user's cart. Price is a snapshot
// taken when the item was added.
type CartEntry struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	MenuID    string    `json:"menuId"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}
