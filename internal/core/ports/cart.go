package ports

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// CartRepository persists cart entries. It enforces no ownership; callers
// scope by email.
type CartRepository interface {
	Insert(ctx context.Context, entry *domain.CartEntry) (string, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.CartEntry, error)
	DeleteOne(ctx context.Context, id string) error
	// DeleteMany removes every entry whose id is in ids and returns how many
	// rows were actually deleted. Already-absent ids are not an error.
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}

// AddCartEntryInput is the DTO for adding an item to a cart.
type AddCartEntryInput struct {
	Email  string
	MenuID string
	Name   string
	Image  string
	Price  float64
}

// CartService is the cart store used by the cart endpoints and settlement.
type CartService interface {
	Add(ctx context.Context, in AddCartEntryInput) (string, error)
	ListForUser(ctx context.Context, email string) ([]*domain.CartEntry, error)
	RemoveOne(ctx context.Context, id string) error
	RemoveMany(ctx context.Context, ids []string) (int64, error)
}
