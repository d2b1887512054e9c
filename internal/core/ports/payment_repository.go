package ports

import (
	"context"
	"time"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// PaymentRepository persists payments and performs the settlement
// compare-and-swap.
type PaymentRepository interface {
	Insert(ctx context.Context, p *domain.Payment) (string, error)
	FindByTransactionID(ctx context.Context, tranID string) (*domain.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Payment, error)

	// MarkSucceeded atomically moves the payment with tranID from pending to
	// success and returns the updated document. When no pending payment
	// matches it returns domain.ErrPaymentNotFound; the caller re-reads to
	// tell "absent" from "already settled".
	MarkSucceeded(ctx context.Context, tranID string, at time.Time) (*domain.Payment, error)

	// MarkCartsCleared flags a settled payment whose cart entries are gone.
	MarkCartsCleared(ctx context.Context, id string) error

	// ListUncleared returns settled payments whose cart cleanup has not been
	// confirmed, oldest first, at most limit rows.
	ListUncleared(ctx context.Context, limit int) ([]*domain.Payment, error)
}
