package ports

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// UserRepository defines persistence for the account directory.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (string, error)
	List(ctx context.Context) ([]*domain.User, error)
	// SetRole returns domain.ErrUserNotFound when no user has the id.
	SetRole(ctx context.Context, id, role string) error
	Delete(ctx context.Context, id string) error
}
