package ports

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// DirectoryService is the account directory consulted by the access guard.
type DirectoryService interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpsertIfAbsent(ctx context.Context, name, email string) (*domain.UpsertResult, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*domain.User, error)
	Promote(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
