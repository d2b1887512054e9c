package ports

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// MenuRepository persists menu items.
type MenuRepository interface {
	List(ctx context.Context) ([]*domain.MenuItem, error)
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
	Insert(ctx context.Context, item *domain.MenuItem) (string, error)
	Update(ctx context.Context, id string, patch domain.MenuItemPatch) error
	Delete(ctx context.Context, id string) error
}

// MenuService exposes the menu catalog.
type MenuService interface {
	List(ctx context.Context) ([]*domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, item domain.MenuItem) (string, error)
	Update(ctx context.Context, id string, patch domain.MenuItemPatch) error
	Delete(ctx context.Context, id string) error
}

// ReviewRepository reads customer reviews.
type ReviewRepository interface {
	List(ctx context.Context) ([]*domain.Review, error)
}
