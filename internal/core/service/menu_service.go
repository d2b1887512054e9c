package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

type menuService struct {
	repo ports.MenuRepository
}

func NewMenuService(repo ports.MenuRepository) ports.MenuService {
	return &menuService{repo: repo}
}

func (s *menuService) List(ctx context.Context) ([]*domain.MenuItem, error) {
	return s.repo.List(ctx)
}

func (s *menuService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *menuService) Create(ctx context.Context, item domain.MenuItem) (string, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Category = strings.ToLower(strings.TrimSpace(item.Category))
	if item.Name == "" || item.Category == "" || item.Price < 0 {
		return "", fmt.Errorf("create menu item: %w", domain.ErrInvalidInput)
	}
	item.ID = ""
	return s.repo.Insert(ctx, &item)
}

func (s *menuService) Update(ctx context.Context, id string, patch domain.MenuItemPatch) error {
	if patch.IsEmpty() {
		return fmt.Errorf("update menu item: %w: nothing to update", domain.ErrInvalidInput)
	}
	if patch.Price != nil && *patch.Price < 0 {
		return fmt.Errorf("update menu item: %w: negative price", domain.ErrInvalidInput)
	}
	if patch.Category != nil {
		c := strings.ToLower(strings.TrimSpace(*patch.Category))
		patch.Category = &c
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *menuService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
