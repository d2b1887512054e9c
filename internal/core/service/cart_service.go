package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

type cartService struct {
	repo ports.CartRepository
}

// NewCartService returns the cart store. It does not enforce ownership.
func NewCartService(repo ports.CartRepository) ports.CartService {
	return &cartService{repo: repo}
}

func (s *cartService) Add(ctx context.Context, in ports.AddCartEntryInput) (string, error) {
	email := domain.NormalizeEmail(in.Email)
	if email == "" || in.MenuID == "" {
		return "", fmt.Errorf("add cart entry: %w: email and menuId are required", domain.ErrInvalidInput)
	}
	if in.Price < 0 {
		return "", fmt.Errorf("add cart entry: %w: negative price", domain.ErrInvalidInput)
	}

	id, err := s.repo.Insert(ctx, &domain.CartEntry{
		Email:     email,
		MenuID:    in.MenuID,
		Name:      in.Name,
		Image:     in.Image,
		Price:     in.Price,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("add cart entry: %w", err)
	}
	return id, nil
}

func (s *cartService) ListForUser(ctx context.Context, email string) ([]*domain.CartEntry, error) {
	return s.repo.ListByEmail(ctx, domain.NormalizeEmail(email))
}

func (s *cartService) RemoveOne(ctx context.Context, id string) error {
	return s.repo.DeleteOne(ctx, id)
}

func (s *cartService) RemoveMany(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return s.repo.DeleteMany(ctx, ids)
}
