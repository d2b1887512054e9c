package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// DirectoryService implements the account directory on top of a UserRepository.
type DirectoryService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewDirectoryService(repo ports.UserRepository, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{repo: repo, log: log}
}

func (s *DirectoryService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil, domain.ErrUserNotFound
	}
	return s.repo.FindByEmail(ctx, email)
}

// UpsertIfAbsent creates the user on first sign-in. Duplicates are prevented
// by an existence lookup, not a unique index, so two racing first logins can
// both insert.
func (s *DirectoryService) UpsertIfAbsent(ctx context.Context, name, email string) (*domain.UpsertResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("upsert user: %w: email is required", domain.ErrInvalidInput)
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return &domain.UpsertResult{ID: existing.ID, Created: false}, nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	id, err := s.repo.Create(ctx, &domain.User{
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	s.log.Info().Str("email", email).Str("user_id", id).Msg("user created")
	return &domain.UpsertResult{ID: id, Created: true}, nil
}

// IsAdmin reports false for unknown users instead of failing.
func (s *DirectoryService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

func (s *DirectoryService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *DirectoryService) Promote(ctx context.Context, id string) error {
	if err := s.repo.SetRole(ctx, id, domain.RoleAdmin); err != nil {
		return fmt.Errorf("promote user: %w", err)
	}
	s.log.Info().Str("user_id", id).Msg("user promoted to admin")
	return nil
}

func (s *DirectoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
