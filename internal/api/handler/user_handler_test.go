package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/bistroboss/bistro-api/internal/api/middleware"
	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

type stubDirectory struct {
	upsertFn  func(ctx context.Context, name, email string) (*domain.UpsertResult, error)
	isAdminFn func(ctx context.Context, email string) (bool, error)
	promoteFn func(ctx context.Context, id string) error
	deleteFn  func(ctx context.Context, id string) error
	users     []*domain.User
}

func (s *stubDirectory) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubDirectory) UpsertIfAbsent(ctx context.Context, name, email string) (*domain.UpsertResult, error) {
	return s.upsertFn(ctx, name, email)
}

func (s *stubDirectory) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.isAdminFn(ctx, email)
}

func (s *stubDirectory) List(context.Context) ([]*domain.User, error) { return s.users, nil }

func (s *stubDirectory) Promote(ctx context.Context, id string) error { return s.promoteFn(ctx, id) }

func (s *stubDirectory) Delete(ctx context.Context, id string) error { return s.deleteFn(ctx, id) }

func TestUserHandler_Create(t *testing.T) {
	created := false
	stub := &stubDirectory{
		upsertFn: func(_ context.Context, name, email string) (*domain.UpsertResult, error) {
			if email != "new@example.com" {
				t.Fatalf("unexpected email %q", email)
			}
			if created {
				return &domain.UpsertResult{ID: "u1", Created: false}, nil
			}
			created = true
			return &domain.UpsertResult{ID: "u1", Created: true}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/users", `{"name":"New","email":"new@example.com"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["insertedId"] != "u1" || resp["created"] != true {
		t.Fatalf("unexpected payload: %+v", resp)
	}

	c, rec = newTestContext(http.MethodPost, "/users", `{"name":"New","email":"new@example.com"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for existing user, got %d", rec.Code)
	}
}

func TestUserHandler_AdminStatus(t *testing.T) {
	stub := &stubDirectory{
		isAdminFn: func(_ context.Context, email string) (bool, error) {
			return email == "boss@example.com", nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/users/admin/boss@example.com", "")
	c.Set(middleware.ContextClaim, &ports.IdentityClaim{Email: "boss@example.com"})

	if err := handler.AdminStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp adminStatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Admin {
		t.Fatal("expected admin=true")
	}
}

func TestUserHandler_AdminStatus_NoClaim(t *testing.T) {
	handler := NewUserHandler(&stubDirectory{})
	c, _ := newTestContext(http.MethodGet, "/users/admin/x@example.com", "")

	if code := httpCode(t, handler.AdminStatus(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestUserHandler_PromoteAndDelete_NotFound(t *testing.T) {
	stub := &stubDirectory{
		promoteFn: func(context.Context, string) error { return domain.ErrUserNotFound },
		deleteFn:  func(context.Context, string) error { return domain.ErrUserNotFound },
	}
	handler := NewUserHandler(stub)

	c, _ := newTestContext(http.MethodPatch, "/users/admin/x", "")
	c.SetParamNames("id")
	c.SetParamValues("x")
	if err := handler.Promote(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	c, _ = newTestContext(http.MethodDelete, "/users/x", "")
	c.SetParamNames("id")
	c.SetParamValues("x")
	if err := handler.Delete(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_List(t *testing.T) {
	handler := NewUserHandler(&stubDirectory{users: []*domain.User{{ID: "1", Email: "a@example.com"}}})
	c, rec := newTestContext(http.MethodGet, "/users", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 1 || users[0]["_id"] != "1" {
		t.Fatalf("unexpected users: %+v", users)
	}
}
