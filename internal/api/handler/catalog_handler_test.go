package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

type stubCartService struct {
	addFn    func(ctx context.Context, in ports.AddCartEntryInput) (string, error)
	listFn   func(ctx context.Context, email string) ([]*domain.CartEntry, error)
	removeFn func(ctx context.Context, id string) error
}

func (s *stubCartService) Add(ctx context.Context, in ports.AddCartEntryInput) (string, error) {
	return s.addFn(ctx, in)
}

func (s *stubCartService) ListForUser(ctx context.Context, email string) ([]*domain.CartEntry, error) {
	return s.listFn(ctx, email)
}

func (s *stubCartService) RemoveOne(ctx context.Context, id string) error { return s.removeFn(ctx, id) }

func (s *stubCartService) RemoveMany(context.Context, []string) (int64, error) { return 0, nil }

type stubMenuService struct {
	items    map[string]*domain.MenuItem
	createFn func(ctx context.Context, item domain.MenuItem) (string, error)
	updateFn func(ctx context.Context, id string, patch domain.MenuItemPatch) error
}

func (s *stubMenuService) List(context.Context) ([]*domain.MenuItem, error) {
	out := make([]*domain.MenuItem, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	return out, nil
}

func (s *stubMenuService) Get(_ context.Context, id string) (*domain.MenuItem, error) {
	if it, ok := s.items[id]; ok {
		return it, nil
	}
	return nil, domain.ErrMenuItemNotFound
}

func (s *stubMenuService) Create(ctx context.Context, item domain.MenuItem) (string, error) {
	return s.createFn(ctx, item)
}

func (s *stubMenuService) Update(ctx context.Context, id string, patch domain.MenuItemPatch) error {
	return s.updateFn(ctx, id, patch)
}

func (s *stubMenuService) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return domain.ErrMenuItemNotFound
	}
	delete(s.items, id)
	return nil
}

type stubReviewRepo struct{ reviews []*domain.Review }

func (s *stubReviewRepo) List(context.Context) ([]*domain.Review, error) { return s.reviews, nil }

type stubStatsService struct {
	admin  *domain.AdminStats
	orders []domain.CategoryStats
	err    error
}

func (s *stubStatsService) AdminStats(context.Context) (*domain.AdminStats, error) {
	return s.admin, s.err
}

func (s *stubStatsService) OrderStats(context.Context) ([]domain.CategoryStats, error) {
	return s.orders, s.err
}

func TestCartHandler_List_RequiresEmail(t *testing.T) {
	handler := NewCartHandler(&stubCartService{})
	c, _ := newTestContext(http.MethodGet, "/carts", "")

	if code := httpCode(t, handler.List(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestCartHandler_List(t *testing.T) {
	stub := &stubCartService{
		listFn: func(_ context.Context, email string) ([]*domain.CartEntry, error) {
			if email != "self@example.com" {
				t.Fatalf("unexpected email %q", email)
			}
			return []*domain.CartEntry{{ID: "c1", Email: email, Price: 10}}, nil
		},
	}
	c, rec := newTestContext(http.MethodGet, "/carts?email=self@example.com", "")

	if err := NewCartHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var entries []domain.CartEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "c1" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestCartHandler_Add(t *testing.T) {
	stub := &stubCartService{
		addFn: func(_ context.Context, in ports.AddCartEntryInput) (string, error) {
			if in.MenuID != "m1" || in.Price != 12.5 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return "c9", nil
		},
	}
	c, rec := newTestContext(http.MethodPost, "/carts", `{"email":"self@example.com","menuId":"m1","name":"Soup","price":12.5}`)

	if err := NewCartHandler(stub).Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"insertedId":"c9"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestCartHandler_Remove_NotFound(t *testing.T) {
	stub := &stubCartService{
		removeFn: func(context.Context, string) error { return domain.ErrCartEntryNotFound },
	}
	c, _ := newTestContext(http.MethodDelete, "/carts/x", "")
	c.SetParamNames("id")
	c.SetParamValues("x")

	if err := NewCartHandler(stub).Remove(c); !errors.Is(err, domain.ErrCartEntryNotFound) {
		t.Fatalf("expected ErrCartEntryNotFound, got %v", err)
	}
}

func TestMenuHandler_GetAndDelete(t *testing.T) {
	stub := &stubMenuService{items: map[string]*domain.MenuItem{
		"m1": {ID: "m1", Name: "Salad", Category: "salad", Price: 9},
	}}
	handler := NewMenuHandler(stub, &stubReviewRepo{})

	c, rec := newTestContext(http.MethodGet, "/menu/m1", "")
	c.SetParamNames("id")
	c.SetParamValues("m1")
	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"Salad"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}

	c, _ = newTestContext(http.MethodDelete, "/menu/m1", "")
	c.SetParamNames("id")
	c.SetParamValues("m1")
	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	c, _ = newTestContext(http.MethodGet, "/menu/m1", "")
	c.SetParamNames("id")
	c.SetParamValues("m1")
	if err := handler.Get(c); !errors.Is(err, domain.ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
}

func TestMenuHandler_Create_Validates(t *testing.T) {
	stub := &stubMenuService{
		createFn: func(context.Context, domain.MenuItem) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewMenuHandler(stub, &stubReviewRepo{})

	c, _ := newTestContext(http.MethodPost, "/menu", `{"name":"Soup","price":-1}`)
	if code := httpCode(t, handler.Create(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestMenuHandler_Update_PassesOnlyProvidedFields(t *testing.T) {
	stub := &stubMenuService{
		updateFn: func(_ context.Context, id string, patch domain.MenuItemPatch) error {
			if id != "m1" {
				t.Fatalf("unexpected id %q", id)
			}
			if patch.Price == nil || *patch.Price != 11 {
				t.Fatalf("expected price patch, got %+v", patch)
			}
			if patch.Name != nil || patch.Category != nil {
				t.Fatalf("unexpected fields in patch: %+v", patch)
			}
			return nil
		},
	}
	handler := NewMenuHandler(stub, &stubReviewRepo{})

	c, rec := newTestContext(http.MethodPatch, "/menu/m1", `{"price":11}`)
	c.SetParamNames("id")
	c.SetParamValues("m1")
	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMenuHandler_Reviews(t *testing.T) {
	handler := NewMenuHandler(&stubMenuService{}, &stubReviewRepo{reviews: []*domain.Review{{ID: "r1", Name: "Ana", Rating: 5}}})

	c, rec := newTestContext(http.MethodGet, "/reviews", "")
	if err := handler.Reviews(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"r1"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestStatsHandler(t *testing.T) {
	stub := &stubStatsService{
		admin:  &domain.AdminStats{Users: 3, MenuItems: 10, Orders: 2, TotalRevenue: 60},
		orders: []domain.CategoryStats{{Category: "pizza", Quantity: 2, Revenue: 40}},
	}
	handler := NewStatsHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/admin-stats", "")
	if err := handler.AdminStats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var admin domain.AdminStats
	if err := json.Unmarshal(rec.Body.Bytes(), &admin); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if admin != *stub.admin {
		t.Fatalf("unexpected stats: %+v", admin)
	}

	c, rec = newTestContext(http.MethodGet, "/order-stats", "")
	if err := handler.OrderStats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"category":"pizza"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestStatsHandler_PropagatesError(t *testing.T) {
	boom := errors.New("aggregation failed")
	handler := NewStatsHandler(&stubStatsService{err: boom})

	c, _ := newTestContext(http.MethodGet, "/admin-stats", "")
	if err := handler.AdminStats(c); !errors.Is(err, boom) {
		t.Fatalf("expected aggregation error, got %v", err)
	}
}
