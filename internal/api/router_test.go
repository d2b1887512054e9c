package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bistroboss/bistro-api/internal/api/handler"
	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
	"github.com/bistroboss/bistro-api/internal/core/service"
)

type routerDirectory struct {
	admins map[string]bool
}

func (d *routerDirectory) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (d *routerDirectory) UpsertIfAbsent(context.Context, string, string) (*domain.UpsertResult, error) {
	return &domain.UpsertResult{ID: "u1", Created: true}, nil
}

func (d *routerDirectory) IsAdmin(_ context.Context, email string) (bool, error) {
	return d.admins[email], nil
}

func (d *routerDirectory) List(context.Context) ([]*domain.User, error) {
	return []*domain.User{}, nil
}

func (d *routerDirectory) Promote(context.Context, string) error { return nil }

func (d *routerDirectory) Delete(context.Context, string) error { return nil }

type routerStats struct{}

func (routerStats) AdminStats(context.Context) (*domain.AdminStats, error) {
	return &domain.AdminStats{Users: 1}, nil
}

func (routerStats) OrderStats(context.Context) ([]domain.CategoryStats, error) {
	return []domain.CategoryStats{}, nil
}

type routerPayments struct {
	ports.PaymentService
	history []*domain.Payment
}

func (p *routerPayments) History(context.Context, string) ([]*domain.Payment, error) {
	return p.history, nil
}

func (p *routerPayments) ConfirmGatewayPayment(context.Context, string, string) (*domain.SettlementResult, error) {
	return nil, domain.ErrInvalidPayment
}

type routerFixture struct {
	srv    http.Handler
	tokens *service.TokenService
}

func newRouterFixture(t *testing.T, rateLimit int) *routerFixture {
	t.Helper()
	tokens := service.NewTokenService("router-test-secret", time.Hour)
	e := NewRouter(Deps{
		Tokens:         tokens,
		Directory:      &routerDirectory{admins: map[string]bool{"boss@example.com": true}},
		Payments:       &routerPayments{},
		Stats:          routerStats{},
		Redirects:      handler.RedirectConfig{SuccessURL: "https://shop.example.com/ok", FailURL: "https://shop.example.com/fail"},
		ReadyChecks:    map[string]handler.Check{},
		TokenRateLimit: rateLimit,
		Registry:       prometheus.NewRegistry(),
		Log:            zerolog.Nop(),
	})
	return &routerFixture{srv: e, tokens: tokens}
}

func (f *routerFixture) do(t *testing.T, method, target, email string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if email != "" {
		token, err := f.tokens.Issue(ports.IdentityClaim{Email: email})
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.srv.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Root(t *testing.T) {
	f := newRouterFixture(t, 0)

	rec := f.do(t, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "boss is sitting", rec.Body.String())
}

func TestRouter_AccessControl(t *testing.T) {
	f := newRouterFixture(t, 0)

	tests := []struct {
		name   string
		method string
		target string
		email  string
		want   int
	}{
		{"admin route without token", http.MethodGet, "/users", "", http.StatusUnauthorized},
		{"admin route as regular user", http.MethodGet, "/users", "user@example.com", http.StatusForbidden},
		{"admin route as admin", http.MethodGet, "/users", "boss@example.com", http.StatusOK},
		{"stats as regular user", http.MethodGet, "/admin-stats", "user@example.com", http.StatusForbidden},
		{"stats as admin", http.MethodGet, "/order-stats", "boss@example.com", http.StatusOK},
		{"own admin status", http.MethodGet, "/users/admin/user@example.com", "user@example.com", http.StatusOK},
		{"someone else's admin status", http.MethodGet, "/users/admin/boss@example.com", "user@example.com", http.StatusForbidden},
		{"own payment history", http.MethodGet, "/payments/user@example.com", "user@example.com", http.StatusOK},
		{"someone else's payment history", http.MethodGet, "/payments/boss@example.com", "user@example.com", http.StatusForbidden},
		{"history without token", http.MethodGet, "/payments/user@example.com", "", http.StatusUnauthorized},
		{"promote as regular user", http.MethodPatch, "/users/admin/u1", "user@example.com", http.StatusForbidden},
		{"promote as admin", http.MethodPatch, "/users/admin/u1", "boss@example.com", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, tt.method, tt.target, tt.email, "")
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_CreateUserIsPublic(t *testing.T) {
	f := newRouterFixture(t, 0)

	rec := f.do(t, http.MethodPost, "/users", "", `{"name":"New","email":"new@example.com"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouter_TokenRateLimit(t *testing.T) {
	f := newRouterFixture(t, 2)
	body := `{"email":"alice@example.com"}`

	for i := 0; i < 2; i++ {
		rec := f.do(t, http.MethodPost, "/jwt", "", body)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := f.do(t, http.MethodPost, "/jwt", "", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRouter_GatewayCallbackNeedsNoToken(t *testing.T) {
	f := newRouterFixture(t, 0)

	form := url.Values{"val_id": {"v"}, "tran_id": {"t1"}}
	req := httptest.NewRequest(http.MethodPost, "/payments/gateway/success", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	f.srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "https://shop.example.com/fail"))
}

func TestRouter_ValidationErrorEnvelope(t *testing.T) {
	f := newRouterFixture(t, 0)

	rec := f.do(t, http.MethodPost, "/jwt", "", `{"name":"x"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"email is required"}`, rec.Body.String())
}

func TestRouter_UnknownRoute(t *testing.T) {
	f := newRouterFixture(t, 0)

	rec := f.do(t, http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
