package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

type stubTokenService struct {
	issueFn func(claim ports.IdentityClaim) (string, error)
}

func (s *stubTokenService) Issue(claim ports.IdentityClaim) (string, error) {
	return s.issueFn(claim)
}

func (s *stubTokenService) Verify(string) (*ports.IdentityClaim, error) {
	return nil, domain.ErrUnauthorized
}

// newTestContext builds an echo context with the request validator installed.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestAuthHandler_Issue_Success(t *testing.T) {
	stub := &stubTokenService{
		issueFn: func(claim ports.IdentityClaim) (string, error) {
			if claim.Email != "alice@example.com" || claim.Name != "Alice" {
				t.Fatalf("unexpected claim: %+v", claim)
			}
			return "signed.jwt.token", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/jwt", `{"email":"alice@example.com","name":"Alice"}`)
	if err := handler.Issue(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "signed.jwt.token" {
		t.Fatalf("unexpected token %q", resp.Token)
	}
}

func TestAuthHandler_Issue_InvalidPayload(t *testing.T) {
	stub := &stubTokenService{
		issueFn: func(ports.IdentityClaim) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewAuthHandler(stub)

	tests := []struct {
		body string
		want int
	}{
		{`{"email":`, http.StatusBadRequest},
		{`{"name":"no email"}`, http.StatusUnprocessableEntity},
		{`{"email":"not-an-email"}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		c, _ := newTestContext(http.MethodPost, "/jwt", tt.body)
		if code := httpCode(t, handler.Issue(c)); code != tt.want {
			t.Fatalf("body %s: expected %d, got %d", tt.body, tt.want, code)
		}
	}
}

func TestAuthHandler_Issue_ValidationMessageUsesJSONName(t *testing.T) {
	handler := NewAuthHandler(&stubTokenService{})

	c, _ := newTestContext(http.MethodPost, "/jwt", `{"name":"x"}`)
	err := handler.Issue(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected http error, got %v", err)
	}
	if he.Message != "email is required" {
		t.Fatalf("unexpected message %v", he.Message)
	}
}
