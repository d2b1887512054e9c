package card

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor(t *testing.T, h http.HandlerFunc) *Processor {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewProcessor(Config{SecretKey: "sk_test_123", BaseURL: srv.URL, Timeout: 2 * time.Second})
}

func TestProcessor_CreateIntent(t *testing.T) {
	var gotAmount, gotCurrency, gotMethod, gotAuth string
	p := newTestProcessor(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())
		gotAmount = r.PostForm.Get("amount")
		gotCurrency = r.PostForm.Get("currency")
		gotMethod = r.PostForm.Get("payment_method_types[0]")
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","amount":50000,"currency":"usd",` +
			`"client_secret":"pi_123_secret_abc","status":"requires_payment_method"}`))
	})

	intent, err := p.CreateIntent(context.Background(), 50000, "usd")
	require.NoError(t, err)

	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
	assert.Equal(t, "requires_payment_method", intent.Status)
	assert.Equal(t, "50000", gotAmount)
	assert.Equal(t, "usd", gotCurrency)
	assert.Equal(t, "card", gotMethod)
	assert.Equal(t, "Bearer sk_test_123", gotAuth)
}

func TestProcessor_GetIntent(t *testing.T) {
	p := newTestProcessor(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","status":"succeeded"}`))
	})

	intent, err := p.GetIntent(context.Background(), "pi_123")
	require.NoError(t, err)
	assert.Equal(t, "succeeded", intent.Status)
}

func TestProcessor_APIError(t *testing.T) {
	p := newTestProcessor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","code":"amount_too_small",` +
			`"message":"Amount must be at least 50 cents"}}`))
	})

	_, err := p.CreateIntent(context.Background(), 1, "usd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount_too_small")
}
