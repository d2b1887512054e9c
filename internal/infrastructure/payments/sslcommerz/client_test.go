package sslcommerz

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bistroboss/bistro-api/internal/core/ports"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Config{StoreID: "store", StorePassword: "secret", BaseURL: srv.URL, Timeout: time.Second})
}

func TestNewClient_Host(t *testing.T) {
	assert.Equal(t, sandboxURL, NewClient(Config{Sandbox: true}).baseURL)
	assert.Equal(t, liveURL, NewClient(Config{}).baseURL)
}

func TestClient_CreateSession(t *testing.T) {
	var form map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, sessionPath, r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		_, _ = w.Write([]byte(`{"status":"SUCCESS","sessionkey":"k1","GatewayPageURL":"https://pay.example/k1"}`))
	})

	url, err := c.CreateSession(context.Background(), ports.GatewaySessionRequest{
		TransactionID: "tran-1",
		Amount:        500,
		Currency:      "BDT",
		SuccessURL:    "https://api.example/payments/gateway/success",
		FailURL:       "https://api.example/payments/gateway/fail",
		CancelURL:     "https://api.example/payments/gateway/cancel",
		IPNURL:        "https://api.example/payments/gateway/ipn",
		ProductName:   "order",
		Category:      "food",
		Customer:      ports.GatewayCustomer{Name: "Self", Email: "self@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/k1", url)

	assert.Equal(t, "store", form["store_id"])
	assert.Equal(t, "secret", form["store_passwd"])
	assert.Equal(t, "500.00", form["total_amount"])
	assert.Equal(t, "tran-1", form["tran_id"])
	assert.Equal(t, "self@example.com", form["cus_email"])
	assert.Equal(t, "N/A", form["cus_phone"])
	assert.Equal(t, "NO", form["shipping_method"])
}

func TestClient_CreateSession_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "gateway failed", status: http.StatusOK, body: `{"status":"FAILED","failedreason":"Store Credential Error"}`},
		{name: "no url", status: http.StatusOK, body: `{"status":"SUCCESS"}`},
		{name: "http error", status: http.StatusBadGateway, body: `oops`},
		{name: "bad json", status: http.StatusOK, body: `<html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := c.CreateSession(context.Background(), ports.GatewaySessionRequest{TransactionID: "t"})
			assert.Error(t, err)
		})
	}
}

func TestClient_Validate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, validationPath, r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "val-9", q.Get("val_id"))
		require.Equal(t, "store", q.Get("store_id"))
		require.Equal(t, "json", q.Get("format"))
		_, _ = w.Write([]byte(`{"status":"VALID","tran_id":"tran-1","val_id":"val-9","amount":"500.00","currency":"BDT"}`))
	})

	v, err := c.Validate(context.Background(), "val-9")
	require.NoError(t, err)
	assert.Equal(t, "VALID", v.Status)
	assert.Equal(t, "tran-1", v.TransactionID)
	assert.Equal(t, "500.00", v.Amount)
}

func TestClient_Validate_PassesThroughInvalid(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"INVALID_TRANSACTION"}`))
	})

	v, err := c.Validate(context.Background(), "val-9")
	require.NoError(t, err)
	assert.Equal(t, "INVALID_TRANSACTION", v.Status)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(Config{BaseURL: srv.URL, Timeout: 20 * time.Millisecond})

	_, err := c.Validate(context.Background(), "val-9")
	assert.Error(t, err)
}
