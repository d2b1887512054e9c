package sslcommerz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bistroboss/bistro-api/internal/core/ports"
)

const (
	sandboxURL = "https://sandbox.sslcommerz.com"
	liveURL    = "https://securepay.sslcommerz.com"

	sessionPath    = "/gwprocess/v4/api.php"
	validationPath = "/validator/api/validationserverAPI.php"

	defaultTimeout = 30 * time.Second
	// maxBody caps how much of a gateway reply is read.
	maxBody = 1 << 20
)

// Config captures the store credentials and environment.
type Config struct {
	StoreID       string
	StorePassword string
	Sandbox       bool
	// BaseURL overrides the host picked from Sandbox.
	BaseURL string
	Timeout time.Duration
}

// Client implements ports.PaymentGateway against the SSLCommerz v4 API.
type Client struct {
	storeID    string
	storePass  string
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = liveURL
		if cfg.Sandbox {
			base = sandboxURL
		}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		storeID:    cfg.StoreID,
		storePass:  cfg.StorePassword,
		baseURL:    strings.TrimRight(base, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CreateSession opens a hosted checkout session and returns GatewayPageURL.
func (c *Client) CreateSession(ctx context.Context, req ports.GatewaySessionRequest) (string, error) {
	form := url.Values{
		"store_id":         {c.storeID},
		"store_passwd":     {c.storePass},
		"total_amount":     {strconv.FormatFloat(req.Amount, 'f', 2, 64)},
		"currency":         {req.Currency},
		"tran_id":          {req.TransactionID},
		"success_url":      {req.SuccessURL},
		"fail_url":         {req.FailURL},
		"cancel_url":       {req.CancelURL},
		"ipn_url":          {req.IPNURL},
		"cus_name":         {orDefault(req.Customer.Name, "Customer")},
		"cus_email":        {req.Customer.Email},
		"cus_add1":         {orDefault(req.Customer.Address, "N/A")},
		"cus_city":         {orDefault(req.Customer.City, "Dhaka")},
		"cus_country":      {orDefault(req.Customer.Country, "Bangladesh")},
		"cus_phone":        {orDefault(req.Customer.Phone, "N/A")},
		"shipping_method":  {"NO"},
		"product_name":     {req.ProductName},
		"product_category": {req.Category},
		"product_profile":  {"general"},
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sessionPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("sslcommerz session: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var resp sessionResponse
	if err := c.do(httpReq, &resp); err != nil {
		return "", fmt.Errorf("sslcommerz session: %w", err)
	}
	if !strings.EqualFold(resp.Status, "SUCCESS") || resp.GatewayPageURL == "" {
		return "", fmt.Errorf("sslcommerz session: status %q: %s", resp.Status, resp.FailedReason)
	}
	return resp.GatewayPageURL, nil
}

// Validate asks the order validation API for the verdict on validationID.
// The caller decides what counts as settled; the status is passed through.
func (c *Client) Validate(ctx context.Context, validationID string) (*ports.GatewayValidation, error) {
	q := url.Values{
		"val_id":       {validationID},
		"store_id":     {c.storeID},
		"store_passwd": {c.storePass},
		"format":       {"json"},
		"v":            {"1"},
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+validationPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("sslcommerz validate: %w", err)
	}

	var resp validationResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, fmt.Errorf("sslcommerz validate: %w", err)
	}
	return &ports.GatewayValidation{
		Status:        resp.Status,
		TransactionID: resp.TranID,
		ValidationID:  resp.ValID,
		Amount:        resp.Amount,
		Currency:      resp.Currency,
	}, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return errors.New("unexpected status: " + resp.Status)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
