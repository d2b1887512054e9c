package ports

import (
	"context"
	"time"
)

// CardIntent is the processor-side object for an authorized-but-unconfirmed
// card charge.
type CardIntent struct {
	ID           string
	ClientSecret string
	Status       string
}

// CardProcessor is the external card processor (Stripe).
type CardProcessor interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (*CardIntent, error)
	GetIntent(ctx context.Context, id string) (*CardIntent, error)
}

// GatewayCustomer is the customer metadata sent with a gateway session.
type GatewayCustomer struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	Country string
}

// GatewaySessionRequest describes a hosted checkout session.
type GatewaySessionRequest struct {
	TransactionID string
	Amount        float64
	Currency      string
	SuccessURL    string
	FailURL       string
	CancelURL     string
	IPNURL        string
	ProductName   string
	Category      string
	Customer      GatewayCustomer
}

// GatewayValidation is the gateway's server-side verdict on a payment.
type GatewayValidation struct {
	Status        string
	TransactionID string
	ValidationID  string
	Amount        string
	Currency      string
}

// PaymentGateway is the external redirect gateway (SSLCommerz).
type PaymentGateway interface {
	// CreateSession returns the URL the browser must be redirected to.
	CreateSession(ctx context.Context, req GatewaySessionRequest) (string, error)
	Validate(ctx context.Context, validationID string) (*GatewayValidation, error)
}

// ReplayGuard remembers validation ids that already settled a payment.
type ReplayGuard interface {
	Seen(ctx context.Context, validationID string) (bool, error)
	Remember(ctx context.Context, validationID string, ttl time.Duration) error
}
