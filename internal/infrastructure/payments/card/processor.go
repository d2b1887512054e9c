package card

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/bistroboss/bistro-api/internal/core/ports"
)

const defaultTimeout = 30 * time.Second

// Config captures the settings for talking to the Stripe API.
type Config struct {
	SecretKey string
	// BaseURL overrides the API host. Empty means api.stripe.com.
	BaseURL string
	Timeout time.Duration
}

// Processor implements ports.CardProcessor on top of Stripe payment intents.
type Processor struct {
	api *client.API
}

// NewProcessor builds a Stripe client with its own backend so the timeout and
// base URL do not leak into the package-level stripe defaults.
func NewProcessor(cfg Config) *Processor {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	backendCfg := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: timeout},
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	}
	if cfg.BaseURL != "" {
		backendCfg.URL = stripe.String(cfg.BaseURL)
	}

	api := &client.API{}
	api.Init(cfg.SecretKey, &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendCfg),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendCfg),
	})
	return &Processor{api: api}
}

// CreateIntent creates a card-only payment intent for amountMinor units.
func (p *Processor) CreateIntent(ctx context.Context, amountMinor int64, currency string) (*ports.CardIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinor),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create intent: %w", describe(err))
	}
	return toIntent(pi), nil
}

// GetIntent fetches the current state of an intent.
func (p *Processor) GetIntent(ctx context.Context, id string) (*ports.CardIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("stripe get intent: %w", describe(err))
	}
	return toIntent(pi), nil
}

func toIntent(pi *stripe.PaymentIntent) *ports.CardIntent {
	return &ports.CardIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}
}

// describe keeps the Stripe error code and message but drops the raw body.
func describe(err error) error {
	var serr *stripe.Error
	if errors.As(err, &serr) {
		return fmt.Errorf("%s (%s, http %d)", serr.Msg, serr.Code, serr.HTTPStatusCode)
	}
	return err
}
