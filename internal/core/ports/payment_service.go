package ports

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// RecordPaymentInput is the client-asserted record of a completed card payment.
type RecordPaymentInput struct {
	Email         string
	Price         float64
	CartIDs       []string
	MenuItemIDs   []string
	TransactionID string
	Status        string
}

// GatewayPaymentInput starts a redirect-gateway checkout.
type GatewayPaymentInput struct {
	Email       string
	Name        string
	Price       float64
	CartIDs     []string
	MenuItemIDs []string
	Phone       string
	Address     string
	City        string
}

// PaymentService is the payment orchestrator.
type PaymentService interface {
	CreateCardIntent(ctx context.Context, price float64) (string, error)
	RecordCardPayment(ctx context.Context, in RecordPaymentInput) *domain.RecordResult
	InitiateGatewayPayment(ctx context.Context, in GatewayPaymentInput) (string, error)
	ConfirmGatewayPayment(ctx context.Context, validationID, tranID string) (*domain.SettlementResult, error)
	History(ctx context.Context, email string) ([]*domain.Payment, error)
	// ReleaseCarts deletes the cart entries of a settled payment and flags it
	// cleared. Used by settlement and by the reconciler.
	ReleaseCarts(ctx context.Context, p *domain.Payment) (int64, error)
}
