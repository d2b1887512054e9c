package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

const (
	// gatewayStatusValid is the only validation status that settles a payment.
	gatewayStatusValid = "VALID"
	// cardIntentSucceeded is the processor status of a captured intent.
	cardIntentSucceeded = "succeeded"

	defaultReplayTTL = 24 * time.Hour
)

// PaymentConfig holds the orchestrator settings derived from configuration.
type PaymentConfig struct {
	CardCurrency    string
	GatewayCurrency string
	// VerifyCardIntent makes RecordCardPayment check the intent status with
	// the processor before writing anything. Off by default: the card path
	// trusts the client's claim of a completed payment.
	VerifyCardIntent bool
	// CallbackBaseURL is the public base URL the gateway calls back on.
	CallbackBaseURL string
	ReplayTTL       time.Duration
}

// PaymentService orchestrates the card-intent and redirect-gateway checkout
// paths and their settlement.
type PaymentService struct {
	payments  ports.PaymentRepository
	carts     ports.CartService
	processor ports.CardProcessor
	gateway   ports.PaymentGateway
	replay    ports.ReplayGuard
	cfg       PaymentConfig
	log       zerolog.Logger

	newTranID func() string
	now       func() time.Time
}

func NewPaymentService(
	payments ports.PaymentRepository,
	carts ports.CartService,
	processor ports.CardProcessor,
	gateway ports.PaymentGateway,
	replay ports.ReplayGuard,
	cfg PaymentConfig,
	log zerolog.Logger,
) *PaymentService {
	if cfg.CardCurrency == "" {
		cfg.CardCurrency = "usd"
	}
	if cfg.GatewayCurrency == "" {
		cfg.GatewayCurrency = "BDT"
	}
	if cfg.ReplayTTL <= 0 {
		cfg.ReplayTTL = defaultReplayTTL
	}
	cfg.CallbackBaseURL = strings.TrimRight(cfg.CallbackBaseURL, "/")

	return &PaymentService{
		payments:  payments,
		carts:     carts,
		processor: processor,
		gateway:   gateway,
		replay:    replay,
		cfg:       cfg,
		log:       log,
		newTranID: uuid.NewString,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ── Path A: card intent ──────────────────────────────────────────────────────

// CreateCardIntent asks the processor for an intent of round(price*100) minor
// units and returns its client secret. Nothing is stored locally.
func (s *PaymentService) CreateCardIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return "", fmt.Errorf("create intent: %w: price must be positive", domain.ErrInvalidInput)
	}

	amount := toMinorUnits(price)
	intent, err := s.processor.CreateIntent(ctx, amount, s.cfg.CardCurrency)
	if err != nil {
		s.log.Error().Err(err).Int64("amount", amount).Msg("card intent creation failed")
		return "", fmt.Errorf("create intent: %w", domain.ErrProcessorUnavailable)
	}
	if intent.ClientSecret == "" {
		return "", fmt.Errorf("create intent: %w: empty client secret", domain.ErrProcessorUnavailable)
	}

	s.log.Info().Str("intent_id", intent.ID).Int64("amount", amount).Msg("card intent created")
	return intent.ClientSecret, nil
}

// RecordCardPayment stores the client-asserted payment and deletes its cart
// entries. Both steps always run and are reported separately. The payment is
// flagged carts-cleared only after a successful deletion. There is no
// idempotency guard: recording the same payload twice inserts two rows.
func (s *PaymentService) RecordCardPayment(ctx context.Context, in ports.RecordPaymentInput) *domain.RecordResult {
	result := &domain.RecordResult{}

	email := domain.NormalizeEmail(in.Email)
	if email == "" || in.Price < 0 {
		result.InsertErr = fmt.Errorf("record payment: %w: email and non-negative price are required", domain.ErrInvalidInput)
		result.DeleteErr = result.InsertErr
		result.Rejected = true
		return result
	}

	if s.cfg.VerifyCardIntent {
		if err := s.verifyIntent(ctx, in.TransactionID); err != nil {
			result.InsertErr = err
			result.DeleteErr = err
			result.Rejected = true
			return result
		}
	}

	status := domain.PaymentStatus(in.Status)
	if !status.Valid() {
		status = domain.PaymentPending
	}

	payment := &domain.Payment{
		Email:         email,
		Price:         in.Price,
		CartIDs:       in.CartIDs,
		MenuItemIDs:   in.MenuItemIDs,
		TransactionID: in.TransactionID,
		Status:        status,
		Date:          s.now(),
	}

	id, err := s.payments.Insert(ctx, payment)
	if err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("failed to record card payment")
		result.InsertErr = fmt.Errorf("record payment: %w", err)
	}
	result.PaymentID = id

	deleted, err := s.carts.RemoveMany(ctx, in.CartIDs)
	if err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("failed to release carts after card payment")
		result.DeleteErr = fmt.Errorf("release carts: %w", err)
	}
	result.DeletedCount = deleted

	// carts_cleared is only set once the deletion went through, so a success
	// payment with leftover carts stays visible to the reconciler.
	if result.InsertErr == nil && result.DeleteErr == nil {
		if err := s.payments.MarkCartsCleared(ctx, id); err != nil {
			s.log.Warn().Err(err).Str("payment_id", id).Msg("failed to flag card payment carts cleared")
		}
	}

	s.log.Info().
		Str("payment_id", id).
		Str("email", email).
		Int64("carts_deleted", deleted).
		Msg("card payment recorded")
	return result
}

func (s *PaymentService) verifyIntent(ctx context.Context, intentID string) error {
	if intentID == "" {
		return fmt.Errorf("record payment: %w: missing intent id", domain.ErrInvalidPayment)
	}
	intent, err := s.processor.GetIntent(ctx, intentID)
	if err != nil {
		s.log.Error().Err(err).Str("intent_id", intentID).Msg("card intent lookup failed")
		return fmt.Errorf("record payment: %w", domain.ErrProcessorUnavailable)
	}
	if intent.Status != cardIntentSucceeded {
		return fmt.Errorf("record payment: %w: intent status %q", domain.ErrInvalidPayment, intent.Status)
	}
	return nil
}

// ── Path B: redirect gateway ─────────────────────────────────────────────────

// InitiateGatewayPayment opens a hosted checkout session and stores the
// payment as pending under a fresh transaction id so the callback can find it.
func (s *PaymentService) InitiateGatewayPayment(ctx context.Context, in ports.GatewayPaymentInput) (string, error) {
	email := domain.NormalizeEmail(in.Email)
	if email == "" || in.Price <= 0 {
		return "", fmt.Errorf("initiate payment: %w: email and positive price are required", domain.ErrInvalidInput)
	}

	tranID := s.newTranID()
	redirectURL, err := s.gateway.CreateSession(ctx, ports.GatewaySessionRequest{
		TransactionID: tranID,
		Amount:        in.Price,
		Currency:      s.cfg.GatewayCurrency,
		SuccessURL:    s.callbackURL("success"),
		FailURL:       s.callbackURL("fail"),
		CancelURL:     s.callbackURL("cancel"),
		IPNURL:        s.callbackURL("ipn"),
		ProductName:   "Bistro Boss order",
		Category:      "food",
		Customer: ports.GatewayCustomer{
			Name:    in.Name,
			Email:   email,
			Phone:   in.Phone,
			Address: in.Address,
			City:    in.City,
			Country: "Bangladesh",
		},
	})
	if err != nil {
		s.log.Error().Err(err).Str("tran_id", tranID).Msg("gateway session failed")
		return "", fmt.Errorf("initiate payment: %w", domain.ErrGatewayUnavailable)
	}
	if redirectURL == "" {
		return "", fmt.Errorf("initiate payment: %w: no redirect url", domain.ErrGatewayUnavailable)
	}

	payment := &domain.Payment{
		Email:         email,
		Price:         in.Price,
		CartIDs:       in.CartIDs,
		MenuItemIDs:   in.MenuItemIDs,
		TransactionID: tranID,
		Status:        domain.PaymentPending,
		Date:          s.now(),
	}
	if _, err := s.payments.Insert(ctx, payment); err != nil {
		return "", fmt.Errorf("initiate payment: %w", err)
	}

	s.log.Info().Str("tran_id", tranID).Str("email", email).Float64("price", in.Price).Msg("gateway payment initiated")
	return redirectURL, nil
}

// ConfirmGatewayPayment settles a pending payment after the gateway's
// validation API confirms it. The callback body is never trusted on its own.
// Repeated confirmations are tolerated: the status swap is a compare-and-swap
// and cart deletion is idempotent.
func (s *PaymentService) ConfirmGatewayPayment(ctx context.Context, validationID, tranID string) (*domain.SettlementResult, error) {
	if validationID == "" || tranID == "" {
		return nil, fmt.Errorf("confirm payment: %w: val_id and tran_id are required", domain.ErrInvalidInput)
	}

	if s.replaySeen(ctx, validationID) {
		existing, err := s.payments.FindByTransactionID(ctx, tranID)
		if err != nil {
			return nil, fmt.Errorf("confirm payment: %w", err)
		}
		if existing.Status == domain.PaymentSuccess {
			s.log.Debug().Str("tran_id", tranID).Msg("replayed gateway callback")
			return s.finishSettlement(ctx, existing, true), nil
		}
	}

	validation, err := s.gateway.Validate(ctx, validationID)
	if err != nil {
		s.log.Error().Err(err).Str("tran_id", tranID).Msg("gateway validation call failed")
		return nil, fmt.Errorf("confirm payment: %w", domain.ErrGatewayUnavailable)
	}
	if validation.Status != gatewayStatusValid {
		s.log.Warn().Str("tran_id", tranID).Str("status", validation.Status).Msg("gateway rejected payment")
		return nil, fmt.Errorf("confirm payment: %w: status %q", domain.ErrInvalidPayment, validation.Status)
	}
	if validation.TransactionID != "" && validation.TransactionID != tranID {
		s.log.Warn().
			Str("tran_id", tranID).
			Str("validated_tran_id", validation.TransactionID).
			Msg("gateway validation is for another transaction")
		return nil, fmt.Errorf("confirm payment: %w: transaction mismatch", domain.ErrInvalidPayment)
	}

	stored, err := s.payments.FindByTransactionID(ctx, tranID)
	if err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}
	if err := s.checkValidatedAmount(stored, validation); err != nil {
		s.log.Warn().
			Err(err).
			Str("tran_id", tranID).
			Str("validated_amount", validation.Amount).
			Str("validated_currency", validation.Currency).
			Float64("price", stored.Price).
			Msg("gateway validation does not match the stored payment")
		return nil, fmt.Errorf("confirm payment: %w", err)
	}

	alreadySettled := false
	payment, err := s.payments.MarkSucceeded(ctx, tranID, s.now())
	if errors.Is(err, domain.ErrPaymentNotFound) {
		payment, err = s.payments.FindByTransactionID(ctx, tranID)
		if err != nil {
			return nil, fmt.Errorf("confirm payment: %w", err)
		}
		if payment.Status != domain.PaymentSuccess {
			return nil, fmt.Errorf("confirm payment: unexpected status %q", payment.Status)
		}
		alreadySettled = true
	} else if err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}

	if s.replay != nil {
		if err := s.replay.Remember(ctx, validationID, s.cfg.ReplayTTL); err != nil {
			s.log.Warn().Err(err).Str("tran_id", tranID).Msg("failed to remember validation id")
		}
	}

	if !alreadySettled {
		s.log.Info().Str("tran_id", tranID).Str("email", payment.Email).Msg("gateway payment settled")
	}
	return s.finishSettlement(ctx, payment, alreadySettled), nil
}

// checkValidatedAmount rejects a validation whose amount or currency differs
// from what the payment was initiated with. Amounts are compared in minor units.
func (s *PaymentService) checkValidatedAmount(p *domain.Payment, v *ports.GatewayValidation) error {
	amount, err := strconv.ParseFloat(strings.TrimSpace(v.Amount), 64)
	if err != nil {
		return fmt.Errorf("%w: unreadable validated amount %q", domain.ErrInvalidPayment, v.Amount)
	}
	if toMinorUnits(amount) != toMinorUnits(p.Price) {
		return fmt.Errorf("%w: validated amount %s, expected %.2f", domain.ErrInvalidPayment, v.Amount, p.Price)
	}
	if !strings.EqualFold(strings.TrimSpace(v.Currency), s.cfg.GatewayCurrency) {
		return fmt.Errorf("%w: validated currency %q, expected %q", domain.ErrInvalidPayment, v.Currency, s.cfg.GatewayCurrency)
	}
	return nil
}

// finishSettlement releases the carts of a settled payment unless that already
// happened. A failed release leaves the payment settled with its carts in
// place; the reconciler retries it.
func (s *PaymentService) finishSettlement(ctx context.Context, p *domain.Payment, alreadySettled bool) *domain.SettlementResult {
	result := &domain.SettlementResult{Payment: p, AlreadySettled: alreadySettled}
	if p.CartsCleared {
		return result
	}

	deleted, err := s.ReleaseCarts(ctx, p)
	result.DeletedCount = deleted
	if err != nil {
		s.log.Error().Err(err).Str("tran_id", p.TransactionID).Msg("cart release after settlement failed")
		result.DeleteErr = err
	}
	return result
}

// ReleaseCarts deletes the payment's cart entries and flags it cleared.
func (s *PaymentService) ReleaseCarts(ctx context.Context, p *domain.Payment) (int64, error) {
	deleted, err := s.carts.RemoveMany(ctx, p.CartIDs)
	if err != nil {
		return deleted, fmt.Errorf("release carts: %w", err)
	}
	if err := s.payments.MarkCartsCleared(ctx, p.ID); err != nil {
		return deleted, fmt.Errorf("release carts: mark cleared: %w", err)
	}
	p.CartsCleared = true
	return deleted, nil
}

// History lists a user's payments, newest first.
func (s *PaymentService) History(ctx context.Context, email string) ([]*domain.Payment, error) {
	return s.payments.ListByEmail(ctx, domain.NormalizeEmail(email))
}

func (s *PaymentService) replaySeen(ctx context.Context, validationID string) bool {
	if s.replay == nil {
		return false
	}
	seen, err := s.replay.Seen(ctx, validationID)
	if err != nil {
		s.log.Warn().Err(err).Msg("replay check failed, validating anyway")
		return false
	}
	return seen
}

func (s *PaymentService) callbackURL(kind string) string {
	return s.cfg.CallbackBaseURL + "/payments/gateway/" + kind
}

// toMinorUnits converts a currency amount to minor units, rounding half away
// from zero.
func toMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
