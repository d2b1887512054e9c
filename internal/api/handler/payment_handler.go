package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-api/internal/api/metrics"
	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// RedirectConfig holds the client pages the gateway callbacks send the
// browser to.
type RedirectConfig struct {
	SuccessURL string
	FailURL    string
}

// PaymentHandler exposes both checkout paths and the gateway callbacks.
type PaymentHandler struct {
	payments  ports.PaymentService
	redirects RedirectConfig
	log       zerolog.Logger
}

func NewPaymentHandler(payments ports.PaymentService, redirects RedirectConfig, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{payments: payments, redirects: redirects, log: log}
}

// CreateIntent handles POST /create-payment-intent.
//
// @Summary      Create a card payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      createIntentRequest  true  "Order total"
// @Success      200   {object}  createIntentResponse
// @Failure      400   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createIntentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	secret, err := h.payments.CreateCardIntent(c.Request().Context(), req.Price)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, createIntentResponse{ClientSecret: secret})
}

// Record handles POST /payments: stores a completed card payment and clears
// its cart entries. The response reports both steps.
//
// @Summary      Record a card payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      recordPaymentRequest  true  "Payment"
// @Success      200   {object}  recordPaymentResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  recordPaymentResponse
// @Router       /payments [post]
func (h *PaymentHandler) Record(c echo.Context) error {
	var req recordPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res := h.payments.RecordCardPayment(c.Request().Context(), ports.RecordPaymentInput{
		Email:         req.Email,
		Price:         req.Price,
		CartIDs:       req.CartIDs,
		MenuItemIDs:   req.MenuItemIDs,
		TransactionID: req.TransactionID,
		Status:        req.Status,
	})

	// Rejected before any write: nothing partial to report.
	if res.Rejected {
		metrics.PaymentsTotal.WithLabelValues("card", "error").Inc()
		return res.InsertErr
	}

	resp := recordPaymentResponse{
		PaymentResult: paymentResult{InsertedID: res.PaymentID},
		DeleteResult:  deleteResult{DeletedCount: res.DeletedCount},
	}
	if res.InsertErr != nil {
		resp.PaymentResult.Error = "payment could not be recorded"
	}
	if res.DeleteErr != nil {
		resp.DeleteResult.Error = "cart entries could not be deleted"
	}
	metrics.CartEntriesDeletedTotal.Add(float64(res.DeletedCount))

	switch {
	case res.InsertErr != nil:
		metrics.PaymentsTotal.WithLabelValues("card", "error").Inc()
		return c.JSON(http.StatusInternalServerError, resp)
	case res.DeleteErr != nil:
		metrics.PaymentsTotal.WithLabelValues("card", "partial").Inc()
	default:
		metrics.PaymentsTotal.WithLabelValues("card", "ok").Inc()
	}
	return c.JSON(http.StatusOK, resp)
}

// History handles GET /payments/:email. The route is self-scoped.
//
// @Summary      List the caller's payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Caller email"
// @Success      200    {array}   domain.Payment
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /payments/{email} [get]
func (h *PaymentHandler) History(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	payments, err := h.payments.History(c.Request().Context(), email)
	if err != nil {
		return err
	}
	if payments == nil {
		payments = []*domain.Payment{}
	}
	return c.JSON(http.StatusOK, payments)
}

// InitiateGateway handles POST /payments/gateway.
//
// @Summary      Start a hosted gateway checkout
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      gatewayPaymentRequest  true  "Order"
// @Success      200   {object}  gatewayPaymentResponse
// @Failure      400   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /payments/gateway [post]
func (h *PaymentHandler) InitiateGateway(c echo.Context) error {
	var req gatewayPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	redirectURL, err := h.payments.InitiateGatewayPayment(c.Request().Context(), ports.GatewayPaymentInput{
		Email:       req.Email,
		Name:        req.Name,
		Price:       req.Price,
		CartIDs:     req.CartIDs,
		MenuItemIDs: req.MenuItemIDs,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
	})
	if err != nil {
		metrics.PaymentsTotal.WithLabelValues("gateway", "error").Inc()
		return err
	}

	metrics.PaymentsTotal.WithLabelValues("gateway", "ok").Inc()
	return c.JSON(http.StatusOK, gatewayPaymentResponse{URL: redirectURL})
}

// GatewaySuccess handles the gateway's success callback. The posted status is
// ignored; the payment is re-validated server side before the browser is sent
// on.
//
// @Summary      Gateway success callback
// @Tags         payments
// @Accept       x-www-form-urlencoded
// @Param        val_id   formData  string  true  "Gateway validation id"
// @Param        tran_id  formData  string  true  "Transaction id"
// @Success      303
// @Router       /payments/gateway/success [post]
func (h *PaymentHandler) GatewaySuccess(c echo.Context) error {
	tranID := c.FormValue("tran_id")
	res, err := h.confirm(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, withQuery(h.redirects.FailURL, "tran_id", tranID, "reason", failureReason(err)))
	}
	return c.Redirect(http.StatusSeeOther, withQuery(h.redirects.SuccessURL, "tran_id", res.Payment.TransactionID))
}

// GatewayFail handles the gateway's fail callback.
//
// @Summary      Gateway fail callback
// @Tags         payments
// @Accept       x-www-form-urlencoded
// @Param        tran_id  formData  string  false  "Transaction id"
// @Success      303
// @Router       /payments/gateway/fail [post]
func (h *PaymentHandler) GatewayFail(c echo.Context) error {
	return h.abandon(c, "failed")
}

// GatewayCancel handles the gateway's cancel callback.
//
// @Summary      Gateway cancel callback
// @Tags         payments
// @Accept       x-www-form-urlencoded
// @Param        tran_id  formData  string  false  "Transaction id"
// @Success      303
// @Router       /payments/gateway/cancel [post]
func (h *PaymentHandler) GatewayCancel(c echo.Context) error {
	return h.abandon(c, "cancelled")
}

// GatewayIPN handles the gateway's server-to-server notification.
//
// @Summary      Gateway instant payment notification
// @Tags         payments
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        val_id   formData  string  true  "Gateway validation id"
// @Param        tran_id  formData  string  true  "Transaction id"
// @Success      200      {object}  settlementResponse
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Failure      502      {object}  errorResponse
// @Router       /payments/gateway/ipn [post]
func (h *PaymentHandler) GatewayIPN(c echo.Context) error {
	res, err := h.confirm(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settlementResponse{
		TransactionID:  res.Payment.TransactionID,
		Status:         string(res.Payment.Status),
		AlreadySettled: res.AlreadySettled,
		DeletedCount:   res.DeletedCount,
		CartsCleared:   res.Payment.CartsCleared,
	})
}

func (h *PaymentHandler) confirm(c echo.Context) (*domain.SettlementResult, error) {
	valID := c.FormValue("val_id")
	tranID := c.FormValue("tran_id")

	res, err := h.payments.ConfirmGatewayPayment(c.Request().Context(), valID, tranID)
	if err != nil {
		metrics.SettlementsTotal.WithLabelValues(failureReason(err)).Inc()
		h.log.Warn().Err(err).Str("tran_id", tranID).Msg("gateway confirmation rejected")
		return nil, err
	}

	if res.AlreadySettled {
		metrics.SettlementsTotal.WithLabelValues("replayed").Inc()
	} else {
		metrics.SettlementsTotal.WithLabelValues("settled").Inc()
	}
	if res.DeletedCount > 0 || res.DeleteErr != nil {
		metrics.CartReleasesTotal.WithLabelValues("settlement", metrics.ReleaseResult(res.DeleteErr)).Inc()
		metrics.CartEntriesDeletedTotal.Add(float64(res.DeletedCount))
	}
	return res, nil
}

func (h *PaymentHandler) abandon(c echo.Context, reason string) error {
	tranID := c.FormValue("tran_id")
	h.log.Info().Str("tran_id", tranID).Str("reason", reason).Msg("gateway checkout abandoned")
	return c.Redirect(http.StatusSeeOther, withQuery(h.redirects.FailURL, "tran_id", tranID, "reason", reason))
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidPayment):
		return "invalid"
	case errors.Is(err, domain.ErrPaymentNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid"
	default:
		return "error"
	}
}

// withQuery appends key/value pairs to base. A base that does not parse is
// returned unchanged.
func withQuery(base string, kv ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			q.Set(kv[i], kv[i+1])
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}
