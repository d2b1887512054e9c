package domain

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized access")
	ErrForbidden    = errors.New("forbidden access")
	ErrInvalidInput = errors.New("invalid input")

	ErrUserNotFound      = errors.New("user not found")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrCartEntryNotFound = errors.New("cart entry not found")
	ErrPaymentNotFound   = errors.New("payment not found")

	// ErrInvalidPayment is returned when the gateway does not confirm a payment.
	ErrInvalidPayment       = errors.New("invalid payment")
	ErrGatewayUnavailable   = errors.New("payment gateway unavailable")
	ErrProcessorUnavailable = errors.New("card processor unavailable")
)
