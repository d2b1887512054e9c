package domain

import "time"

// PaymentStatus represents the settlement state of a payment. The only
// transition is pending to success, and success is terminal.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
)

// Valid reports whether s is a known status.
func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentSuccess
}

// Payment is the durable record of a checkout.
type Payment struct {
	ID            string        `json:"_id"`
	Email         string        `json:"email"`
	Price         float64       `json:"price"`
	CartIDs       []string      `json:"cartIds"`
	MenuItemIDs   []string      `json:"menuItemIds"`
	TransactionID string        `json:"transactionId,omitempty"`
	Status        PaymentStatus `json:"status"`
	Date          time.Time     `json:"date"`
	// SettledAt is when the gateway validation moved the payment to success.
	SettledAt *time.Time `json:"settledAt,omitempty"`
	// CartsCleared is set once the referenced cart entries were deleted after
	// settlement. The reconciler retries payments where it is still false.
	CartsCleared bool `json:"cartsCleared"`
}

// RecordResult is the compound outcome of recording a card payment. Both steps
// are always attempted, so callers can detect partial success.
type RecordResult struct {
	PaymentID    string
	InsertErr    error
	DeletedCount int64
	DeleteErr    error
	// Rejected is set when the payment was refused before any write.
	Rejected bool
}

// SettlementResult is the outcome of confirming a gateway payment.
type SettlementResult struct {
	Payment        *Payment
	AlreadySettled bool
	DeletedCount   int64
	DeleteErr      error
}
