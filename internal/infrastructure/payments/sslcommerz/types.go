package sslcommerz

// sessionResponse is the subset of the session API reply the client reads.
type sessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

// validationResponse is the subset of the order validation API reply.
type validationResponse struct {
	Status       string `json:"status"`
	TranID       string `json:"tran_id"`
	ValID        string `json:"val_id"`
	Amount       string `json:"amount"`
	StoreAmount  string `json:"store_amount"`
	Currency     string `json:"currency"`
	BankTranID   string `json:"bank_tran_id"`
	CardType     string `json:"card_type"`
	TranDate     string `json:"tran_date"`
	FailedReason string `json:"failedreason,omitempty"`
	RiskLevel    string `json:"risk_level"`
	RiskTitle    string `json:"risk_title"`
}
