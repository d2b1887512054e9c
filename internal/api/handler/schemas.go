package handler

import "github.com/bistroboss/bistro-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type tokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// --- Users ---

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
}

type adminStatusResponse struct {
	Admin bool `json:"admin"`
}

// --- Menu ---

type menuItemRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"    validate:"omitempty,url"`
}

type menuItemPatchRequest struct {
	Name     *string  `json:"name"     validate:"omitempty,min=1"`
	Category *string  `json:"category" validate:"omitempty,min=1"`
	Price    *float64 `json:"price"    validate:"omitempty,gte=0"`
	Recipe   *string  `json:"recipe"`
	Image    *string  `json:"image"    validate:"omitempty,url"`
}

func (r menuItemPatchRequest) toPatch() domain.MenuItemPatch {
	return domain.MenuItemPatch{
		Name:     r.Name,
		Category: r.Category,
		Price:    r.Price,
		Recipe:   r.Recipe,
		Image:    r.Image,
	}
}

type insertedResponse struct {
	InsertedID string `json:"insertedId"`
}

// --- Carts ---

type addCartRequest struct {
	Email  string  `json:"email"  validate:"required,email"`
	MenuID string  `json:"menuId" validate:"required"`
	Name   string  `json:"name"`
	Image  string  `json:"image"`
	Price  float64 `json:"price"  validate:"gte=0"`
}

type deleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// --- Payments ---

type createIntentRequest struct {
	Price float64 `json:"price" validate:"gt=0"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type recordPaymentRequest struct {
	Email         string   `json:"email"         validate:"required,email"`
	Price         float64  `json:"price"         validate:"gte=0"`
	CartIDs       []string `json:"cartIds"`
	MenuItemIDs   []string `json:"menuItemIds"`
	TransactionID string   `json:"transactionId"`
	Status        string   `json:"status"        validate:"omitempty,oneof=pending success"`
}

type paymentResult struct {
	InsertedID string `json:"insertedId,omitempty"`
	Error      string `json:"error,omitempty"`
}

type deleteResult struct {
	DeletedCount int64  `json:"deletedCount"`
	Error        string `json:"error,omitempty"`
}

// recordPaymentResponse reports both steps of recording a card payment so a
// caller can tell a partial success from a full one.
type recordPaymentResponse struct {
	PaymentResult paymentResult `json:"paymentResult"`
	DeleteResult  deleteResult  `json:"deleteResult"`
}

type gatewayPaymentRequest struct {
	Email       string   `json:"email"   validate:"required,email"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"   validate:"gt=0"`
	CartIDs     []string `json:"cartIds" validate:"required,min=1"`
	MenuItemIDs []string `json:"menuItemIds"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
}

type gatewayPaymentResponse struct {
	URL string `json:"url"`
}

type settlementResponse struct {
	TransactionID  string `json:"tranId"`
	Status         string `json:"status"`
	AlreadySettled bool   `json:"alreadySettled"`
	DeletedCount   int64  `json:"deletedCount"`
	CartsCleared   bool   `json:"cartsCleared"`
}
