package dto

import (
	"time"

	"bakery-storefront/internal/checkout"
	"bakery-storefront/internal/model"

	"github.com/shopspring/decimal"
)

type AddItemRequest struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is returned by every cart operation so the caller always
// sees totals consistent with the line items.
type CartResponse struct {
	Items  []model.CartItem `json:"items"`
	Totals checkout.Totals  `json:"totals"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	UserID int64  `json:"userId"`
	Login  string `json:"login"`
	Email  string `json:"email"`
}

type Profile struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Email string `json:"email"`
}

type UpdateProfileRequest struct {
	Login string `json:"login"`
	Email string `json:"email"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// CheckoutResult summarizes a successful purchase. Totals are the
// post-checkout cart totals, always zero after the cart is cleared.
type CheckoutResult struct {
	TransactionID int64                      `json:"transactionId"`
	Date          time.Time                  `json:"date"`
	Value         decimal.Decimal            `json:"value"`
	Status        int                        `json:"status"`
	Method        model.PaymentMethodSummary `json:"paymentMethod"`
	Totals        checkout.Totals            `json:"totals"`
}

// AdminTransaction is the normalized row of the admin listing.
type AdminTransaction struct {
	ID             string          `json:"id"`
	Identification string          `json:"identification"`
	Date           string          `json:"date"`
	Status         string          `json:"status"`
	Value          decimal.Decimal `json:"value"`
}

type ErrorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}
